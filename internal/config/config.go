package config // package config loads application configuration from environment variables

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCORSOrigins is the allow-list used when CORS_ORIGINS is not set.
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://bloodbanker-ce5e1.web.app",
	"https://bloodbanker-ce5e1.firebaseapp.com",
}

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable and is read once at startup.
type Config struct {
	Env         string        // application environment (e.g. "dev", "prod")
	Port        string        // HTTP port to listen on
	MongoURI    string        // full connection string for the document store
	DBName      string        // database namespace holding every collection
	TokenSecret string        // secret used to sign credentials
	TokenTTL    time.Duration // lifetime of issued credentials
	CORSOrigins []string      // allowed browser origins
	LogLevel    string        // zap level name (debug, info, warn, error)
}

// Load reads an optional .env file and then the process environment.  A
// missing required variable is fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}
	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the supplied lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	secret := get("ACCESS_TOKEN", "")
	if secret == "" {
		return Config{}, fmt.Errorf("missing required env var: %s", "ACCESS_TOKEN")
	}

	uri := get("MONGO_URI", "")
	if uri == "" {
		user, pass := get("DB_USER", ""), get("DB_PASS", "")
		if user == "" || pass == "" {
			return Config{}, fmt.Errorf("missing required env var: MONGO_URI or DB_USER/DB_PASS")
		}
		host := get("DB_HOST", "cluster0.fnfrn.mongodb.net")
		uri = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
			url.QueryEscape(user), url.QueryEscape(pass), host)
	}

	ttl := 10 * time.Hour
	if raw := get("TOKEN_TTL", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid duration for TOKEN_TTL: %q", raw)
		}
		ttl = d
	}

	origins := DefaultCORSOrigins
	if raw := get("CORS_ORIGINS", ""); raw != "" {
		origins = splitList(raw)
	}

	return Config{
		Env:         get("APP_ENV", "dev"),
		Port:        get("PORT", "5000"),
		MongoURI:    uri,
		DBName:      get("DB_NAME", "BloodBankerDB"),
		TokenSecret: secret,
		TokenTTL:    ttl,
		CORSOrigins: origins,
		LogLevel:    get("LOG_LEVEL", "info"),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
