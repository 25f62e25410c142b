package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
	"github.com/bloodbanker/bloodbanker-server/internal/utils"
)

type memBlogs struct {
	posts []model.BlogPost
}

func (m *memBlogs) List(context.Context, string) ([]model.BlogPost, error) { return m.posts, nil }

func (m *memBlogs) Get(context.Context, string) (model.BlogPost, error) {
	return model.BlogPost{}, nil
}

func (m *memBlogs) Create(_ context.Context, p model.BlogPost) (model.InsertResult, error) {
	m.posts = append(m.posts, p)
	return model.InsertResult{Acknowledged: true, InsertedID: "1"}, nil
}

func (m *memBlogs) SetStatus(context.Context, string, string) (model.UpdateResult, error) {
	return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memBlogs) Delete(context.Context, string) (model.DeleteResult, error) {
	return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type memLocations struct {
	upazilas []model.Upazila
}

func (m *memLocations) Districts(context.Context) ([]model.District, error) {
	return []model.District{{ID: "1", Name: "Dhaka"}}, nil
}

func (m *memLocations) Upazilas(_ context.Context, districtID string) ([]model.Upazila, error) {
	out := []model.Upazila{}
	for _, u := range m.upazilas {
		if districtID == "" || u.DistrictID == districtID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memLocations) AddDistrict(context.Context, model.District) (model.InsertResult, error) {
	return model.InsertResult{Acknowledged: true}, nil
}

func (m *memLocations) AddUpazila(_ context.Context, u model.Upazila) (model.InsertResult, error) {
	m.upazilas = append(m.upazilas, u)
	return model.InsertResult{Acknowledged: true}, nil
}

func TestIssueToken(t *testing.T) {
	issuer := utils.NewTokenIssuer("s3cret", time.Hour)
	e := newEcho()
	e.POST("/jwt", NewAuthHandler(issuer, nop).IssueToken)

	rec := do(e, http.MethodPost, "/jwt", `{"email":"a@x.com","plan":"gold"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	claims, err := issuer.Verify(out["token"])
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "gold", claims["plan"])
}

func TestIssueToken_NoSecret(t *testing.T) {
	e := newEcho()
	e.POST("/jwt", NewAuthHandler(utils.NewTokenIssuer("", time.Hour), nop).IssueToken)

	rec := do(e, http.MethodPost, "/jwt", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token\":")
}

func TestMe(t *testing.T) {
	e := newEcho()
	e.GET("/me", NewAuthHandler(nil, nop).Me, as("a@x.com"))

	rec := do(e, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, rec.Body.String())
}

func TestBlog(t *testing.T) {
	blogs := &memBlogs{}
	cache := &spyCache{}
	h := NewBlogHandler(blogs, cache, nop)
	e := newEcho()
	e.POST("/blog", h.Create, as("vol@x.com"))
	e.PATCH("/blog/:id", h.SetStatus)

	rec := do(e, http.MethodPost, "/blog", `{"title":"Why donate","content":"..."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, blogs.posts, 1)
	assert.Equal(t, "vol@x.com", blogs.posts[0].AuthorEmail)
	assert.ElementsMatch(t, []string{"/blog", "/blog/:id"}, cache.routes)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/blog", `{"content":"no title"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/blog", `{"title":"t","content":"c","thumbnail":"not a url"}`).Code)

	assert.Equal(t, http.StatusOK, do(e, http.MethodPatch, "/blog/"+validID(), `{"status":"published"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPatch, "/blog/"+validID(), `{"status":"archived"}`).Code)
}

func TestLocations(t *testing.T) {
	locs := &memLocations{}
	cache := &spyCache{}
	h := NewLocationHandler(locs, cache, nop)
	e := newEcho()
	e.GET("/district", h.Districts)
	e.GET("/upazila", h.Upazilas)
	e.POST("/upazila", h.AddUpazila)

	rec := do(e, http.MethodGet, "/district", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dhaka")

	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/upazila", `{"id":"10","district_id":"1","name":"Savar"}`).Code)
	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/upazila", `{"id":"20","district_id":"2","name":"Other"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/upazila", `{"name":"x"}`).Code)
	assert.Equal(t, []string{"/upazila", "/upazila"}, cache.routes)

	rec = do(e, http.MethodGet, "/upazila?district_id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Savar")
	assert.NotContains(t, rec.Body.String(), "Other")
}

func TestStates(t *testing.T) {
	e := newEcho()
	e.GET("/states", NewStatsHandler(fixedCounter{n: 3}, fixedCounter{n: 7}, fixedCounter{n: 1}, nop).States)

	rec := do(e, http.MethodGet, "/states", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":3,"donations":7,"blogs":1}`, rec.Body.String())

	e = newEcho()
	e.GET("/states", NewStatsHandler(fixedCounter{n: 3}, fixedCounter{err: errBoom}, fixedCounter{}, nop).States)
	assert.Equal(t, http.StatusInternalServerError, do(e, http.MethodGet, "/states", "").Code)
}
