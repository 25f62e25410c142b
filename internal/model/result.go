package model

// The result types below mirror the document store's write acknowledgements
// and are returned to clients as-is.

// InsertResult is the outcome of a single insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult is the outcome of a single update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult is the outcome of a single delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Stats is the dashboard summary served by GET /states.
type Stats struct {
	Users     int64 `json:"users"`
	Donations int64 `json:"donations"`
	Blogs     int64 `json:"blogs"`
}
