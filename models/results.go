package models

// Document is a schemaless partial document used for `$set`-style updates.
type Document map[string]any

// UpdateResult is the raw outcome of an update or upsert, serialized with the
// field names the document store reports.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	// UpsertedID is set only when the upsert created a new document.
	UpsertedID any `json:"upsertedId"`
}

// InsertResult is the raw outcome of a single insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// DeleteResult is the raw outcome of a single delete. DeletedCount is 0 or 1.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
