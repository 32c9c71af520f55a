package model

// Write acknowledgments, shaped like the ones MongoDB clients return.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedId   interface{} `json:"insertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedId    interface{} `json:"upsertedId"`
}
