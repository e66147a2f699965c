package model

import "github.com/shopspring/decimal"

// InsertResult reports the identifier of a newly stored record.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResult reports how many records matched and changed.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Stats is the admin dashboard snapshot. It is derived on every request.
type Stats struct {
	Customers int64           `json:"customers"`
	Products  int64           `json:"products"`
	Orders    int64           `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
}
