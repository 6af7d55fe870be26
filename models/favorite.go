package models

import "time"

// FavoriteColor is a color saved by a user. Only the flattened numeric
// fields are persisted; the ColorInfo wire object is rebuilt on read.
type FavoriteColor struct {
	ID        int       `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Hex       string    `json:"hex" db:"hex"`
	R         int       `json:"r" db:"r"`
	G         int       `json:"g" db:"g"`
	B         int       `json:"b" db:"b"`
	H         int       `json:"h" db:"h"`
	S         int       `json:"s" db:"s"`
	L         int       `json:"l" db:"l"`
	ColorName string    `json:"colorName" db:"color_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FavoriteRequest is the body for the favorites upsert endpoint.
type FavoriteRequest struct {
	Color string `json:"color"`
}
