package models

import "time"

// FeaturedColor is the color of the day, generated by the scheduler and
// stored with its flattened channel values.
type FeaturedColor struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	ColorName string    `json:"color_name"`
	Hex       string    `json:"hex"`
	R         int       `json:"r"`
	G         int       `json:"g"`
	B         int       `json:"b"`
	CreatedAt time.Time `json:"created_at"`
}

// FeaturedColorResponse is the simplified response for API endpoints.
type FeaturedColorResponse struct {
	Date  string    `json:"date"`
	Color ColorInfo `json:"color"`
}
