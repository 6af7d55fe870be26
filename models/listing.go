package models

// ListingAPIResponse represents the response from the property listings
// provider.
type ListingAPIResponse struct {
	Count    int       `json:"count"`
	Listings []Listing `json:"listings"`
}

// Listing represents a single property listing.
type Listing struct {
	ID          string       `json:"id"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Price       int          `json:"price"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Description string       `json:"description"`
	Photos      []string     `json:"photos"`
	Links       ListingLinks `json:"_links"`
}

type ListingLinks struct {
	Self Link `json:"self"`
}

type Link struct {
	Href string `json:"href"`
}
