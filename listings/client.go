// Package listings retrieves property listings from the third-party
// listings provider. It is plain I/O plumbing: fetch, decode, return.
package listings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/palette-lab/api/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search fetches listings for a city, optionally capped at limit.
func (c *Client) Search(city string, limit int) (models.ListingAPIResponse, error) {
	query := url.Values{}
	if city != "" {
		query.Set("city", city)
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}

	requestURL := fmt.Sprintf("%s/listings?%s", c.baseURL, query.Encode())

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return models.ListingAPIResponse{}, fmt.Errorf("error fetching listings: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ListingAPIResponse{}, fmt.Errorf("listings API returned status: %d", resp.StatusCode)
	}

	var listingResponse models.ListingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&listingResponse); err != nil {
		return models.ListingAPIResponse{}, fmt.Errorf("error parsing listings response: %v", err)
	}

	return listingResponse, nil
}
