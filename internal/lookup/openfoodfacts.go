// Package lookup resolves barcodes against the Open Food Facts public API.
// The collaborator is best-effort: any failure degrades to a not-found
// result instead of an error, so a flaky upstream never breaks scanning.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ohitslormee/baby-ess-tracker/internal/classifier"
)

const DefaultBaseURL = "https://world.openfoodfacts.org"

type Result struct {
	Found       bool    `json:"found"`
	ProductName *string `json:"product_name,omitempty"`
	Brand       *string `json:"brand,omitempty"`
	Category    *string `json:"category,omitempty"`
	Size        *string `json:"size,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// offProduct is the slice of the Open Food Facts response we care about.
type offResponse struct {
	Status  int `json:"status"`
	Product *struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Categories  string `json:"categories"`
		Quantity    string `json:"quantity"`
	} `json:"product"`
}

func (c *Client) Lookup(ctx context.Context, barcode string) Result {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("lookup: building request for %s: %v", barcode, err)
		return Result{Found: false}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("lookup: request for %s failed: %v", barcode, err)
		return Result{Found: false}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Found: false}
	}

	var body offResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("lookup: decoding response for %s: %v", barcode, err)
		return Result{Found: false}
	}

	if body.Status != 1 || body.Product == nil {
		return Result{Found: false}
	}

	category := classifier.Classify(body.Product.Categories)
	return Result{
		Found:       true,
		ProductName: &body.Product.ProductName,
		Brand:       &body.Product.Brands,
		Category:    &category,
		Size:        &body.Product.Quantity,
	}
}
