package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

const DefaultURL = "http://localhost:3500/products"

const maxBody = 1 << 20

// Source fetches the product list as a JSON array of {sku, name, price}.
type Source struct {
	url    string
	client *http.Client
}

func New(url string, timeout time.Duration) *Source {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Source{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *Source) Products(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
