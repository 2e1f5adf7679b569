package external

import (
	"context"
	"net/http"
	"net/url"

	"estatex/config"
	"estatex/internal/domain/service"

	"github.com/pkg/errors"
)

type bannerResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}

// bannerClient queries the banner service with ?location=.
type bannerClient struct {
	endpoint string
	client   *http.Client
}

// NewBannerClient builds the banner client from the banners config.
func NewBannerClient(cfg *config.Config) service.BannerProvider {
	return &bannerClient{
		endpoint: cfg.Banners.URL,
		client:   &http.Client{Timeout: cfg.Banners.Timeout},
	}
}

// Banners returns an error when the service fails or reports success=false.
func (c *bannerClient) Banners(ctx context.Context, location string) ([]string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse banner endpoint")
	}
	query := u.Query()
	query.Set("location", location)
	u.RawQuery = query.Encode()

	var resp bannerResponse
	if err := getJSON(ctx, c.client, u.String(), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.Errorf("banner service declined location %q", location)
	}

	return resp.Data, nil
}
