package external

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"estatex/config"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/service"
)

const headerCSCAPIKey = "X-CSCAPI-KEY"

// regionDirectory reads states and cities of one country from the
// countrystatecity.in REST API.
type regionDirectory struct {
	baseURL string
	apiKey  string
	country string
	client  *http.Client
}

// NewRegionDirectory builds the directory client from the regions config.
func NewRegionDirectory(cfg *config.Config) service.RegionDirectory {
	regions := cfg.Regions

	return &regionDirectory{
		baseURL: strings.TrimRight(regions.BaseURL, "/"),
		apiKey:  regions.APIKey,
		country: regions.Country,
		client:  &http.Client{Timeout: regions.Timeout},
	}
}

func (d *regionDirectory) States(ctx context.Context) ([]entity.State, error) {
	var states []entity.State
	if err := d.get(ctx, "/countries/"+url.PathEscape(d.country)+"/states", &states); err != nil {
		return nil, domainerrors.ErrUpstream.WithMessage("Error fetching states").WithDetails(err.Error())
	}

	return states, nil
}

func (d *regionDirectory) Cities(ctx context.Context, stateCode string) ([]entity.City, error) {
	path := "/countries/" + url.PathEscape(d.country) + "/states/" + url.PathEscape(stateCode) + "/cities"

	var cities []entity.City
	if err := d.get(ctx, path, &cities); err != nil {
		return nil, domainerrors.ErrUpstream.WithMessage("Error fetching cities").WithDetails(err.Error())
	}

	return cities, nil
}

func (d *regionDirectory) get(ctx context.Context, path string, dest any) error {
	header := http.Header{}
	header.Set(headerCSCAPIKey, d.apiKey)

	return getJSON(ctx, d.client, d.baseURL+path, header, dest)
}
