package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estatex/config"
	domainerrors "estatex/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		Regions: &config.RegionsConfig{BaseURL: url + "/v1/", APIKey: "secret", Country: "IN", Timeout: time.Second},
		Banners: &config.BannersConfig{URL: url + "/banners", Timeout: time.Second},
	}
}

func TestRegionDirectory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-CSCAPI-KEY") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/countries/IN/states":
			_, _ = w.Write([]byte(`[{"id":4008,"name":"Maharashtra","iso2":"MH"}]`))
		case "/v1/countries/IN/states/MH/cities":
			_, _ = w.Write([]byte(`[{"id":133024,"name":"Mumbai"},{"id":133101,"name":"Pune"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	directory := NewRegionDirectory(newTestConfig(server.URL))

	states, err := directory.States(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "MH", states[0].ISO2)

	cities, err := directory.Cities(context.Background(), "MH")
	require.NoError(t, err)
	assert.Len(t, cities, 2)
	assert.Equal(t, "Mumbai", cities[0].Name)

	_, err = directory.Cities(context.Background(), "XX")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstream)
}

func TestBannerClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("location") == "Andheri" {
			_, _ = w.Write([]byte(`{"success":true,"data":["https://cdn/a.jpg"]}`))

			return
		}
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	client := NewBannerClient(newTestConfig(server.URL))

	banners, err := client.Banners(context.Background(), "Andheri")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/a.jpg"}, banners)

	_, err = client.Banners(context.Background(), "Nowhere")
	assert.Error(t, err)
}

func TestGetJSON_RejectsOversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/small" {
			_, _ = w.Write([]byte(`{"data":"ok"}`))

			return
		}
		_, _ = w.Write([]byte(`{"data":"` + strings.Repeat("a", maxResponseBody) + `"}`))
	}))
	defer server.Close()

	var small map[string]string
	require.NoError(t, getJSON(context.Background(), server.Client(), server.URL+"/small", nil, &small))
	assert.Equal(t, "ok", small["data"])

	var large map[string]string
	err := getJSON(context.Background(), server.Client(), server.URL+"/large", nil, &large)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
