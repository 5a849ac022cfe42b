package ipapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/enrichment"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

func newTestLookup(t *testing.T, handler http.HandlerFunc) *LocationLookup {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewLocationLookup(Config{
		URL:     server.URL,
		Timeout: 2 * time.Second,
		Limiter: enrichment.NewRateLimiterWithConfig(enrichment.RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10}),
	})
}

func TestLocationLookup_Success(t *testing.T) {
	lookup := newTestLookup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","city":"Austin","regionName":"Texas",` +
			`"country":"United States","lat":30.2672,"lon":-97.7431}`))
	})

	loc, err := lookup.Lookup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Austin, Texas, United States", loc.Display)
	assert.True(t, loc.HasCoordinates)
	assert.InDelta(t, 30.2672, loc.Latitude, 0.0001)
	assert.InDelta(t, -97.7431, loc.Longitude, 0.0001)
}

func TestLocationLookup_ZeroCoordinatesAreKnown(t *testing.T) {
	lookup := newTestLookup(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","city":"Null Island","lat":0,"lon":0}`))
	})

	loc, err := lookup.Lookup(context.Background())

	require.NoError(t, err)
	assert.True(t, loc.HasCoordinates)
	assert.Equal(t, "Null Island, , ", loc.Display)
}

func TestLocationLookup_MissingFields(t *testing.T) {
	lookup := newTestLookup(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"regionName":"Texas","country":"United States"}`))
	})

	loc, err := lookup.Lookup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Unknown, Texas, United States", loc.Display)
	assert.False(t, loc.HasCoordinates)
}

func TestLocationLookup_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "failed status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := newTestLookup(t, tt.handler)
			_, err := lookup.Lookup(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLocationLookup_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	lookup := NewLocationLookup(Config{URL: url, Timeout: time.Second})
	_, err := lookup.Lookup(context.Background())

	assert.Error(t, err)
}

func TestNewLocationLookup_Defaults(t *testing.T) {
	lookup := NewLocationLookup(Config{})

	assert.Equal(t, domain.DefaultLocationURL, lookup.url)
	assert.Equal(t, domain.DefaultLookupTimeout, lookup.client.Timeout)
	assert.NotNil(t, lookup.limiter)
}
