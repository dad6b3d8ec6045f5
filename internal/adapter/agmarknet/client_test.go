package agmarknet

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 2 * time.Second},
		baseURL:    baseURL,
		limit:      100,
		breaker:    gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"}),
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestFetchPrices(t *testing.T) {
	t.Run("sends api key and filter params", func(t *testing.T) {
		var gotQuery map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"records":[{"commodity":"Wheat","state":"Punjab","district":"Ludhiana","market":"Khanna","min_price":"2100","max_price":"2350","modal_price":"2200","arrival_date":"08/02/2026","grade":"FAQ"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		records, err := client.FetchPrices(context.Background(), domain.PriceFilter{
			Commodity: "Wheat",
			State:     "Punjab",
			District:  "Ludhiana",
		})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, []string{"test-key"}, gotQuery["api-key"])
		assert.Equal(t, []string{"json"}, gotQuery["format"])
		assert.Equal(t, []string{"100"}, gotQuery["limit"])
		assert.Equal(t, []string{"Wheat"}, gotQuery["filters[commodity]"])
		assert.Equal(t, []string{"Punjab"}, gotQuery["filters[state]"])
		assert.Equal(t, []string{"Ludhiana"}, gotQuery["filters[district]"])

		assert.Equal(t, "Wheat", records[0].Commodity)
		assert.Equal(t, 2200.0, records[0].ModalPrice)
	})

	t.Run("All filter values are not pushed down", func(t *testing.T) {
		var gotQuery map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"records":[]}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.FetchPrices(context.Background(), domain.PriceFilter{
			Commodity: domain.FilterAll,
			State:     domain.FilterAll,
		})
		require.NoError(t, err)

		assert.NotContains(t, gotQuery, "filters[commodity]")
		assert.NotContains(t, gotQuery, "filters[state]")
	})

	t.Run("numeric prices in the payload still normalize", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"records":[{"commodity":"Onion","state":"Maharashtra","district":"Nashik","market":"Lasalgaon","min_price":900,"max_price":1400,"modal_price":1150.5,"arrival_date":"08/02/2026"}]}`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		records, err := client.FetchPrices(context.Background(), domain.PriceFilter{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 1150.5, records[0].ModalPrice)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.FetchPrices(context.Background(), domain.PriceFilter{})
		assert.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"records": not-json`))
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		_, err := client.FetchPrices(context.Background(), domain.PriceFilter{})
		assert.Error(t, err)
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := newTestClient(srv.URL)
		client.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "test",
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})

		for i := 0; i < 3; i++ {
			_, err := client.FetchPrices(context.Background(), domain.PriceFilter{})
			require.Error(t, err)
		}

		_, err := client.FetchPrices(context.Background(), domain.PriceFilter{})
		require.Error(t, err)
		assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	})
}
