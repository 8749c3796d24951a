package suppliers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

func TestHTTPMatcherMatchOrCreate(t *testing.T) {
	t.Run("успешное сопоставление", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req matchRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Snap AV", req.Name)
			assert.Equal(t, 0.82, req.Threshold)

			json.NewEncoder(w).Encode(MatchResult{
				SupplierID: 77,
				Name:       "Snap AV",
				Confidence: 0.95,
			})
		}))
		defer srv.Close()

		matcher := NewHTTPMatcher(srv.URL, logging.GetLogger())
		result, err := matcher.MatchOrCreate(context.Background(), "Snap AV", 0.82)

		require.NoError(t, err)
		assert.Equal(t, int64(77), result.SupplierID)
		assert.False(t, result.Created)
	})

	t.Run("нестатусный ответ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		defer srv.Close()

		matcher := NewHTTPMatcher(srv.URL, logging.GetLogger())
		_, err := matcher.MatchOrCreate(context.Background(), "Snap AV", 0.82)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "статус 500")
	})

	t.Run("пустой supplier_id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(MatchResult{SupplierID: 0})
		}))
		defer srv.Close()

		matcher := NewHTTPMatcher(srv.URL, logging.GetLogger())
		_, err := matcher.MatchOrCreate(context.Background(), "Snap AV", 0.82)

		require.Error(t, err)
	})

	t.Run("сервис недоступен", func(t *testing.T) {
		matcher := NewHTTPMatcher("http://127.0.0.1:1", logging.GetLogger())
		_, err := matcher.MatchOrCreate(context.Background(), "Snap AV", 0.82)
		require.Error(t, err)
	})
}
