package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Limit(t *testing.T) {
	// An hour-long refill window keeps the token bucket deterministic for
	// the whole test run.
	limiter := NewRateLimiter(5, time.Hour, time.Hour)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := limiter.Limit(okHandler)

	doRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/appointments", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Allows Requests Within Limit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			rr := doRequest()
			assert.Equal(t, http.StatusOK, rr.Code, "request inside the burst should pass")
		}
	})

	t.Run("Rejects Request Over Limit", func(t *testing.T) {
		rr := doRequest()

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		var errorResponse responses.ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
		assert.Equal(t, constvars.ErrClientTooManyRequests, errorResponse.Error)
	})

	t.Run("Blocks Client After Limit Exceeded", func(t *testing.T) {
		rr := doRequest()

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		var errorResponse responses.ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
		assert.Equal(t, constvars.ErrClientTemporarilyBlocked, errorResponse.Error)
	})
}
