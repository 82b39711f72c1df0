package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doLimited(rl *RateLimiter, remoteAddr string) int {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-chat", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	rl.Limit(next).ServeHTTP(rec, req)
	return rec.Code
}

func TestLimitRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(0, 2)

	assert.Equal(t, http.StatusOK, doLimited(rl, "10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, doLimited(rl, "10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, doLimited(rl, "10.0.0.1:1111"))
}

func TestLimitTracksClientsIndependently(t *testing.T) {
	rl := NewRateLimiter(0, 1)

	assert.Equal(t, http.StatusOK, doLimited(rl, "10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, doLimited(rl, "10.0.0.1:2222"))
	assert.Equal(t, http.StatusOK, doLimited(rl, "10.0.0.2:1111"))
}
