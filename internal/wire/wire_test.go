package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/data/repository"
	"fyyur/internal/listing"
	"fyyur/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// routes that never reach storage can be served with an empty repository.
func testApp() *App {
	clock := listing.FixedClock(time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC))
	return Wiring(&repository.Repository{}, clock, zap.NewNop())
}

func TestRouter_StaticPages(t *testing.T) {
	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/health", http.StatusOK, "OK"},
		{"/", http.StatusOK, `name="search_term"`},
		{"/venues/create", http.StatusOK, `action="/venues/create"`},
		{"/artists/create", http.StatusOK, `action="/artists/create"`},
		{"/shows/create", http.StatusOK, `action="/shows/create"`},
		{"/no/such/page", http.StatusNotFound, "<h1>404</h1>"},
		{"/venues/abc", http.StatusNotFound, "<h1>404</h1>"},
	}

	router := testApp().Router
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}
