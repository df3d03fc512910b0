package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brinto-swe/event-management-system/internal/handler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func noAuth(c *ginext.Context) { c.Next() }

func newTestRouter() *ginext.Engine {
	h := handler.NewHandler(nil, nil, nil, nil, nil, nil, handler.SessionCookie{Name: "sessionid"})
	metrics := promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	return InitRouter("test", h, metrics, noAuth)
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/health", "/metrics", "/signup/", "/login/?next=/my-rsvps/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_LoginGatedRoutesRedirectAnonymous(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/my-rsvps/"},
		{http.MethodGet, "/events/create/"},
		{http.MethodPost, "/events/3f1c2a9e-8d4b-4c3e-9a51-6b2f0d7e8c11/rsvp/"},
		{http.MethodGet, "/dashboard/admin/"},
		{http.MethodGet, "/categories/"},
		{http.MethodGet, "/profile/"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, http.StatusSeeOther, w.Code, tt.path)
		assert.Contains(t, w.Header().Get("Location"), "/login/?next=", tt.path)
	}
}

func TestRouter_HomeRedirectsAnonymousToEvents(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/events/", w.Header().Get("Location"))
}
