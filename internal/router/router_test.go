package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hawkerhero/internal/config"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/handler"
	"hawkerhero/internal/metrics"
	"hawkerhero/internal/session"
)

type stubRenderer struct {
	name string
	data map[string]interface{}
}

func (r *stubRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.data, _ = data.(map[string]interface{})
	_, err := io.WriteString(w, name)
	return err
}

type mapBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (b *mapBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[key], nil
}

func (b *mapBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}

func (b *mapBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func newServer(t *testing.T) (*echo.Echo, *stubRenderer) {
	t.Helper()
	log := zap.NewNop()
	cfg := &config.Config{UploadDir: t.TempDir(), PageSize: 10, LoginRateLimit: 1}
	sessions := session.NewManager(
		session.NewStore(&mapBackend{data: map[string][]byte{}}, time.Hour),
		session.NewSigner("test-secret", time.Hour),
		false,
		log,
	)
	// only the gates in front of these handlers run in these tests
	h := Handlers{
		Auth:            handler.NewAuthHandler(nil, nil, log),
		Dashboard:       handler.NewDashboardHandler(nil, nil, log),
		Stalls:          handler.NewStallHandler(nil, nil, nil, nil, cfg.PageSize, log),
		Centers:         handler.NewHawkerCenterHandler(nil, nil, cfg.PageSize, log),
		Foods:           handler.NewFoodItemHandler(nil, nil, nil, cfg.PageSize, log),
		Reviews:         handler.NewReviewHandler(nil, nil, cfg.PageSize, log),
		Favorites:       handler.NewFavoriteHandler(nil, log),
		Recommendations: handler.NewRecommendationHandler(nil, nil, nil, cfg.PageSize, log),
	}

	e := echo.New()
	view := &stubRenderer{}
	e.Renderer = view
	Register(e, cfg, log, sessions, metrics.New(), h)
	return e, view
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	return serveForm(e, method, target, nil, nil)
}

// serveForm sends form urlencoded, with the cookies given.
func serveForm(e *echo.Echo, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func csrfCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == handler.CSRFField {
			return c
		}
	}
	return nil
}

func TestRegister_Healthz(t *testing.T) {
	e, _ := newServer(t)

	rec := serve(e, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRegister_UnknownRouteRendersErrorPage(t *testing.T) {
	e, view := newServer(t)

	rec := serve(e, http.MethodGet, "/no-such-page")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", view.name)
	require.NotNil(t, view.data)
	assert.Equal(t, http.StatusNotFound, view.data["Code"])
	assert.Equal(t, errors.MsgUnavailable, view.data["Message"])
}

func TestRegister_GatesRunBeforeHandlers(t *testing.T) {
	e, _ := newServer(t)
	token := &http.Cookie{Name: handler.CSRFField, Value: "test-token"}

	for _, tt := range []struct {
		method, path string
		form         url.Values
	}{
		{http.MethodGet, "/dashboard", nil},
		{http.MethodGet, "/admin", nil},
		{http.MethodGet, "/favorites", nil},
		{http.MethodPost, "/favorites/add", url.Values{}},
		{http.MethodGet, "/addReviews", nil},
		{http.MethodGet, "/reviews/delete/1", nil},
		{http.MethodPost, "/stalls", url.Values{}},
		{http.MethodPost, "/hawker-centers/1", url.Values{"_method": {http.MethodDelete}}},
		{http.MethodPost, "/recommendations/delete/1", url.Values{}},
	} {
		if tt.form != nil {
			tt.form.Set(handler.CSRFField, token.Value)
		}
		rec := serveForm(e, tt.method, tt.path, tt.form, token)
		assert.Equal(t, http.StatusSeeOther, rec.Code, tt.path)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), tt.path)
	}
}

func TestRegister_UnsafeRequestsNeedToken(t *testing.T) {
	e, view := newServer(t)

	rec := serve(e, http.MethodGet, "/login")
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := csrfCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, cookie.Value, view.data["CSRF"])

	tests := []struct {
		name   string
		method string
		target string
		form   url.Values
		cookie *http.Cookie
		want   int
	}{
		{"post without token", http.MethodPost, "/stalls", url.Values{"name": {"x"}}, cookie, http.StatusForbidden},
		{"post with foreign token", http.MethodPost, "/stalls", url.Values{handler.CSRFField: {"forged"}}, cookie, http.StatusForbidden},
		{"post without cookie", http.MethodPost, "/register", url.Values{handler.CSRFField: {cookie.Value}}, nil, http.StatusForbidden},
		{"override without token", http.MethodPost, "/stalls/1", url.Values{"_method": {http.MethodDelete}}, cookie, http.StatusForbidden},
		{"logout link without token", http.MethodGet, "/logout", nil, cookie, http.StatusForbidden},
		{"logout link with foreign token", http.MethodGet, "/logout?_csrf=forged", nil, cookie, http.StatusForbidden},
		{"logout link with token", http.MethodGet, "/logout?_csrf=" + url.QueryEscape(cookie.Value), nil, cookie, http.StatusSeeOther},
		{"post with token", http.MethodPost, "/stalls", url.Values{handler.CSRFField: {cookie.Value}}, cookie, http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view.name = ""
			rec := serveForm(e, tt.method, tt.target, tt.form, tt.cookie)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.Equal(t, "error", view.name)
				assert.Equal(t, http.StatusForbidden, view.data["Code"])
			}
		})
	}
}

func TestRequireToken(t *testing.T) {
	e := echo.New()
	e.GET("/comments/delete/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, csrf(false), requireToken)
	cookie := &http.Cookie{Name: handler.CSRFField, Value: "abc123"}

	tests := []struct {
		name   string
		target string
		cookie *http.Cookie
		want   int
	}{
		{"no cookie and no token", "/comments/delete/1", nil, http.StatusForbidden},
		{"token without cookie", "/comments/delete/1?_csrf=abc123", nil, http.StatusForbidden},
		{"cookie without token", "/comments/delete/1", cookie, http.StatusForbidden},
		{"mismatch", "/comments/delete/1?_csrf=abc124", cookie, http.StatusForbidden},
		{"match", "/comments/delete/1?_csrf=abc123", cookie, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveForm(e, http.MethodGet, tt.target, nil, tt.cookie)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRegister_MetricsEndpoint(t *testing.T) {
	e, _ := newServer(t)
	serve(e, http.MethodGet, "/healthz")

	rec := serve(e, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestLoginLimiter(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, loginLimiter(0.001))

	for i := 0; i < loginBurst; i++ {
		assert.Equal(t, http.StatusNoContent, serve(e, http.MethodPost, "/login").Code, i)
	}
	rec := serve(e, http.MethodPost, "/login")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestLoginLimiter_Disabled(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, loginLimiter(0))

	for i := 0; i < loginBurst*2; i++ {
		assert.Equal(t, http.StatusNoContent, serve(e, http.MethodPost, "/login").Code, i)
	}
}
