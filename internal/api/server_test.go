package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway/internal/api"
	mockcrafter "gateway/pkg/crafter/mock"
	"gateway/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*mockcrafter.MockClient, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockcrafter.NewMockClient(ctrl)
	srv := api.NewServer(client, api.Options{Addr: ":0", MetricsPath: "/metrics"})

	return client, srv.Handler
}

func TestServer_healthz(t *testing.T) {
	_, h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestServer_status_notActivated(t *testing.T) {
	client, h := newTestServer(t)

	client.EXPECT().Activated().Return(false)
	client.EXPECT().Website().Return(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"activated":false}`, rec.Body.String())
}

func TestServer_status_activated(t *testing.T) {
	client, h := newTestServer(t)

	client.EXPECT().Activated().Return(true)
	client.EXPECT().Website().Return(&domain.Website{
		ID:   "site-1",
		Name: "My Server",
		URL:  "https://play.example.com",
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"activated":true,"website":{"id":"site-1","name":"My Server","url":"https://play.example.com"}}`,
		rec.Body.String())
}

func TestServer_metrics(t *testing.T) {
	_, h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_pprofPagesResolve(t *testing.T) {
	_, h := newTestServer(t)

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
