package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestProfiler_Index(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	rec := httptest.NewRecorder()

	controller.Profiler().ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

// The named pages must resolve with the mount prefix intact, since the
// handler is mounted without prefix stripping.
func TestProfiler_CmdlineResolvesUnderPrefix(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	rec := httptest.NewRecorder()

	controller.Profiler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}
