package controller

import (
	"net/http"
	"net/http/pprof"
)

// Profiler returns a handler serving the net/http/pprof pages. Handlers are
// registered under the /debug/pprof/ prefix, so the result mounts directly at
// that path without prefix stripping and the named profile pages resolve.
func Profiler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
