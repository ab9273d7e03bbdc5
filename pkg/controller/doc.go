// Package controller contains the HTTP middlewares and helper handlers of the
// gateway's debug server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers for the read-only debug surface.
//   - WithAccessLog: request-scoped logger carrying the request ID and the
//     resolved client IP, plus a structured access log per request.
//
// Helpers:
//   - ClientIP: resolves the originating client address from the same
//     forwarded-IP headers the gateway passes upstream on auth calls.
//   - Profiler: net/http/pprof pages under /debug/pprof/.
package controller
