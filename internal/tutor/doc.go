// Package tutor provides the HTTP client for the tutor inference server.
//
// # Overview
//
// The server exposes two JSON endpoints:
//
//   - GET /      liveness probe; any 2xx means the server is reachable
//   - POST /chat accepts {"question": string} and replies {"response": string}
//
// Client implements both calls. The base URL is an argument of every call
// instead of a field because the caller switches between candidate addresses
// at runtime.
//
// # Deadlines
//
// Client sets no timeout on its http.Client. The caller attaches a deadline
// to the context (5s for probes and 600s for chat by default) and IsTimeout
// tells an elapsed deadline apart from other transport failures.
//
// # Errors
//
//   - *ServerError: the server answered with a non-2xx status. Its Error text
//     is "Server responded with status N"; Detail holds the reply's "error"
//     field when the server sent one.
//   - ErrNoResponse: a 2xx reply without a non-empty string "response" field.
//   - Wrapped transport errors ("execute request: ..."). Describe strips the
//     wrapper for display.
//
// # Logging
//
// Every call is logged through log/slog with the address, HTTP status,
// elapsed time and, for chat calls, the X-Request-ID sent with the request.
package tutor
