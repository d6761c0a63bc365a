// http.go implements the HTTP front door for multi-user deployments.
//
// Routes: GET /health for load-balancer checks, /mcp for the streamable
// HTTP MCP transport. The front door is the sole writer of the per-request
// credential context: it extracts the caller's bearer token from the
// Authorization header and binds it to the request's context, where the
// credential resolver picks it up for every outbound API call made during
// that request. Requests without a valid bearer token are rejected with 401
// unless default-credential fallback is explicitly enabled. Because the
// token lives on the request context, it is discarded with the request on
// every exit path, including cancellation mid-flight.

package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ga-tools/analytics-mcp/internal/auth"
)

// HTTPOptions configures the HTTP front door.
type HTTPOptions struct {
	// Addr is the listen address, e.g. "0.0.0.0:8080".
	Addr string
	// AllowDefaultCredentials permits requests without a bearer token to
	// fall back to application default credentials. Off in multi-user
	// deployments.
	AllowDefaultCredentials bool
}

// ServeHTTP runs the MCP server behind the HTTP front door until ctx is
// cancelled, then shuts down gracefully.
func ServeHTTP(ctx context.Context, opts HTTPOptions) error {
	streamable := server.NewStreamableHTTPServer(NewServer(),
		server.WithEndpointPath("/mcp"),
		server.WithHTTPContextFunc(tokenIntoContext),
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.Handle("/mcp", requireBearer(opts.AllowDefaultCredentials, streamable))

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	slog.Info("http server listening", "addr", opts.Addr, "endpoint", "/mcp")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// tokenIntoContext binds the request's bearer token, if any, to the context
// handed to tool handlers.
func tokenIntoContext(ctx context.Context, r *http.Request) context.Context {
	if token, ok := bearerToken(r); ok {
		return auth.WithToken(ctx, token)
	}
	return ctx
}

// requireBearer rejects requests without a valid bearer token, unless
// default-credential fallback is enabled. Preflight requests never reach
// this handler; withCORS answers them first.
func requireBearer(allowDefault bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := bearerToken(r); !ok && !allowDefault {
			writeJSONError(w, http.StatusUnauthorized,
				"Missing or invalid Authorization header. Use 'Bearer <token>'")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// withCORS applies the permissive CORS policy the original deployment used.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
