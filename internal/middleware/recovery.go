package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a panicking handler into a 500, unless the handler
// already started its response.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{ResponseWriter: respWriter, statusCode: http.StatusOK}
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				log.WithFields(requestFields(req)).
					WithField("stack", string(debug.Stack())).
					Errorf("http: panic serving request: %v", r)
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				if !resp.wroteHeader {
					http.Error(resp, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(resp, req)
		})
	}
}
