package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// requestFields describes a matched request by its route, never by the raw
// path alone, so log lines group the same way the request metrics do.
func requestFields(req *http.Request) log.Fields {
	fields := log.Fields{
		"method": req.Method,
		"route":  routeName(req),
		"path":   req.URL.Path,
	}
	if userID, ok := mux.Vars(req)["userId"]; ok {
		fields["user_id"] = userID
	}
	return fields
}

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(requestFields(r)).
				WithField("ua", r.Header.Get("User-Agent")).
				Trace(" ====> request")
			next.ServeHTTP(w, r)
		})
	}
}
