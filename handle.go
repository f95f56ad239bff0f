package auth

import (
	"net/http"
	"strings"

	"github.com/Malcan-Technologies/shoraka-sub003/metrics"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
)

// defaultLogHandler logs and counts any error coming from our custom
// handlers. Client-facing failures carry httpio messages and log at info;
// anything else is a server fault and feeds the error counter for the route.
func defaultLogHandler(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			if httpio.CauseIsError(err) {
				metrics.HandlerError(r.URL.Path)
				logger.Req(r).Error(err)
			} else {
				logger.Req(r).Infof("['%s']", strings.Join(httpio.Messages(err), "', '"))
			}
		}
	}
}
