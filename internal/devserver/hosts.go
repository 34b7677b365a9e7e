package devserver

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var defaultAllowedHosts = []string{"localhost", "127.0.0.1"}

type hostSet map[string]struct{}

// newHostSet always admits the loopback names; configured hosts extend them.
func newHostSet(hosts []string) hostSet {
	set := make(hostSet, len(defaultAllowedHosts)+len(hosts))
	for _, host := range append(append([]string(nil), defaultAllowedHosts...), hosts...) {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			set[host] = struct{}{}
		}
	}
	return set
}

func (s hostSet) allows(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	_, ok := s[strings.ToLower(strings.Trim(host, "[]"))]
	return ok
}

// requireHost answers 403 for requests whose Host header is not allowed.
func requireHost(allowed hostSet, logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowed.allows(r.Host) {
			logger.Warn("rejected host", zap.String("host", r.Host), zap.String("path", r.URL.Path))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
