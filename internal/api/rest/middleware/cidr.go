package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/danilovkiri/dk_go_shortlinks/internal/config"
)

// TrustedNetHandler sets object structure.
type TrustedNetHandler struct {
	IPNet *net.IPNet
}

// NewTrustedNetHandler initializes a new trusted network handler. An empty subnet
// leaves the guarded routes open.
func NewTrustedNetHandler(cfg *config.Config) (*TrustedNetHandler, error) {
	if cfg.TrustedSubnet == "" {
		return &TrustedNetHandler{}, nil
	}
	_, ipnet, err := net.ParseCIDR(cfg.TrustedSubnet)
	if err != nil {
		log.Println("Trusted network was not initialized:", err)
		return nil, err
	}
	return &TrustedNetHandler{IPNet: ipnet}, nil
}

// TrustedNetworkHandler rejects requests coming from outside the trusted subnet.
func (tn *TrustedNetHandler) TrustedNetworkHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tn.IPNet == nil || tn.contains(clientIP(r)) {
			next.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Internal subnet access violation", http.StatusForbidden)
	})
}

func (tn *TrustedNetHandler) contains(ip net.IP) bool {
	return ip != nil && tn.IPNet.Contains(ip)
}

// clientIP prefers X-Real-IP, then the first X-Forwarded-For entry, then the peer address.
func clientIP(r *http.Request) net.IP {
	if ip := net.ParseIP(r.Header.Get("X-Real-IP")); ip != nil {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}
