package middlewarex

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const headerForwardedFor = "X-Forwarded-For"

// ClientIP returns the connection address without the port. Forwarded headers
// are honoured only through TrustedProxies, which rewrites RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// ParseTrustedProxies accepts CIDR prefixes and bare addresses.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if strings.Contains(v, "/") {
			prefix, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("netip.ParsePrefix: %w", err)
			}

			prefixes = append(prefixes, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("netip.ParseAddr: %w", err)
		}

		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}

	return prefixes, nil
}

// TrustedProxies replaces RemoteAddr with the client address from
// X-Forwarded-For when the connection comes from one of the proxies. The
// header is walked right to left and the first untrusted hop wins, so hops
// prepended by the client are ignored. Without proxies the header is ignored.
func TrustedProxies(proxies []netip.Prefix) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client, ok := forwardedClient(r, proxies); ok {
				r.RemoteAddr = net.JoinHostPort(client.String(), "0")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func forwardedClient(r *http.Request, proxies []netip.Prefix) (netip.Addr, bool) {
	if len(proxies) == 0 {
		return netip.Addr{}, false
	}

	remote, err := netip.ParseAddr(ClientIP(r))
	if err != nil || !trusted(remote, proxies) {
		return netip.Addr{}, false
	}

	hops := strings.Split(strings.Join(r.Header.Values(headerForwardedFor), ","), ",")

	var client netip.Addr

	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}

		client = hop.Unmap()

		if !trusted(client, proxies) {
			return client, true
		}
	}

	return client, client.IsValid()
}

func trusted(addr netip.Addr, proxies []netip.Prefix) bool {
	addr = addr.Unmap()

	for _, p := range proxies {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}
