package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Resolver is the subset of *net.Resolver the domain check needs.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// EmailDomainChecker returns a check that accepts an address when its domain
// publishes MX records or at least resolves. Each lookup gives up after
// timeout.
func EmailDomainChecker(r Resolver, timeout time.Duration) func(email string) bool {
	return func(email string) bool {
		domain, ok := emailDomain(email)
		if !ok {
			return false
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
			return true
		}
		if hosts, err := r.LookupHost(ctx, domain); err == nil && len(hosts) > 0 {
			return true
		}
		return false
	}
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return strings.ToLower(email[at+1:]), true
}
