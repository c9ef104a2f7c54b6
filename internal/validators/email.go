package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailSyntaxValid is the cheap check used on the booking hot path.
func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts local addresses without a dot in the
	// domain; bookings want a routable one.
	at := strings.LastIndex(addr.Address, "@")
	return at > 0 && strings.Contains(addr.Address[at+1:], ".")
}

// IsEmailDomainValid additionally resolves the domain. Only used on admin
// registration where a DNS round trip is acceptable.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
