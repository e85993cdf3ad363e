package sessions

import (
	"errors"
	"strings"

	"github.com/atelier-verne/ecommerce-api/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrNoToken            = errors.New("no refresh token")
	ErrSessionInvalid     = errors.New("session invalid or expired")
)

// Policy controls session validation beyond token equality. IP pinning is
// configurable rather than an environment branch; production deployments
// enable it.
type Policy struct {
	PinIP bool
}

// Validate checks a presented refresh token against the stored session.
// Equality with the single stored token is what makes rotation single-use:
// an already-rotated token simply no longer matches.
func Validate(sess *models.Session, presented, ip string, p Policy) error {
	if sess == nil || sess.State != models.SessionActive {
		return ErrSessionInvalid
	}
	if sess.Token != presented {
		return ErrSessionInvalid
	}
	if p.PinIP && normalizeIP(sess.IP) != normalizeIP(ip) {
		return ErrSessionInvalid
	}
	return nil
}

// Proxies hand us IPv4 addresses in mapped form; compare without the prefix.
func normalizeIP(ip string) string {
	return strings.TrimPrefix(ip, "::ffff:")
}
