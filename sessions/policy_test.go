package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-verne/ecommerce-api/models"
)

func activeSession(token, ip string) *models.Session {
	return &models.Session{
		PrincipalType: models.PrincipalAdmin,
		PrincipalID:   1,
		State:         models.SessionActive,
		Token:         token,
		IP:            ip,
	}
}

func TestValidateAcceptsMatchingToken(t *testing.T) {
	sess := activeSession("tok-1", "10.0.0.1")

	err := Validate(sess, "tok-1", "10.0.0.1", Policy{})
	assert.NoError(t, err)
}

func TestValidateRejectsRotatedToken(t *testing.T) {
	sess := activeSession("tok-2", "10.0.0.1")

	// tok-1 was valid once, then rotation replaced it with tok-2.
	err := Validate(sess, "tok-1", "10.0.0.1", Policy{})
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestValidateRejectsRevokedSession(t *testing.T) {
	sess := activeSession("tok-1", "10.0.0.1")
	sess.State = models.SessionRevoked

	err := Validate(sess, "tok-1", "10.0.0.1", Policy{})
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestValidateRejectsNilSession(t *testing.T) {
	err := Validate(nil, "tok-1", "10.0.0.1", Policy{})
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestValidateIPPinning(t *testing.T) {
	sess := activeSession("tok-1", "10.0.0.1")

	// Pinning off: a different caller IP is fine.
	assert.NoError(t, Validate(sess, "tok-1", "172.16.0.9", Policy{}))

	// Pinning on: the caller must present from the login IP.
	assert.ErrorIs(t, Validate(sess, "tok-1", "172.16.0.9", Policy{PinIP: true}), ErrSessionInvalid)
	assert.NoError(t, Validate(sess, "tok-1", "10.0.0.1", Policy{PinIP: true}))
}

func TestValidateSecondLoginInvalidatesFirstDevice(t *testing.T) {
	// Device 1 logs in, device 2 logs in and the session row is overwritten
	// wholesale. Device 1's token no longer matches the stored one.
	sess := activeSession("device-1-token", "10.0.0.1")
	sess.Token = "device-2-token"
	sess.IP = "10.0.0.2"

	err := Validate(sess, "device-1-token", "10.0.0.1", Policy{})
	assert.ErrorIs(t, err, ErrSessionInvalid)

	assert.NoError(t, Validate(sess, "device-2-token", "10.0.0.2", Policy{}))
}

func TestValidateNormalizesMappedIPv4(t *testing.T) {
	sess := activeSession("tok-1", "::ffff:10.0.0.1")

	assert.NoError(t, Validate(sess, "tok-1", "10.0.0.1", Policy{PinIP: true}))

	sess.IP = "10.0.0.1"
	assert.NoError(t, Validate(sess, "tok-1", "::ffff:10.0.0.1", Policy{PinIP: true}))
}
