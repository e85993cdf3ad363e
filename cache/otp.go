// Package cache holds short-lived verification state in Redis so pending
// registrations survive process restarts and scale across instances.
package cache

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrOTPInvalid = errors.New("invalid or expired OTP")

// PendingVerification is the value stored per email key. Name is only set
// for registration flows, where the account does not exist yet.
type PendingVerification struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code"`
}

type OTPStore struct {
	rdb    *redis.Client
	prefix string
}

func NewOTPStore(rdb *redis.Client, prefix string) *OTPStore {
	return &OTPStore{rdb: rdb, prefix: prefix}
}

// GenerateCode returns a 6 digit one-time code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *OTPStore) Put(ctx context.Context, email string, v PendingVerification, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(email), data, ttl).Err()
}

// Verify checks the submitted code and consumes the entry on success. TTL
// eviction handles expiry; a missing key reads the same as a wrong code.
func (s *OTPStore) Verify(ctx context.Context, email, code string) (*PendingVerification, error) {
	data, err := s.rdb.Get(ctx, s.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrOTPInvalid
	}
	if err != nil {
		return nil, err
	}

	var v PendingVerification
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if v.Code != code {
		return nil, ErrOTPInvalid
	}

	s.rdb.Del(ctx, s.key(email))
	return &v, nil
}

func (s *OTPStore) key(email string) string {
	return s.prefix + ":" + email
}
