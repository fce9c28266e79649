// Package auth implements the admin bearer-token scheme: a reversible
// base64 payload of identity, issuance time, and a shared secret, valid for
// 24 hours. It preserves the functional contract of the original credential
// flow and is not a signed token.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the validity window measured from issuance.
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when the login pair does not match the
// configured admin credentials.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Config carries the configured admin identity. PasswordHash, when set,
// takes precedence over the plain Password and is compared with bcrypt.
type Config struct {
	Username     string
	Password     string
	PasswordHash string
	Secret       string
}

// Authenticator issues and validates admin tokens.
type Authenticator struct {
	cfg Config
	now func() time.Time
}

// New builds an Authenticator. The clock is injectable via WithClock for
// expiry tests.
func New(cfg Config) *Authenticator {
	return &Authenticator{cfg: cfg, now: time.Now}
}

// WithClock overrides the time source and returns the Authenticator.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// IssueToken validates the credential pair and mints a bearer token
// encoding identity, issuance time and the shared secret.
func (a *Authenticator) IssueToken(username, password string) (string, error) {
	if !a.credentialsMatch(username, password) {
		return "", ErrInvalidCredentials
	}
	payload := fmt.Sprintf("%s:%d:%s", username, a.now().UnixMilli(), a.cfg.Secret)
	return base64.StdEncoding.EncodeToString([]byte(payload)), nil
}

// ValidateToken reports whether the token decodes, carries the shared
// secret and the configured identity, and was issued within the validity
// window. Malformed input is simply invalid.
func (a *Authenticator) ValidateToken(token string) bool {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	parts := strings.SplitN(string(decoded), ":", 3)
	if len(parts) != 3 {
		return false
	}
	username, tsText, secret := parts[0], parts[1], parts[2]

	millis, err := strconv.ParseInt(tsText, 10, 64)
	if err != nil {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.cfg.Secret)) != 1 {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Username)) != 1 {
		return false
	}
	return a.now().Sub(time.UnixMilli(millis)) < TokenTTL
}

func (a *Authenticator) credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Username)) == 1
	if a.cfg.PasswordHash != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)) == nil
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Password)) == 1
	return userOK && passOK
}
