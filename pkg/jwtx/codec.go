package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = 30 * time.Minute

// ErrInvalidToken is the single verification failure. Signature mismatch,
// malformed structure and expiry all collapse into it so callers cannot
// distinguish why a token was rejected.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Config describes the shared-secret signing setup. The secret and algorithm
// come from process configuration, constructed once at startup and injected
// here rather than read from globals.
type Config struct {
	Secret    []byte
	Algorithm string        // HS256 (default), HS384 or HS512
	Issuer    string        // optional iss claim, enforced on verify when set
	TTL       time.Duration // default DefaultAccessTokenTTL
}

// Codec signs and verifies compact bearer tokens carrying a subject and an
// expiry. Tokens are stateless: validity is fully determined by the signature
// and the exp claim at verification time, so they cannot be revoked early.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	ttl    time.Duration

	// Now is the clock used for issuance and expiry checks. Tests override
	// it to simulate the passage of time.
	Now func() time.Time
}

// Verifier validates a bearer token and returns the subject it asserts.
type Verifier interface {
	Verify(token string) (subject string, err error)
}

func New(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("jwtx: signing secret must not be empty")
	}

	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("jwtx: unsupported algorithm %q", cfg.Algorithm)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return &Codec{
		secret: cfg.Secret,
		method: method,
		issuer: cfg.Issuer,
		ttl:    ttl,
		Now:    time.Now,
	}, nil
}

// TTL returns the configured access token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Sign issues a token for the subject using the configured TTL.
func (c *Codec) Sign(subject string) (string, error) {
	return c.SignWithTTL(subject, c.ttl)
}

// SignWithTTL issues a token for the subject expiring at now + ttl.
func (c *Codec) SignWithTTL(subject string, ttl time.Duration) (string, error) {
	now := c.Now().UTC()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign token: %w", err)
	}
	return token, nil
}

// Verify decodes the token, checks the signature against the configured
// secret and algorithm, and checks expiry against the injected clock. It
// returns the subject only when every check passes.
func (c *Codec) Verify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return c.Now().UTC() }),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
