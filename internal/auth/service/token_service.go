package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	apperrors "github.com/edulabs/classauth/internal/errors"
)

// tokenService implements TokenService using HMAC-SHA256 signed compact JWS.
type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// TokenServiceOption configures optional token service behavior.
type TokenServiceOption func(*tokenService)

// WithTimeFunc overrides the clock used for issuance and expiry checks.
func WithTimeFunc(now func() time.Time) TokenServiceOption {
	return func(t *tokenService) {
		t.now = now
	}
}

// NewTokenService creates a TokenService signing with the given process-wide
// secret and fixed TTL. The signing algorithm is fixed to HS256; tokens signed
// with any other algorithm (including "none") are rejected at validation.
func NewTokenService(secret string, ttl time.Duration, opts ...TokenServiceOption) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, apperrors.New("token ttl must be positive")
	}

	svc := &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}

	svc.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(svc.now),
	)

	return svc, nil
}

// Issue signs a new access token for the identity.
func (t *tokenService) Issue(identity authDomain.Identity) (string, time.Time, error) {
	issuedAt := t.now().UTC()
	expiresAt := issuedAt.Add(t.ttl)

	claims := &authDomain.AccessClaims{
		UserID:   identity.UserID,
		CourseID: identity.CourseID,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.Must(uuid.NewV7()).String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// Validate parses and verifies a compact token string and reconstructs the
// identity it carries. All rejections map to ErrInvalidToken; the wrapped
// detail is for logs only and never reaches the client.
func (t *tokenService) Validate(tokenString string) (authDomain.Identity, error) {
	claims := &authDomain.AccessClaims{}

	parsed, err := t.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		// Structural, signature, and expiry failures all collapse into one
		// error kind so responses cannot be used to probe token validity.
		return authDomain.Identity{}, apperrors.Wrap(apperrors.ErrInvalidToken, err.Error())
	}
	if !parsed.Valid {
		return authDomain.Identity{}, apperrors.ErrInvalidToken
	}

	if claims.UserID <= 0 {
		return authDomain.Identity{}, apperrors.Wrap(apperrors.ErrInvalidToken, "missing user claim")
	}

	identity, err := claims.Identity()
	if err != nil {
		return authDomain.Identity{}, apperrors.Wrap(apperrors.ErrInvalidToken, "unrecognized role claim")
	}

	return identity, nil
}
