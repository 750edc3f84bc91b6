package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/todo-service/internal/core/domain"
)

const defaultTokenTTL = 15 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// self-contained: there is no server-side session state and no revocation —
// a token stays valid until its expiry elapses. Rotating the secret
// invalidates every previously issued token.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue signs a token carrying the claims with the service's default TTL.
func (s *TokenService) Issue(claims domain.TokenClaims) (string, error) {
	return s.IssueWithTTL(claims, s.defaultTTL)
}

// IssueWithTTL signs a token expiring at now+ttl. The ttl is used as given:
// a zero ttl produces a token that is already expired when presented.
func (s *TokenService) IssueWithTTL(claims domain.TokenClaims, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Subject,
		"email": claims.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Failures map
// to exactly one of the domain token errors:
//
//	ErrTokenExpired          — exp has passed
//	ErrTokenMissingClaim     — sub, email, or exp absent
//	ErrTokenSignatureInvalid — everything else (foreign secret, wrong alg,
//	                           malformed token)
func (s *TokenService) Verify(token string) (domain.TokenClaims, error) {
	mapClaims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mapClaims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.TokenClaims{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return domain.TokenClaims{}, domain.ErrTokenMissingClaim
		default:
			return domain.TokenClaims{}, domain.ErrTokenSignatureInvalid
		}
	}
	if !parsed.Valid {
		return domain.TokenClaims{}, domain.ErrTokenSignatureInvalid
	}

	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	if sub == "" || email == "" {
		return domain.TokenClaims{}, domain.ErrTokenMissingClaim
	}

	return domain.TokenClaims{Subject: sub, Email: email}, nil
}
