package federated

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type IdentityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// TokenVerifier checks HS256 id tokens shared with the provider.
type TokenVerifier struct {
	key      []byte
	issuer   string
	audience string
}

func NewTokenVerifier(key, issuer, audience string) *TokenVerifier {
	return &TokenVerifier{key: []byte(key), issuer: issuer, audience: audience}
}

func (v *TokenVerifier) Verify(token string) (*IdentityClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	parsed, err := jwt.ParseWithClaims(token, &IdentityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if len(v.key) == 0 {
			return nil, ErrNotConfigured
		}
		return v.key, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid id token")
	}
	claims, ok := parsed.Claims.(*IdentityClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid id token claims")
	}
	if claims.Subject == "" {
		return nil, ErrMissingClaim
	}
	return claims, nil
}
