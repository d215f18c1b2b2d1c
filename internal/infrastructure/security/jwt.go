package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSigningKey = errors.New("jwt signing key is empty")

// TokenManager checks and issues HS256 tokens bound to one issuer and one
// audience.
type TokenManager struct {
	signingKey []byte
	issuer     string
	audience   string
	parser     *jwt.Parser
}

func NewTokenManager(signingKey []byte, issuer, audience string) (*TokenManager, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &TokenManager{
		signingKey: signingKey,
		issuer:     issuer,
		audience:   audience,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Validate returns nil only for a well-formed token with a valid signature,
// the expected issuer and audience, and an exp claim in the future.
func (m *TokenManager) Validate(tokenStr string) error {
	token, err := m.parser.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.signingKey, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

// Issue signs a token for subject that expires after ttl.
func (m *TokenManager) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    m.issuer,
		Audience:  jwt.ClaimStrings{m.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(m.signingKey)
}
