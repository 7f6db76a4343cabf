package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
)

var (
	// ErrInvalidToken covers every access-token failure: malformed,
	// signature mismatch, or not matching the store's current record.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidRefreshToken is the refresh-slot counterpart. It is a
	// distinct kind because the HTTP layer maps it to 409, not 401.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Claims is the decoded payload of a token
type Claims struct {
	Subject string
	Role    domain.Role
}

// Codec encodes and decodes signed tokens. It is stateless; the same
// secret must be shared by every instance of the service.
type Codec struct {
	secret []byte
	parser *jwt.Parser
}

// NewCodec creates a Codec signing with the given HMAC secret
func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		// Strict decoding rejects base64 segments whose unused padding
		// bits are non-zero; without it a token flipped in those bits
		// decodes to the same bytes and passes signature verification.
		parser: jwt.NewParser(
			jwt.WithStrictDecoding(),
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		),
	}
}

// Encode produces a signed token carrying the subject and role.
//
// The token deliberately carries no exp claim: lifetime is a property of
// the token store's TTL alone, not of the token itself. The jti claim
// makes two tokens minted for the same subject in the same second
// distinct, which the single-session invariant depends on.
func (c *Codec) Encode(subject string, role domain.Role) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"jti":  uuid.New().String(),
		"iat":  time.Now().Unix(),
	})
	return t.SignedString(c.secret)
}

// Decode verifies the signature and returns the embedded claims.
// Any malformed, unparseable or tampered token fails with ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	t, err := c.parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if subject == "" || !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Claims{Subject: subject, Role: role}, nil
}
