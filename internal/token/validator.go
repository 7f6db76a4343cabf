package token

import (
	"context"
)

// Validator cross-checks a presented token against the store's current
// record for its subject. A structurally valid signature is not enough:
// the presented token must equal, byte for byte, the one on record.
type Validator struct {
	codec *Codec
	store Store
}

// NewValidator creates a Validator over the given codec and store
func NewValidator(codec *Codec, store Store) *Validator {
	return &Validator{codec: codec, store: store}
}

// ValidateAccess verifies an access token and returns its claims.
// Fails with ErrInvalidToken when the signature is invalid, the store has
// no access entry for the subject, or the entry does not match.
func (v *Validator) ValidateAccess(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := v.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	current, err := v.store.Get(ctx, KindAccess, claims.Subject)
	if err != nil {
		return nil, err
	}
	if current == "" || current != tokenString {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateRefresh verifies a refresh token and returns its claims.
// Fails with ErrInvalidRefreshToken on any mismatch or absence; the
// caller maps that to a conflict, not an auth rejection.
func (v *Validator) ValidateRefresh(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := v.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	current, err := v.store.Get(ctx, KindRefresh, claims.Subject)
	if err != nil {
		return nil, err
	}
	if current == "" || current != tokenString {
		return nil, ErrInvalidRefreshToken
	}

	return claims, nil
}
