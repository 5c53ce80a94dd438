package jwt

import (
	"fmt"
	"math"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/tokensvc/pkg/payload"
)

// Claim names injected by the signer.
const (
	ClaimExpiresAt = "exp"
	ClaimID        = "jti"
)

// claims adapts a payload object to jwtlib.Claims. Only exp is interpreted;
// every other key is opaque caller data.
type claims struct {
	obj *payload.Object
}

func (c claims) MarshalJSON() ([]byte, error) {
	if c.obj == nil {
		return payload.NewObject().MarshalJSON()
	}
	return c.obj.MarshalJSON()
}

func (c *claims) UnmarshalJSON(data []byte) error {
	obj := payload.NewObject()
	if err := obj.UnmarshalJSON(data); err != nil {
		return err
	}
	c.obj = obj
	return nil
}

func (c claims) GetExpirationTime() (*jwtlib.NumericDate, error) {
	v, ok := c.obj.Get(ClaimExpiresAt)
	if !ok {
		return nil, nil
	}
	t, ok := numericTime(v)
	if !ok {
		return nil, fmt.Errorf("%w: exp must be a number", jwtlib.ErrInvalidType)
	}
	return jwtlib.NewNumericDate(t), nil
}

func (c claims) GetIssuedAt() (*jwtlib.NumericDate, error)  { return nil, nil }
func (c claims) GetNotBefore() (*jwtlib.NumericDate, error) { return nil, nil }
func (c claims) GetIssuer() (string, error)                 { return "", nil }
func (c claims) GetSubject() (string, error)                { return "", nil }
func (c claims) GetAudience() (jwtlib.ClaimStrings, error)  { return nil, nil }

// ExpiresAt reads the exp claim of a verified claim set.
func ExpiresAt(obj *payload.Object) (time.Time, bool) {
	v, ok := obj.Get(ClaimExpiresAt)
	if !ok {
		return time.Time{}, false
	}
	return numericTime(v)
}

// TokenID reads the jti claim of a verified claim set.
func TokenID(obj *payload.Object) (string, bool) {
	v, ok := obj.Get(ClaimID)
	if !ok {
		return "", false
	}
	id, ok := v.AsString()
	return id, ok && id != ""
}

func numericTime(v payload.Value) (time.Time, bool) {
	if sec, ok := v.AsInt64(); ok {
		return time.Unix(sec, 0), true
	}
	f, ok := v.AsFloat64()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)), true
}
