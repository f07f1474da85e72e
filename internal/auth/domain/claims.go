package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the signed claim set carried by an access token.
//
// The wire form is a compact JWS: three dot-separated base64url segments
// (header, payload, signature). Claims are immutable after signing; altering
// any byte without the server secret fails signature verification.
type AccessClaims struct {
	UserID   int64  `json:"user_id"`
	CourseID *int64 `json:"course_id,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity reconstructs the Identity encoded in the claims. Fails if the role
// is outside the closed set or the user id is not positive.
func (c *AccessClaims) Identity() (Identity, error) {
	role, err := ParseRole(c.Role)
	if err != nil {
		return Identity{}, err
	}
	return NewIdentity(c.UserID, c.Subject, role, c.CourseID), nil
}
