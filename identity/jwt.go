package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTVerifier accepts HS256 tokens signed with a shared secret. It stands
// in for the hosted identity provider in local runs and tests.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret not configured")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	uid, _ := mc["uid"].(string)
	if uid == "" {
		uid, _ = mc["sub"].(string)
	}
	if uid == "" {
		return nil, ErrInvalidToken
	}
	return claimsFromMap(uid, mc), nil
}

// SignToken mints a token the JWTVerifier with the same secret accepts.
func SignToken(secret string, c Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	mc := jwt.MapClaims{
		"sub": c.UID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if c.Email != "" {
		mc["email"] = c.Email
	}
	if c.Name != "" {
		mc["name"] = c.Name
	}
	if c.Admin {
		mc["admin"] = true
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString([]byte(secret))
}
