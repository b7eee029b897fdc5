// Package identity verifies bearer credentials issued by the storefront's
// identity provider and decides who is an administrator.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/YeshwantRaoB/organizon-web/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUserNotFound = errors.New("user not found")
)

// Claims is the verified subset of a credential the server relies on.
type Claims struct {
	UID   string
	Email string
	Name  string
	Admin bool
	Raw   map[string]interface{}
}

// Verifier turns a bearer token into claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// UserAdmin manages accounts at the identity provider.
type UserAdmin interface {
	ListUsers(ctx context.Context, limit int, pageToken string) (models.UserPage, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserSummary, error)
	SetAdmin(ctx context.Context, uid string, admin bool) error
	RevokeTokens(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
}

// AdminPolicy grants admin to a caller whose token carries the admin claim
// or whose email is on the allow-list.
type AdminPolicy struct {
	emails map[string]struct{}
}

// NewAdminPolicy parses a comma-separated allow-list. Entries are trimmed
// and empty entries ignored.
func NewAdminPolicy(allowList string) AdminPolicy {
	p := AdminPolicy{emails: map[string]struct{}{}}
	for _, e := range strings.Split(allowList, ",") {
		if e = strings.TrimSpace(e); e != "" {
			p.emails[e] = struct{}{}
		}
	}
	return p
}

func (p AdminPolicy) IsAdmin(c *Claims) bool {
	if c == nil {
		return false
	}
	if c.Admin {
		return true
	}
	if c.Email == "" {
		return false
	}
	_, ok := p.emails[c.Email]
	return ok
}

// claimsFromMap reads the claim names shared by both token formats.
func claimsFromMap(uid string, raw map[string]interface{}) *Claims {
	c := &Claims{UID: uid, Raw: raw}
	c.Email, _ = raw["email"].(string)
	c.Name, _ = raw["name"].(string)
	c.Admin, _ = raw["admin"].(bool)
	return c
}
