package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/YeshwantRaoB/organizon-web/identity"
	"github.com/YeshwantRaoB/organizon-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byEmail map[string]*models.UserSummary
	revoked []string
	setErr  error
}

func (f *fakeUsers) ListUsers(context.Context, int, string) (models.UserPage, error) {
	return models.UserPage{}, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.UserSummary, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) SetAdmin(_ context.Context, uid string, admin bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	for _, u := range f.byEmail {
		if u.UID == uid {
			u.Admin = admin
		}
	}
	return nil
}

func (f *fakeUsers) RevokeTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}

func (f *fakeUsers) DeleteUser(context.Context, string) error { return nil }

func TestSetAdminClaim(t *testing.T) {
	users := &fakeUsers{byEmail: map[string]*models.UserSummary{
		"owner@organizon.in": {UID: "u1", Email: "owner@organizon.in"},
		"ops@organizon.in":   {UID: "u2", Email: "ops@organizon.in", Admin: true},
	}}

	t.Run("grants and revokes", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, setAdminClaim(context.Background(), users, "owner@organizon.in", &out))
		assert.True(t, users.byEmail["owner@organizon.in"].Admin)
		assert.Equal(t, []string{"u1"}, users.revoked)
		assert.Contains(t, out.String(), "Granted admin")
	})

	t.Run("already admin is reported", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, setAdminClaim(context.Background(), users, "ops@organizon.in", &out))
		assert.Contains(t, out.String(), "already an admin")
		assert.NotContains(t, users.revoked, "u2")
	})

	t.Run("unknown email", func(t *testing.T) {
		err := setAdminClaim(context.Background(), users, "ghost@organizon.in", &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no user with email")
	})

	t.Run("provider failure", func(t *testing.T) {
		failing := &fakeUsers{
			byEmail: map[string]*models.UserSummary{"a@b.c": {UID: "u3"}},
			setErr:  errors.New("quota"),
		}
		err := setAdminClaim(context.Background(), failing, "a@b.c", &bytes.Buffer{})
		require.Error(t, err)
		assert.Empty(t, failing.revoked)
	})
}
