package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/YeshwantRaoB/organizon-web/models"
)

// FirebaseConfig carries a service account either as a full JSON document
// or as its three essential fields.
type FirebaseConfig struct {
	ProjectID       string
	ClientEmail     string
	PrivateKey      string
	CredentialsJSON string
}

// credentials returns the service-account JSON. Private keys copied from
// env files often carry literal "\n" sequences; those become newlines.
func (c FirebaseConfig) credentials() ([]byte, error) {
	if c.CredentialsJSON != "" {
		return []byte(c.CredentialsJSON), nil
	}
	if c.ProjectID == "" || c.ClientEmail == "" || c.PrivateKey == "" {
		return nil, fmt.Errorf("firebase service account is not configured")
	}
	return json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   c.ProjectID,
		"client_email": c.ClientEmail,
		"private_key":  strings.ReplaceAll(c.PrivateKey, `\n`, "\n"),
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

// NewFirebaseAuth initialises the Admin SDK and returns its auth client.
func NewFirebaseAuth(ctx context.Context, cfg FirebaseConfig) (*auth.Client, error) {
	creds, err := cfg.credentials()
	if err != nil {
		return nil, err
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to initialise firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise firebase auth: %w", err)
	}
	return client, nil
}

type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claimsFromMap(tok.UID, tok.Claims), nil
}

// FirebaseUserAdmin implements UserAdmin on the Admin SDK.
type FirebaseUserAdmin struct {
	client *auth.Client
}

func NewFirebaseUserAdmin(client *auth.Client) *FirebaseUserAdmin {
	return &FirebaseUserAdmin{client: client}
}

func (a *FirebaseUserAdmin) ListUsers(ctx context.Context, limit int, pageToken string) (models.UserPage, error) {
	var records []*auth.ExportedUserRecord
	pager := iterator.NewPager(a.client.Users(ctx, ""), limit, pageToken)
	next, err := pager.NextPage(&records)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("list users: %w", err)
	}

	page := models.UserPage{Users: make([]models.UserSummary, 0, len(records)), PageToken: next}
	for _, r := range records {
		page.Users = append(page.Users, summarize(r.UserRecord))
	}
	return page, nil
}

func (a *FirebaseUserAdmin) GetUserByEmail(ctx context.Context, email string) (*models.UserSummary, error) {
	u, err := a.client.GetUserByEmail(ctx, email)
	if auth.IsUserNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	s := summarize(u)
	return &s, nil
}

// SetAdmin merges the admin flag into the user's existing custom claims.
func (a *FirebaseUserAdmin) SetAdmin(ctx context.Context, uid string, admin bool) error {
	u, err := a.client.GetUser(ctx, uid)
	if auth.IsUserNotFound(err) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	claims := map[string]interface{}{}
	for k, v := range u.CustomClaims {
		claims[k] = v
	}
	claims["admin"] = admin
	return a.client.SetCustomUserClaims(ctx, uid, claims)
}

func (a *FirebaseUserAdmin) RevokeTokens(ctx context.Context, uid string) error {
	return a.client.RevokeRefreshTokens(ctx, uid)
}

func (a *FirebaseUserAdmin) DeleteUser(ctx context.Context, uid string) error {
	err := a.client.DeleteUser(ctx, uid)
	if auth.IsUserNotFound(err) {
		return ErrUserNotFound
	}
	return err
}

func summarize(u *auth.UserRecord) models.UserSummary {
	s := models.UserSummary{Disabled: u.Disabled}
	if u.UserInfo != nil {
		s.UID = u.UID
		s.Email = u.Email
		s.DisplayName = u.DisplayName
	}
	if admin, ok := u.CustomClaims["admin"].(bool); ok {
		s.Admin = admin
	}
	if u.UserMetadata != nil {
		s.CreatedAt = u.UserMetadata.CreationTimestamp
		s.LastSignInAt = u.UserMetadata.LastLogInTimestamp
	}
	return s
}
