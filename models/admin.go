package models

type CategoryCount struct {
	Name  string `json:"name" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

type ProductStats struct {
	Total      int64 `json:"total"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
}

type OrderStats struct {
	Total   int64   `json:"total"`
	Revenue float64 `json:"revenue"`
}

type Stats struct {
	Products   ProductStats    `json:"products"`
	Orders     OrderStats      `json:"orders"`
	Categories []CategoryCount `json:"categories"`
}

// UserSummary is the admin view of an identity-provider account.
type UserSummary struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName,omitempty"`
	Disabled     bool   `json:"disabled"`
	Admin        bool   `json:"admin"`
	CreatedAt    int64  `json:"createdAt,omitempty"`
	LastSignInAt int64  `json:"lastSignInAt,omitempty"`
}

type UserPage struct {
	Users     []UserSummary `json:"users"`
	PageToken string        `json:"pageToken,omitempty"`
}

type SetAdminRequest struct {
	UID     string `json:"uid"`
	IsAdmin bool   `json:"isAdmin"`
}

// Settings and pages are free-form documents edited from the back office.
type Settings map[string]interface{}

type Page map[string]interface{}
