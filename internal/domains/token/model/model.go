package model

import "time"

const (
	TableName  = "oauth_tokens"
	EntityName = "oauth_token"

	FieldID           = "id"
	FieldAccessToken  = "access_token"
	FieldRefreshToken = "refresh_token"
	FieldExpiresAt    = "expires_at"
	FieldUpdatedAt    = "updated_at"
)

// AuthToken is the single Akia credential record. ExpiresAt is epoch milliseconds.
type AuthToken struct {
	ID           string    `db:"id" bson:"_id"`
	AccessToken  string    `db:"access_token" bson:"access_token"`
	RefreshToken string    `db:"refresh_token" bson:"refresh_token"`
	ExpiresAt    int64     `db:"expires_at" bson:"expires_at"`
	UpdatedAt    time.Time `db:"updated_at" bson:"updated_at"`
}

func (t AuthToken) Empty() bool {
	return t.AccessToken == ""
}

func (t AuthToken) Expired(now time.Time) bool {
	return now.UnixMilli() >= t.ExpiresAt
}

func (t AuthToken) ExpiresAtTime() time.Time {
	return time.UnixMilli(t.ExpiresAt).UTC()
}
