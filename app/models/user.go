package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"

	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
)

// User identifies submitters and reviewers. Registration, login and password
// flows live in an external identity service; this table only carries what
// the review engine and the API-key middleware need.
type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Email  string `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Role   string `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	Status string `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active inactive"`

	APIKeyHash       string     `gorm:"type:char(64);default:''" json:"-"`
	APIKeyPrefix     string     `gorm:"type:varchar(20);default:''" json:"api_key_prefix"`
	APIKeyCreatedAt  *time.Time `json:"api_key_created_at"`
	APIKeyLastUsedAt *time.Time `json:"api_key_last_used_at"`
	APIKeyRevokedAt  *time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

var apiKeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

const apiKeyPrefix = "wkp_"

// IsAdmin reports whether the user may review submissions.
func (u *User) IsAdmin() bool {
	return u.Role == ROLE_ADMIN
}

// HasActiveAPIKey reports whether the user has an active API key configured
func (u *User) HasActiveAPIKey() bool {
	return u != nil && u.APIKeyHash != "" && u.APIKeyRevokedAt == nil
}

// IssueAPIKey generates a new API key, persists metadata on the struct, and
// returns the raw secret. Callers must persist the struct afterwards; only
// the hash is stored.
func (u *User) IssueAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}

	raw := apiKeyPrefix + strings.ToLower(apiKeyEncoding.EncodeToString(buf))
	now := time.Now()

	u.APIKeyHash = HashAPIKey(raw)
	u.APIKeyPrefix = raw[:len(apiKeyPrefix)+4]
	u.APIKeyCreatedAt = &now
	u.APIKeyLastUsedAt = nil
	u.APIKeyRevokedAt = nil

	return raw, nil
}

// RevokeAPIKey clears the stored key material and marks the revocation time.
func (u *User) RevokeAPIKey() {
	now := time.Now()
	u.APIKeyHash = ""
	u.APIKeyPrefix = ""
	u.APIKeyRevokedAt = &now
}

// HashAPIKey returns the SHA-256 hash for the provided API key.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}
