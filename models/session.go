package models

import "time"

type SessionState string

const (
	SessionActive  SessionState = "active"
	SessionRevoked SessionState = "revoked"
)

// Session is the single active session record for a staff principal. The
// unique (principal_type, principal_id) index enforces at most one row per
// principal; a new login overwrites it wholesale, which implicitly
// invalidates the previous device's refresh token.
type Session struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	PrincipalType string       `gorm:"uniqueIndex:idx_sessions_principal;not null" json:"principal_type"`
	PrincipalID   uint         `gorm:"uniqueIndex:idx_sessions_principal;not null" json:"principal_id"`
	State         SessionState `gorm:"type:varchar(10);default:'active'" json:"state"`
	Token         string       `gorm:"not null" json:"-"`
	IP            string       `json:"ip"`
	UserAgent     string       `json:"user_agent"`
	LoginAt       time.Time    `json:"login_at"`
	LogoutAt      *time.Time   `json:"logout_at,omitempty"`
}

// Activity is the append-only audit trail of login/logout events.
type Activity struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PrincipalType string    `gorm:"index:idx_activities_principal" json:"principal_type"`
	PrincipalID   uint      `gorm:"index:idx_activities_principal" json:"principal_id"`
	Action        string    `gorm:"not null" json:"action"`
	IP            string    `json:"ip"`
	UserAgent     string    `json:"user_agent"`
	CreatedAt     time.Time `json:"created_at"`
}
