// Package sessions implements the single-active-session lifecycle for staff
// principals: login establishes a session, refresh rotates its token, logout
// revokes it. At most one valid refresh token exists per principal at any
// time; a second login silently invalidates the first device's session.
package sessions

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/token"
)

type TokenPair struct {
	Access  string
	Refresh string
}

type Store struct {
	DB     *gorm.DB
	Tokens *token.Manager
	Policy Policy
}

// LoginAdmin verifies credentials and establishes a fresh session,
// overwriting whatever session the admin had before.
func (s *Store) LoginAdmin(email, password, ip, userAgent string) (*models.Admin, *TokenPair, error) {
	var admin models.Admin
	err := s.DB.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if !admin.IsActive {
		return nil, nil, ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.Establish(models.PrincipalAdmin, admin.ID, admin.Role, ip, userAgent)
	if err != nil {
		return nil, nil, err
	}
	return &admin, pair, nil
}

// Establish issues a token pair and replaces the principal's session
// wholesale. Callers that authenticate by other means (superadmin OTP) use
// this directly.
func (s *Store) Establish(principalType string, principalID uint, role, ip, userAgent string) (*TokenPair, error) {
	access, err := s.Tokens.SignAccess(principalID, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.Tokens.SignRefresh(principalID, role)
	if err != nil {
		return nil, err
	}

	sess := models.Session{
		PrincipalType: principalType,
		PrincipalID:   principalID,
		State:         models.SessionActive,
		Token:         refresh,
		IP:            ip,
		UserAgent:     userAgent,
		LoginAt:       time.Now(),
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "principal_type"}, {Name: "principal_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"state", "token", "ip", "user_agent", "login_at", "logout_at",
		}),
	}).Create(&sess).Error
	if err != nil {
		return nil, err
	}

	s.logActivity(principalType, principalID, "LOGIN", ip, userAgent)
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh rotates the refresh token. The presented token must carry a valid
// signature, match the stored session token exactly, and (under the pinning
// policy) originate from the login IP. Rotation overwrites the stored token,
// so a previously issued refresh token is rejected on its next use.
func (s *Store) Refresh(presented, ip string) (*TokenPair, *token.Claims, error) {
	if presented == "" {
		return nil, nil, ErrNoToken
	}
	claims, err := s.Tokens.VerifyRefresh(presented)
	if err != nil {
		return nil, nil, err
	}

	principalType := principalTypeForRole(claims.Role)
	sess, err := s.find(principalType, claims.PrincipalID)
	if err != nil {
		return nil, nil, err
	}
	if err := Validate(sess, presented, ip, s.Policy); err != nil {
		return nil, nil, err
	}
	if !s.principalActive(principalType, claims.PrincipalID) {
		return nil, nil, ErrSessionInvalid
	}

	access, err := s.Tokens.SignAccess(claims.PrincipalID, claims.Role)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.Tokens.SignRefresh(claims.PrincipalID, claims.Role)
	if err != nil {
		return nil, nil, err
	}

	err = s.DB.Model(sess).Updates(map[string]interface{}{
		"token":    refresh,
		"login_at": time.Now(),
	}).Error
	if err != nil {
		return nil, nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, claims, nil
}

// Logout revokes the session the presented token belongs to. It is
// idempotent: an absent, malformed, or already-rotated token is a no-op
// success.
func (s *Store) Logout(presented, ip, userAgent string) error {
	if presented == "" {
		return nil
	}
	claims, err := s.Tokens.VerifyRefresh(presented)
	if err != nil {
		return nil
	}

	principalType := principalTypeForRole(claims.Role)
	sess, err := s.find(principalType, claims.PrincipalID)
	if err != nil {
		return nil
	}
	if sess.State != models.SessionActive || sess.Token != presented {
		return nil
	}

	now := time.Now()
	err = s.DB.Model(sess).Updates(map[string]interface{}{
		"state":     models.SessionRevoked,
		"logout_at": &now,
	}).Error
	if err != nil {
		return err
	}
	s.logActivity(principalType, claims.PrincipalID, "LOGOUT", ip, userAgent)
	return nil
}

func (s *Store) find(principalType string, principalID uint) (*models.Session, error) {
	var sess models.Session
	err := s.DB.Where("principal_type = ? AND principal_id = ?", principalType, principalID).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) principalActive(principalType string, principalID uint) bool {
	var count int64
	switch principalType {
	case models.PrincipalSuperAdmin:
		s.DB.Model(&models.SuperAdmin{}).
			Where("id = ? AND is_active = ?", principalID, true).Count(&count)
	case models.PrincipalAdmin:
		s.DB.Model(&models.Admin{}).
			Where("id = ? AND is_active = ?", principalID, true).Count(&count)
	}
	return count > 0
}

// Activity entries are best effort; a failed audit write never fails the
// login itself.
func (s *Store) logActivity(principalType string, principalID uint, action, ip, userAgent string) {
	entry := models.Activity{
		PrincipalType: principalType,
		PrincipalID:   principalID,
		Action:        action,
		IP:            ip,
		UserAgent:     userAgent,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.WithError(err).Warn("failed to record session activity")
	}
}

func principalTypeForRole(role string) string {
	if role == "superadmin" {
		return models.PrincipalSuperAdmin
	}
	return models.PrincipalAdmin
}
