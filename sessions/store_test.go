package sessions

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/token"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return &Store{
		DB:     db,
		Tokens: token.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour),
	}, mock
}

func TestLogoutNoOpOnEmptyToken(t *testing.T) {
	store, mock := newTestStore(t)

	err := store.Logout("", "10.0.0.1", "ua")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutNoOpOnGarbageToken(t *testing.T) {
	store, mock := newTestStore(t)

	// A token that fails signature verification never reaches the database.
	err := store.Logout("not-a-jwt", "10.0.0.1", "ua")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutNoOpWhenSessionMissing(t *testing.T) {
	store, mock := newTestStore(t)

	refresh, err := store.Tokens.SignRefresh(5, "admin")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err = store.Logout(refresh, "10.0.0.1", "ua")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutNoOpOnStaleToken(t *testing.T) {
	store, mock := newTestStore(t)

	stale, err := store.Tokens.SignRefresh(5, "admin")
	require.NoError(t, err)

	// The stored session already rotated past the presented token, so no
	// update is issued.
	rows := sqlmock.NewRows([]string{"id", "principal_type", "principal_id", "state", "token"}).
		AddRow(1, "admin", 5, "active", "a-newer-token")
	mock.ExpectQuery(`SELECT .* FROM "sessions"`).WillReturnRows(rows)

	err = store.Logout(stale, "10.0.0.1", "ua")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshRejectsEmptyAndForgedTokens(t *testing.T) {
	store, mock := newTestStore(t)

	_, _, err := store.Refresh("", "10.0.0.1")
	assert.ErrorIs(t, err, ErrNoToken)

	// An access token presented as a refresh token fails verification.
	access, signErr := store.Tokens.SignAccess(5, "admin")
	require.NoError(t, signErr)
	_, _, err = store.Refresh(access, "10.0.0.1")
	assert.ErrorIs(t, err, token.ErrInvalidToken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshRejectsUnknownSession(t *testing.T) {
	store, mock := newTestStore(t)

	refresh, err := store.Tokens.SignRefresh(5, "admin")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err = store.Refresh(refresh, "10.0.0.1")
	assert.ErrorIs(t, err, ErrSessionInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalTypeForRole(t *testing.T) {
	assert.Equal(t, "superadmin", principalTypeForRole("superadmin"))
	assert.Equal(t, "admin", principalTypeForRole("admin"))
	assert.Equal(t, "admin", principalTypeForRole(""))
}
