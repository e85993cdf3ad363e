package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}

func TestMarkFailedBroadcastsToDashboards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		wsMu.Lock()
		defer wsMu.Unlock()
		return len(wsClients) == 1
	}, time.Second, 10*time.Millisecond)

	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "order_code", "gateway_ref", "status"}).
		AddRow(1, "ORD-123456", "cs_test_1", "pending")
	mock.ExpectQuery(`SELECT .* FROM "orders"`).WillReturnRows(rows)
	mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, MarkFailed(db, "cs_test_1", []byte(`{"id":"cs_test_1"}`)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, models.OrderStatusFailed, got.Status)
	assert.Equal(t, "ORD-123456", got.OrderCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
