package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/permissions"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	c, _ := testContext(t)
	c.Request.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", ExtractToken(c, "access_token"))
}

func TestExtractTokenFallsBackToBearer(t *testing.T) {
	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-header", ExtractToken(c, "access_token"))
}

func TestExtractTokenEmpty(t *testing.T) {
	c, _ := testContext(t)
	assert.Empty(t, ExtractToken(c, "access_token"))

	c, _ = testContext(t)
	c.Request.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, ExtractToken(c, "access_token"))
}

func setPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

func TestRequireRolesAllows(t *testing.T) {
	c, w := testContext(t)
	setPrincipal(c, Principal{ID: 1, Role: "superadmin"})

	RequireRoles("superadmin")(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	c, w := testContext(t)
	setPrincipal(c, Principal{ID: 1, Role: "admin"})

	RequireRoles("superadmin")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesRejectsMissingPrincipal(t *testing.T) {
	c, w := testContext(t)

	RequireRoles("admin")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionSuperadminBypass(t *testing.T) {
	c, _ := testContext(t)
	setPrincipal(c, Principal{ID: 1, Role: "superadmin"})

	RequirePermission(permissions.AddEmployees)(c)

	assert.False(t, c.IsAborted())
}

func TestRequirePermissionGrantedThroughGroup(t *testing.T) {
	c, _ := testContext(t)
	admin := &models.Admin{ID: 2, Group: models.GroupInventoryManager}
	setPrincipal(c, Principal{ID: 2, Role: "admin", Admin: admin})

	RequirePermission(permissions.AddProducts)(c)

	assert.False(t, c.IsAborted())
}

func TestRequirePermissionDenied(t *testing.T) {
	c, w := testContext(t)
	admin := &models.Admin{ID: 2, Group: models.GroupSalesManager}
	setPrincipal(c, Principal{ID: 2, Role: "admin", Admin: admin})

	RequirePermission(permissions.AddProducts)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionExtraGrant(t *testing.T) {
	c, _ := testContext(t)
	admin := &models.Admin{ID: 2, Group: models.GroupNone, ExtraPermissions: "add_products"}
	setPrincipal(c, Principal{ID: 2, Role: "admin", Admin: admin})

	RequirePermission(permissions.AddProducts)(c)

	assert.False(t, c.IsAborted())
}

func TestRequirePermissionUnauthenticated(t *testing.T) {
	c, w := testContext(t)

	RequirePermission(permissions.ViewOrders)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
