package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-verne/ecommerce-api/models"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(ViewOrders))
	assert.True(t, Valid(ManageInvoices))
	assert.False(t, Valid("delete_everything"))
	assert.False(t, Valid(""))
}

func TestForGroup(t *testing.T) {
	assert.Contains(t, ForGroup(models.GroupSalesManager), ViewOrders)
	assert.Contains(t, ForGroup(models.GroupInventoryManager), AddProducts)
	assert.Empty(t, ForGroup(models.GroupNone))
	assert.Empty(t, ForGroup("not_a_group"))
}

func TestGrantedFromGroup(t *testing.T) {
	admin := &models.Admin{Group: models.GroupSalesManager}

	assert.True(t, Granted(admin, ViewOrders))
	assert.False(t, Granted(admin, AddEmployees))
}

func TestGrantedFromExtraPermissions(t *testing.T) {
	admin := &models.Admin{
		Group:            models.GroupNone,
		ExtraPermissions: "view_reports,manage_invoices",
	}

	assert.True(t, Granted(admin, ViewReports))
	assert.True(t, Granted(admin, ManageInvoices))
	assert.False(t, Granted(admin, ViewOrders))
}

func TestGrantedNilAdmin(t *testing.T) {
	assert.False(t, Granted(nil, ViewOrders))
}

func TestSplitExtraDropsInvalidEntries(t *testing.T) {
	perms := SplitExtra("view_orders, bogus ,view_reports,")

	assert.Equal(t, []Permission{ViewOrders, ViewReports}, perms)
	assert.Empty(t, SplitExtra(""))
}

func TestJoinExtraRejectsUnknown(t *testing.T) {
	joined, ok := JoinExtra([]Permission{ViewOrders, ViewReports})
	assert.True(t, ok)
	assert.Equal(t, "view_orders,view_reports", joined)

	_, ok = JoinExtra([]Permission{ViewOrders, "bogus"})
	assert.False(t, ok)
}
