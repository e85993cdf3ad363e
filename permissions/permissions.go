// Package permissions defines the closed permission domain and the fixed
// group-to-permission mapping used by the staff authorization gate.
package permissions

import "github.com/atelier-verne/ecommerce-api/models"

type Permission string

const (
	ViewOrders    Permission = "view_orders"
	CreateOrders  Permission = "create_orders"
	UpdateOrders  Permission = "update_orders"
	ViewCustomers Permission = "view_customers"

	ViewProducts   Permission = "view_products"
	AddProducts    Permission = "add_products"
	UpdateProducts Permission = "update_products"

	ViewEmployees   Permission = "view_employees"
	AddEmployees    Permission = "add_employees"
	UpdateEmployees Permission = "update_employees"

	ViewReports    Permission = "view_reports"
	ManageInvoices Permission = "manage_invoices"
)

var all = map[Permission]bool{
	ViewOrders:    true,
	CreateOrders:  true,
	UpdateOrders:  true,
	ViewCustomers: true,

	ViewProducts:   true,
	AddProducts:    true,
	UpdateProducts: true,

	ViewEmployees:   true,
	AddEmployees:    true,
	UpdateEmployees: true,

	ViewReports:    true,
	ManageInvoices: true,
}

var groups = map[models.AdminGroup][]Permission{
	models.GroupSalesManager:     {ViewOrders, CreateOrders, UpdateOrders, ViewCustomers},
	models.GroupInventoryManager: {ViewProducts, AddProducts, UpdateProducts},
	models.GroupHRManager:        {ViewEmployees, AddEmployees, UpdateEmployees},
	models.GroupFinanceManager:   {ViewReports, ManageInvoices},
}

// Valid reports whether p belongs to the permission domain.
func Valid(p Permission) bool {
	return all[p]
}

// ForGroup returns the permission set granted by group membership.
func ForGroup(g models.AdminGroup) []Permission {
	return groups[g]
}

// Granted reports whether an admin holds p, either through their group or
// through an explicit extra grant.
func Granted(admin *models.Admin, p Permission) bool {
	if admin == nil {
		return false
	}
	for _, gp := range groups[admin.Group] {
		if gp == p {
			return true
		}
	}
	for _, extra := range SplitExtra(admin.ExtraPermissions) {
		if extra == p {
			return true
		}
	}
	return false
}
