package models

import "time"

// Principal types as stored on sessions and activity entries.
const (
	PrincipalAdmin      = "admin"
	PrincipalSuperAdmin = "superadmin"
	PrincipalCustomer   = "customer"
)

type AdminGroup string

const (
	GroupNone             AdminGroup = "none"
	GroupSalesManager     AdminGroup = "sales_manager"
	GroupInventoryManager AdminGroup = "inventory_manager"
	GroupHRManager        AdminGroup = "hr_manager"
	GroupFinanceManager   AdminGroup = "finance_manager"
)

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Role  string     `gorm:"type:varchar(20);default:'admin'" json:"role"`
	Group AdminGroup `gorm:"type:varchar(30);default:'none'" json:"group"`

	// Extra grants beyond the group set, validated against the
	// permission domain at write time. Stored comma separated.
	ExtraPermissions string `json:"extra_permissions"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SuperAdmin struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Customer struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginIP string     `json:"last_login_ip"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
