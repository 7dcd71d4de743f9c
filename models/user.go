package models

import (
	"time"
)

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	Username string `gorm:"primaryKey" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:VARCHAR(20);not null" json:"role"`
	Email    string `json:"email"`

	Birthday time.Time `json:"birthday"`

	BillingAddresses  []Address `gorm:"many2many:user_billing_addresses" json:"billing_addresses"`
	DeliveryAddresses []Address `gorm:"many2many:user_delivery_addresses" json:"delivery_addresses"`

	Orders []Order `gorm:"foreignKey:Username;references:Username" json:"orders,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Address is a value-like entity shared between users. Postal codes are
// exactly 5 digits (validated at the binding layer).
type Address struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Street      string `gorm:"not null" json:"street"`
	HouseNumber string `gorm:"not null" json:"house_number"`
	PostalCode  string `gorm:"not null;type:VARCHAR(5)" json:"postal_code"`
}

// AuthPrincipal is the identity handed to the auth layer. The User entity
// itself stays a plain data record.
type AuthPrincipal struct {
	ID   string
	Role string
}

func (u *User) AuthPrincipal() AuthPrincipal {
	role := u.Role
	if role == "" {
		role = RoleCustomer
	}
	return AuthPrincipal{ID: u.Username, Role: role}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
