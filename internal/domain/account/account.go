// Package account models the people interacting with the shop. An account is
// either an Admin or a Customer; the variant is fixed when it is created.
package account

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// ErrUnknownRole is returned by ParseRole for names that match no role.
var ErrUnknownRole = errors.New("unknown account role")

// Role tags the account variant.
type Role int

const (
	// RoleCustomer is a shopper placing orders.
	RoleCustomer Role = iota
	// RoleAdmin is a shop operator.
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleCustomer:
		return "Customer"
	default:
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseRole maps a role name ("admin", "Customer", ...) to a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "customer":
		return RoleCustomer, nil
	default:
		return 0, errors.Wrapf(ErrUnknownRole, "%q", s)
	}
}

// Account is a user of the shop. Only the field matching its role carries
// meaning: adminLevel for admins, customerID for customers.
type Account struct {
	username   string
	email      string
	role       Role
	adminLevel int
	customerID int
}

// NewAdmin creates an Admin account. Inputs are not validated.
func NewAdmin(username, email string, level int) *Account {
	return &Account{
		username:   username,
		email:      email,
		role:       RoleAdmin,
		adminLevel: level,
	}
}

// NewCustomer creates a Customer account. Inputs are not validated.
func NewCustomer(username, email string, id int) *Account {
	return &Account{
		username:   username,
		email:      email,
		role:       RoleCustomer,
		customerID: id,
	}
}

// Role returns the account variant.
func (a *Account) Role() Role { return a.role }

// Username returns the account's user name.
func (a *Account) Username() string { return a.username }

// Email returns the account's email address.
func (a *Account) Email() string { return a.email }

// AdminLevel returns the admin level and true for Admin accounts.
func (a *Account) AdminLevel() (int, bool) {
	if a.role != RoleAdmin {
		return 0, false
	}
	return a.adminLevel, true
}

// CustomerID returns the customer number and true for Customer accounts.
func (a *Account) CustomerID() (int, bool) {
	if a.role != RoleCustomer {
		return 0, false
	}
	return a.customerID, true
}
