package domain

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRestaurant Role = "RESTAURANT"
	RoleDabbawala  Role = "DABBAWALA"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDabbawala, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller, supplied by the identity collaborator.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  Role
}
