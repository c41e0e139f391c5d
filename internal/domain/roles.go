package domain

// Role labels derived from a profile's group memberships and staff flag.
// Roles are never stored; they are resolved on every profile fetch.
type Role string

const (
	RoleCustomer     Role = "Customer"
	RoleDeliveryCrew Role = "Delivery Crew"
	RoleManager      Role = "Manager"
	RoleAdmin        Role = "Admin"
)

const (
	managerGroupID      = 1
	deliveryCrewGroupID = 2
)

// Role resolves the profile to exactly one label. Precedence is first-match:
// Manager group beats Delivery Crew group beats the staff flag.
func (p UserProfile) Role() Role {
	inGroup := func(id int) bool {
		for _, g := range p.Groups {
			if g == id {
				return true
			}
		}
		return false
	}

	switch {
	case inGroup(managerGroupID):
		return RoleManager
	case inGroup(deliveryCrewGroupID):
		return RoleDeliveryCrew
	case p.IsStaff:
		return RoleAdmin
	default:
		return RoleCustomer
	}
}

// CanManageOrders reports whether the role gets the administrative order
// controls (status dropdown, delivery-crew assignment).
func (r Role) CanManageOrders() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleDeliveryCrew
}
