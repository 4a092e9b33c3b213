package authz

import "github.com/jordanhale/lapstore-backend/pkg/enums"

// Capability names a discrete permission a caller may hold. Handlers and
// services ask Can instead of comparing role strings inline.
type Capability string

const (
	CapViewAllOrders Capability = "viewAllOrders"
	CapManageOrders  Capability = "manageOrders"
	CapManageCatalog Capability = "manageCatalog"
)

var grants = map[enums.UserRole]map[Capability]struct{}{
	enums.UserRoleAdmin: {
		CapViewAllOrders: {},
		CapManageOrders:  {},
		CapManageCatalog: {},
	},
	enums.UserRoleCustomer: {},
}

// Can reports whether the role holds the capability. Unknown roles hold
// nothing.
func Can(role enums.UserRole, capability Capability) bool {
	caps, ok := grants[role]
	if !ok {
		return false
	}
	_, ok = caps[capability]
	return ok
}
