package domain

// Role is the user role selected at login
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleTherapist    Role = "therapist"
)

// Permission names a capability checked by the access gate
type Permission string

const (
	PermViewBeds       Permission = "beds.view"
	PermManageBeds     Permission = "beds.manage"
	PermViewBookings   Permission = "bookings.view"
	PermManageBookings Permission = "bookings.manage"
	PermViewCatalog    Permission = "catalog.view"
	PermExportReports  Permission = "reports.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermViewBeds, PermManageBeds,
		PermViewBookings, PermManageBookings,
		PermViewCatalog, PermExportReports,
	},
	RoleManager: {
		PermViewBeds, PermManageBeds,
		PermViewBookings, PermManageBookings,
		PermViewCatalog, PermExportReports,
	},
	RoleReceptionist: {
		PermViewBeds,
		PermViewBookings, PermManageBookings,
		PermViewCatalog,
	},
	RoleTherapist: {
		PermViewBeds,
		PermViewBookings,
	},
}

// User is the signed-in operator of the admin UI
type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	FullName     string  `json:"fullName"`
	Role         Role    `json:"role"`
	BranchIDs    []int64 `json:"branchIds"`
	PasswordHash string  `json:"-"`
}

// HasPermission returns true if the user's role grants perm
func (u *User) HasPermission(perm Permission) bool {
	if u == nil {
		return false
	}
	for _, p := range RolePermissions[u.Role] {
		if p == perm {
			return true
		}
	}
	return false
}

// CanAccessBranch returns true if the user may see a branch. Admins see all branches.
func (u *User) CanAccessBranch(branchID int64) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	return containsID(u.BranchIDs, branchID)
}

// BranchScope returns the branch restriction for list queries.
// nil means all branches; a user without branches gets an empty, non-nil scope.
func (u *User) BranchScope() []int64 {
	if u != nil && u.Role == RoleAdmin {
		return nil
	}
	scope := make([]int64, 0)
	if u != nil {
		scope = append(scope, u.BranchIDs...)
	}
	return scope
}
