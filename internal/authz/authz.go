package authz

// The dashboard used to enforce view-only mode by patching page styles on the
// client. Here authorization is a plain lookup: a role maps to a capability
// set, and the API boundary asks before mutating anything.

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleScheduler Role = "scheduler"
	RoleViewer    Role = "viewer"
)

type Capability string

const (
	CapViewSchedule Capability = "view_schedule"
	CapEditSchedule Capability = "edit_schedule"
	CapManageBays   Capability = "manage_bays"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapViewSchedule: true,
		CapEditSchedule: true,
		CapManageBays:   true,
	},
	RoleScheduler: {
		CapViewSchedule: true,
		CapEditSchedule: true,
	},
	RoleViewer: {
		CapViewSchedule: true,
	},
}

// RoleFromString maps an untrusted role name to a known role. Anything
// unrecognized is a viewer.
func RoleFromString(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleScheduler, RoleViewer:
		return Role(s)
	}
	return RoleViewer
}

// Allowed reports whether the role's capability set contains the capability.
func Allowed(role Role, capability Capability) bool {
	return roleCapabilities[role][capability]
}
