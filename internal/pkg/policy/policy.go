// Package policy centralizes role capability checks. Services call Allow at
// the point of the privileged operation instead of relying on route
// middleware ordering, so a new route cannot silently skip the check.
package policy

// Action identifies a privileged operation
type Action string

const (
	ActionManageRooms    Action = "rooms:manage"
	ActionViewPayments   Action = "payments:view"
	ActionExportBookings Action = "bookings:export"
)

// Allow reports whether a role may perform an action
func Allow(role string, action Action) bool {
	switch action {
	case ActionManageRooms, ActionViewPayments, ActionExportBookings:
		return role == "admin"
	default:
		return false
	}
}
