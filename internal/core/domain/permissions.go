package domain

// Action is an operation a role may perform on a resource.
type Action string

const (
	ActionView   Action = "view"
	ActionDetail Action = "detail"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names the protected entities routes operate on.
const (
	ResourceLecture = "lecture"
	ResourceUser    = "user"
)

// Permissions maps role -> resource -> allowed actions. Instances are built
// once at startup and treated as read-only afterwards, so they are safe to
// share across in-flight requests without locking.
type Permissions map[string]map[string][]Action

// Allows reports whether role may perform action on resource. Unknown roles
// and resources deny.
func (p Permissions) Allows(role, resource string, action Action) bool {
	resources, ok := p[role]
	if !ok {
		return false
	}
	actions, ok := resources[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// DefaultPermissions returns the static role access table. Admin and user
// sets are enumerated independently; there is no inheritance between roles.
func DefaultPermissions() Permissions {
	return Permissions{
		RoleAdmin: {
			ResourceLecture: {ActionView, ActionDetail, ActionCreate, ActionUpdate, ActionDelete},
			ResourceUser:    {ActionView, ActionDetail, ActionCreate, ActionUpdate, ActionDelete},
		},
		RoleUser: {
			ResourceLecture: {ActionView},
			ResourceUser:    {ActionDetail, ActionUpdate, ActionCreate},
		},
	}
}
