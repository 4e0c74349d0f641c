package common

// Fiber locals keys; the auth middleware stores the caller identity under
// these and handlers read them back.
const (
	UserIDLocalKey  = "user_id"
	IsAdminLocalKey = "is_admin"
)
