package constants

// Default administrator account created on first start.
const (
	DefaultAdminUsername    = "admin"
	DefaultAdminPassword    = "admin123"
	DefaultAdminFullName    = "System Administrator"
	DefaultAdminDesignation = "Port Administrator"
	DefaultAdminDepartment  = "Administration"
)

// JWT claim keys shared between the auth service and request handlers.
const (
	ClaimSubject  = "sub"
	ClaimUsername = "username"
	ClaimIsAdmin  = "is_admin"
)

// Environment variable names.
const (
	EnvJWTSecret = "JWT_SECRET"
)

// DevJWTSecret is the fallback signing secret for local development only;
// deployments must set JWT_SECRET.
const DevJWTSecret = "port-pass-dev-secret"
