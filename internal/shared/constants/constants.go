package constants

// Gin context keys set by middleware. Customer identity is always an
// explicit context value, never read from ambient storage.
const (
	ContextKeyCustomerID    = "customer_id"
	ContextKeyCustomerEmail = "customer_email"
)

// Deployment environments recognized by config and migration selection.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
