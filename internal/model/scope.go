package model

// Scope identifies who a request is made on behalf of.
type Scope struct {
	UserID   string // "telegram_<id>" for bot users, the X-User-ID header for HTTP callers
	Username string
	Premium  bool // premium users have no daily usage limits
}

// AnonymousUserID is used for HTTP callers that do not identify themselves.
const AnonymousUserID = "anonymous"

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
