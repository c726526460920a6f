package config

// EnvPrefix is the envconfig prefix shared by every binary.
const EnvPrefix = "MONTLUXE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags (error messages,
// tests, deploy manifests).
const (
	EnvAppEnv  = "MONTLUXE_APP_ENV"
	EnvPort    = "MONTLUXE_APP_PORT"
	EnvDBDSN   = "MONTLUXE_DB_DSN"
	EnvDBHost  = "MONTLUXE_DB_HOST"
	EnvDBUser  = "MONTLUXE_DB_USER"
	EnvDBName  = "MONTLUXE_DB_NAME"
	EnvRedisURL = "MONTLUXE_REDIS_URL"

	EnvJWTSecret  = "MONTLUXE_JWT_SECRET"
	EnvJWTIssuer  = "MONTLUXE_JWT_ISSUER"
	EnvJWTExpMins = "MONTLUXE_JWT_EXPIRATION_MINUTES"
)
