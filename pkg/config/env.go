package config

// EnvPrefix is passed to envconfig; individual fields carry explicit env tags.
const EnvPrefix = "WALLPRINTS"

// Environment variable names shared between Load and the test helpers.
const (
	EnvAppEnv   = "WALLPRINTS_APP_ENV"
	EnvPort     = "WALLPRINTS_APP_PORT"
	EnvDBDSN    = "WALLPRINTS_DB_DSN"
	EnvDBHost   = "WALLPRINTS_DB_HOST"
	EnvDBUser   = "WALLPRINTS_DB_USER"
	EnvDBName   = "WALLPRINTS_DB_NAME"
	EnvRedisURL = "WALLPRINTS_REDIS_URL"
)

// Recognized values for WALLPRINTS_APP_ENV.
const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
