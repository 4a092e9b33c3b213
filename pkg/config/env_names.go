package config

// EnvPrefix is passed to envconfig; the struct tags already carry the full names.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "LAPSTORE_APP_ENV"
	EnvPort       = "LAPSTORE_APP_PORT"
	EnvDBDSN      = "LAPSTORE_DB_DSN"
	EnvDBHost     = "LAPSTORE_DB_HOST"
	EnvDBUser     = "LAPSTORE_DB_USER"
	EnvDBName     = "LAPSTORE_DB_NAME"
	EnvJWTSecret  = "LAPSTORE_JWT_SECRET"
	EnvJWTIssuer  = "LAPSTORE_JWT_ISSUER"
	EnvJWTExpMins = "LAPSTORE_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
