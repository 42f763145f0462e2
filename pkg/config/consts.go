package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "DAILYBASKET"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN      = "DAILYBASKET_DB_DSN"
	EnvDBHost     = "DAILYBASKET_DB_HOST"
	EnvDBUser     = "DAILYBASKET_DB_USER"
	EnvDBName     = "DAILYBASKET_DB_NAME"
	EnvDBPassword = "DAILYBASKET_DB_PASSWORD"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
