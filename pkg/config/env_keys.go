package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "smartcart"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvDBDSN  = "SMARTCART_DB_DSN"
	EnvDBHost = "SMARTCART_DB_HOST"
	EnvDBUser = "SMARTCART_DB_USER"
	EnvDBName = "SMARTCART_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
