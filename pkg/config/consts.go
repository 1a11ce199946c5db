package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "SHOPLANE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "SHOPLANE_DB_DSN"
	EnvDBHost = "SHOPLANE_DB_HOST"
	EnvDBUser = "SHOPLANE_DB_USER"
	EnvDBName = "SHOPLANE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
