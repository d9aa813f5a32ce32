package config

// EnvPrefix is empty because every field carries its fully-qualified
// env var name in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "INVENTORY_APP_ENV"
	EnvPort       = "INVENTORY_APP_PORT"
	EnvLogLevel   = "INVENTORY_LOG_LEVEL"
	EnvDBDSN      = "INVENTORY_DB_DSN"
	EnvDBDriver   = "INVENTORY_DB_DRIVER"
	EnvDBHost     = "INVENTORY_DB_HOST"
	EnvDBUser     = "INVENTORY_DB_USER"
	EnvDBName     = "INVENTORY_DB_NAME"
	EnvDBPassword = "INVENTORY_DB_PASSWORD"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
