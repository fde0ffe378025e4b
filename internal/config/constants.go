package config

// Environment variable names
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvInventoryPath = "INVENTORY_PATH"
	EnvTickInterval  = "TICK_INTERVAL"
	EnvHistorySize   = "HISTORY_SIZE"
	EnvWorkerCount   = "WORKER_COUNT"
	EnvQueueSize     = "QUEUE_SIZE"
)

// Defaults
const (
	DefaultPort         = "8080"
	DefaultEnvironment  = "dev"
	DefaultServiceName  = "gilded-rose"
	DefaultVersion      = "dev"
	DefaultTickInterval = "0s"
	DefaultHistorySize  = 30
	DefaultWorkerCount  = 1
	DefaultQueueSize    = 8
)
