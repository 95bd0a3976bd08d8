package constants

// Counter record identity. The table holds exactly one row.
const (
	CounterKey     = "main"
	KeyAttribute   = "id"
	CountAttribute = "count"
)

// Environment Variables
const (
	EnvTableName     = "TABLE_NAME"
	EnvAWSRegion     = "AWS_REGION"
	EnvStoreDriver   = "VISITCOUNT_STORE_DRIVER"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvDebug         = "VISITCOUNT_DEBUG"
	EnvLambdaRuntime = "AWS_LAMBDA_FUNCTION_NAME"
)

// Default Values
const (
	DefaultTableName = "visitor-count"
	DefaultDriver    = "dynamo"
)

// Store Drivers
const (
	DriverDynamo   = "dynamo"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)
