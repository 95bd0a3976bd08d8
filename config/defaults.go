package config

// Default paths and ports for visitcount.
const (
	// DefaultConfigPath is the default config file path for local runs.
	DefaultConfigPath = "visitcount.config.json"
	// DefaultHTTPPort is the port the local server listens on.
	DefaultHTTPPort = 8080
	// DefaultSQLiteDSN is the default data source name for SQLite storage.
	DefaultSQLiteDSN = ".visitcount/count.db"
)
