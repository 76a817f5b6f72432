package database

// Supported values for Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql, postgres).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Name is the database name, or the file path for sqlite (":memory:" for a private in-memory store).
	Name string `mapstructure:"name" default:"estoque.db"`
	// Host is the database host. Ignored by sqlite.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port. Zero selects the driver's default port.
	Port int `mapstructure:"port" default:"0"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// SSLMode is passed to postgres as sslmode.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsMemory reports whether the configuration points at an in-memory sqlite store.
func (c Config) IsMemory() bool {
	return c.Driver == DriverSQLite && (c.Name == ":memory:" || c.Name == "file::memory:")
}
