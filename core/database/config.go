package database

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name (or the file path when Driver is sqlite).
	Name string `mapstructure:"name" default:"poc_scheduling"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// TimeoutSeconds bounds connection setup and each read/write on the wire.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Location is the zone DATE and TIME columns are parsed in.
	Location string `mapstructure:"location" default:"UTC"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
