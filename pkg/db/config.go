package db

// Config carries connection settings for the record store. Type selects the
// dialect: postgres and mysql use the network fields, sqlite only Path.
type Config struct {
	Type string

	// Network backends.
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	// File backend.
	Path string

	// Pool tuning; durations are seconds. Zero leaves the driver default.
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}
