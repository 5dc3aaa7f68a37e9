package configs

// HTTP holds the HTTP server settings. Only the listen port is
// configurable; the server binds all interfaces.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
