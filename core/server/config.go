package server

import "net"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitKB caps request bodies, in kilobytes.
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"1024"`
}

// Address returns the listen address for fiber.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// BodyLimit returns the request body limit in bytes, falling back to 1 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitKB <= 0 {
		return 1024 * 1024
	}
	return c.BodyLimitKB * 1024
}
