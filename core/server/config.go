package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB is the maximum accepted request body size in megabytes.
	// Audio and document uploads pass through this server, so the limit is
	// larger than a typical JSON API would need.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"25"`
}
