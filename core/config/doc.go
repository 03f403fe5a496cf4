// Package config provides configuration management for the Catalog Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, body limit)
//   - Database: MySQL/sqlite connection details
//   - Upstream: transcription and processing API endpoints and credentials
//   - Storage: optional S3/MinIO archive for uploaded payloads
//   - Log: Logging level and format
//
// Defaults come from `default:` struct tags on each section; environment
// variables override them using underscore-joined keys (SERVER_PORT,
// UPSTREAM_PROCESSING_URL, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
