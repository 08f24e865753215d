// Package config provides configuration management for the bucketpath tools.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Server: browse HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and endpoint
//   - Log: logging level and format
//
// Defaults come from the `default` struct tags; environment variables override
// them using underscore-joined keys (e.g. STORAGE_ENDPOINT, LOG_LEVEL).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
