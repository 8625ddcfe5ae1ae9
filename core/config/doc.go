// Package config provides configuration management for the Wardrobe Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection details for the persistent cache
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Wardrobe: remote endpoints, timeouts and cache behaviour of the figure engine
//
// Defaults are declared on the partial config structs through `default` tags.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Wardrobe.CacheTTL)
package config
