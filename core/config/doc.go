// Package config provides configuration management for the upsolve tracker.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults are declared on the struct fields
// with the `default` tag and registered recursively.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO settings for catalog snapshots
//   - Log: Logging level and format
//   - Codeforces: judge API base URL, timeouts and cache TTLs
//   - Sync: periodic reconciliation of all students
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Codeforces.ProblemsTTL)
package config
