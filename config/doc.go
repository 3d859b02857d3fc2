// Package config provides configuration loading and validation for bbdist.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right, or
//     bbdist.yaml from the working directory or ~/.bbdist when none are given
//  3. Environment variables (BBDIST_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"bbdist.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx = config.WithContext(ctx, cfg)
//
// # Environment Variables
//
// All config keys map to environment variables with BBDIST_ prefix:
//   - bitbucket.repository → BBDIST_BITBUCKET_REPOSITORY
//   - bitbucket.password → BBDIST_BITBUCKET_PASSWORD
//   - log.level → BBDIST_LOG_LEVEL
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Repository must match owner/name (lowercase letters, '-', '_', '.')
//   - Host and storage URL must be absolute URLs
//   - Log level must be debug, info, warn, or error
//   - Log format must be text or json
//
// Validation failures match bbdist.ErrConfiguration.
package config
