// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container of the service.
// It is populated from environment variables and completed with
// [defaultConfig] for every field left unset.
//
// Struct tags:
//   - env: environment variable name (caarlos0/env).
type StructuredConfig struct {
	// App holds the informational values reported by the endpoints.
	App App

	// Server holds listener and request-handling settings.
	Server Server

	// Log holds logger settings.
	Log Log
}

// App holds the values reported by the informational endpoints.
type App struct {
	// Version is the semantic version reported by /, /health and /version.
	// Env: VERSION
	Version string `env:"VERSION"`

	// Environment is the deployment environment name. The literal value
	// "production" hides failure details in error responses.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`

	// BuildNumber is the CI build number.
	// Env: BUILD_NUMBER
	BuildNumber string `env:"BUILD_NUMBER"`

	// GitCommit is the commit hash the binary was built from.
	// Env: GIT_COMMIT
	GitCommit string `env:"GIT_COMMIT"`

	// BuildDate is the build timestamp. When empty, /version reports the
	// time of the request instead.
	// Env: BUILD_DATE
	BuildDate string `env:"BUILD_DATE"`
}

// Server holds network settings for the inbound transports.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all
	// interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port of the HTTP server.
	// Env: PORT
	Port int `env:"PORT"`

	// GRPCAddress is the "host:port" of the optional gRPC health server.
	// Empty disables it.
	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// TrustProxy makes the request logger take the client IP from
	// X-Forwarded-For / X-Real-IP instead of the socket address.
	// Env: TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Literal defaults applied to every absent or empty variable.
const (
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "development"
	DefaultBuildNumber = "dev"
	DefaultGitCommit   = "unknown"
	DefaultPort        = 3000
	DefaultLogLevel    = "info"

	// ProductionEnvironment is the environment name that switches error
	// responses to a generic message.
	ProductionEnvironment = "production"
)

// defaultConfig returns the configuration layer merged under the values
// read from the environment.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:     DefaultVersion,
			Environment: DefaultEnvironment,
			BuildNumber: DefaultBuildNumber,
			GitCommit:   DefaultGitCommit,
		},
		Server: Server{
			Port: DefaultPort,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// IsProduction reports whether the service runs in the production
// environment.
func (a App) IsProduction() bool {
	return a.Environment == ProductionEnvironment
}

// GetStructuredConfig loads the environment, fills every unset field with
// its default and validates the result.
//
// Returns a fully populated *StructuredConfig or an error if a variable
// cannot be converted to its field type or the final config is invalid.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
