// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Defaults applied to zero fields after all sources are merged.
const (
	DefaultPort            = 5000
	DefaultTokenDuration   = time.Hour
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMongoDatabase   = "culinaryDB"

	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// culinary server. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Variable names match the ones the service has always been deployed with
// (PORT, USER_DB, USER_PASS, ACCESS_TOKEN_SECRET), so nested groups carry no
// env prefix.
type StructuredConfig struct {
	// App holds token signing parameters.
	App App

	// Storage selects and configures the document store backend.
	Storage Storage

	// Server holds listener, timeout and CORS settings.
	Server Server

	// LogLevel is a zerolog level name ("debug", "info", ...). Empty keeps
	// debug logging.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings for access tokens.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify access tokens.
	// Env: ACCESS_TOKEN_SECRET
	TokenSignKey string `env:"ACCESS_TOKEN_SECRET"`

	// TokenIssuer is the optional "iss" claim. When set, tokens are issued
	// with it and tokens carrying another issuer are rejected.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token. Defaults to 1h.
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration of the supported document stores.
type Storage struct {
	// Driver is either "mongo" (default) or "postgres".
	// Env: STORAGE_DRIVER
	Driver string `env:"STORAGE_DRIVER"`

	Mongo Mongo
	DB    DB
}

// Mongo holds MongoDB connection settings.
type Mongo struct {
	// URI is a complete connection string. When empty, one is built from
	// User, Password and Host.
	// Env: MONGO_URI
	URI string `env:"MONGO_URI"`

	// Env: USER_DB
	User string `env:"USER_DB"`
	// Env: USER_PASS
	Password string `env:"USER_PASS"`
	// Host is the cluster host used with User and Password,
	// e.g. "cluster0.example.mongodb.net".
	// Env: MONGO_HOST
	Host string `env:"MONGO_HOST"`

	// Database is the database holding the users, classes and carts
	// collections. Defaults to "culinaryDB".
	// Env: MONGO_DATABASE
	Database string `env:"MONGO_DATABASE"`
}

// DB holds connection settings for the PostgreSQL document backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// Port is used when HTTPAddress is empty. Defaults to 5000.
	// Env: PORT
	Port int `env:"PORT"`

	// HTTPAddress is a full "host:port" listen address.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins defaults to "*".
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Address returns the listen address: HTTPAddress when set, ":Port" otherwise.
func (s Server) Address() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}
	return ":" + strconv.Itoa(s.Port)
}

// ConnectionURI returns the MongoDB connection string.
func (m Mongo) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	if m.User == "" || m.Host == "" {
		return ""
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(m.User), url.QueryEscape(m.Password), m.Host)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. .env file in the working directory (never overrides real env vars)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
