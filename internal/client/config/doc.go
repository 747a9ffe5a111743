// Package config loads runtime configuration for the clinicdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment variables, optionally seeded from a .env file in the
//     working directory (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-a string   base URL of the clinic REST API (including /api)
//	-d string   path of the local session database
//	-t int      per-request timeout in seconds (0 disables it)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	CLINIC_API_URL, CLINIC_SESSION_DB, CLINIC_REQUEST_TIMEOUT ("5s"), CLINIC_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "session_db": "clinicdesk.db",
//	  "request_timeout": "0s",
//	  "log_level": "info"
//	}
package config
