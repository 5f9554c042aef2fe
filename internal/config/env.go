package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config with values from the process environment.
//
// Recognized variables:
//
//	API_URL          base URL of the backend API
//	JWT_COOKIE_NAME  token cookie name
//	COOKIE_MAX_AGE   cookie lifetime in seconds
//	GATEWAY_ADDR     gateway bind address
//	DOWNLOAD_DIR     CLI download directory
//
// Unset or empty variables leave the current value alone; a non-numeric
// COOKIE_MAX_AGE is ignored.
func parseEnv(cfg *Config) {
	if v := os.Getenv("API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("JWT_COOKIE_NAME"); v != "" {
		cfg.JWTCookieName = v
	}
	if v := os.Getenv("COOKIE_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CookieMaxAge = n
		}
	}
	if v := os.Getenv("GATEWAY_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("DOWNLOAD_DIR"); v != "" {
		cfg.DownloadDir = v
	}
}
