// Package config handles configuration for the CLI and the gateway,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

// Config holds runtime settings shared by both binaries.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the version
//     prefix (e.g. http://localhost:4000/api/v1).
//   - JWTCookieName: name of the cookie carrying the bearer token.
//   - CookieMaxAge: cookie lifetime in seconds.
//   - ListenAddr: bind address of the edge gateway.
//   - DownloadDir: where the CLI saves downloaded files.
type Config struct {
	APIBaseURL    string
	JWTCookieName string
	CookieMaxAge  int
	ListenAddr    string
	DownloadDir   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000/api/v1"
	c.JWTCookieName = "jwt"
	c.CookieMaxAge = 86400
	c.ListenAddr = ":8080"
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
