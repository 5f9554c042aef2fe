package config

import (
	"encoding/json"
	"os"

	"github.com/e-lobo/herogram-go/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero-value
// fields are treated as "not set" and do not override earlier sources.
type JsonConfig struct {
	APIBaseURL    string `json:"api_base_url"`
	JWTCookieName string `json:"jwt_cookie_name"`
	CookieMaxAge  int    `json:"cookie_max_age"`
	ListenAddr    string `json:"listen_addr"`
	DownloadDir   string `json:"download_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (see
// flagx.JsonConfigFlags); when neither is given, nothing is loaded.
// Read or unmarshal errors panic, matching the fail-fast startup policy.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.JWTCookieName != "" {
		cfg.JWTCookieName = jc.JWTCookieName
	}
	if jc.CookieMaxAge != 0 {
		cfg.CookieMaxAge = jc.CookieMaxAge
	}
	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
}
