package config

import (
	"flag"
	"os"

	"github.com/e-lobo/herogram-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-n string   token cookie name
//	-m int      cookie max-age in seconds
//	-l string   gateway bind address
//	-d string   CLI download directory
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-m", "-l", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.JWTCookieName, "n", cfg.JWTCookieName, "token cookie name")
	fs.IntVar(&cfg.CookieMaxAge, "m", cfg.CookieMaxAge, "cookie max-age in seconds")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "gateway bind address")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
