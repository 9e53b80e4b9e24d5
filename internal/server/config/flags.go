package config

import (
	"flag"
	"os"
	"time"

	"github.com/reelvault/reelvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session token signing key
//	-t int      session token validity, hours
//	-r int      session refresh interval, hours
//	-w int      store connect timeout, seconds
//	-b int      bcrypt cost
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-w", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session signing key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session_validity_duration (in hours)")
	sessionRefresh := fs.Int("r", int(config.SessionRefreshInterval.Hours()), "session_refresh_interval (in hours)")
	connectTimeout := fs.Int("w", int(config.StoreConnectTimeout.Seconds()), "store_connect_timeout (in seconds)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Hour
	config.SessionRefreshInterval = time.Duration(*sessionRefresh) * time.Hour
	config.StoreConnectTimeout = time.Duration(*connectTimeout) * time.Second
}
