package config

import (
	"encoding/json"
	"os"

	"github.com/reelvault/reelvault/internal/flagx"
	"github.com/reelvault/reelvault/internal/timex"
)

// JsonConfig is the intermediate DTO used for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "720h" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	DatabaseDSN             string         `json:"database_dsn"`
	SessionSecret           string         `json:"session_secret"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	SessionRefreshInterval  timex.Duration `json:"session_refresh_interval"`
	StoreConnectTimeout     timex.Duration `json:"store_connect_timeout"`
	BcryptCost              int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. An unreadable or
// invalid file panics: a broken explicit config is a startup failure.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SessionSecret = c.SessionSecret
	config.SessionValidityDuration = c.SessionValidityDuration.Duration
	config.SessionRefreshInterval = c.SessionRefreshInterval.Duration
	config.StoreConnectTimeout = c.StoreConnectTimeout.Duration
	config.BcryptCost = c.BcryptCost
}
