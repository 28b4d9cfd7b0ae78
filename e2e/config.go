package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// NODE_ADDR is the gRPC address of a running dinger node
	NodeAddr string `envconfig:"NODE_ADDR"`
	// NODE_DID is the identity the node printed at startup
	NodeDID string `envconfig:"NODE_DID"`
	// E2E_DEBUG_JSON dumps full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	Colours   bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
