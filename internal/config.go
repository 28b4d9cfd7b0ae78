package internal

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	Host            string        `env:"HOST,default=localhost"`
	Port            int           `env:"PORT,default=50051"`
	DebugPort       int           `env:"DEBUG_PORT,default=0"`
	PollInterval    time.Duration `env:"POLL_INTERVAL,default=2s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s"`
	Peers           string        `env:"PEERS"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitRecords    *int          `env:"LIMIT_RECORDS"`
	Console         bool          `env:"CONSOLE,default=true"`
}

// Address is the gRPC listen address.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
