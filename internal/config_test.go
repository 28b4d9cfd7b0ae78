package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	environ := env.EnvSet{
		"BADGER_FILEPATH": "/tmp/dinger/badger",
		"BLUGE_FILEPATH":  "/tmp/dinger/bluge",
		"LIMIT_RECORDS":   "100",
	}

	var config Config
	err := env.Unmarshal(environ, &config)
	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal("localhost:50051", config.Address())
	req.Equal(2*time.Second, config.PollInterval)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal("*", config.CharReplacement)
	req.True(config.Console)
	req.NotNil(config.LimitRecords)
	req.Equal(100, *config.LimitRecords)
	req.Empty(config.Peers)
}

func TestConfig_Required(t *testing.T) {
	var config Config
	err := env.Unmarshal(env.EnvSet{"BADGER_FILEPATH": "/tmp/badger"}, &config)
	require.Error(t, err)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
	_, err = CharacterRune("")
	req.Error(err)
}
