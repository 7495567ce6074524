package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solaced/internal/structures"
)

func validConfig() *structures.Config {
	conf := &structures.Config{}
	conf.WebServer.Host = "127.0.0.1"
	conf.WebServer.Port = 8080
	conf.Persistence.FilePath = "/var/lib/solaced/solaced.db"
	conf.Persistence.SaveInterval = time.Minute
	conf.Retention.SweepInterval = time.Minute
	conf.Logger.Level = "info"
	conf.Logger.Mode = 0644
	conf.Logger.Dir = "/var/log/solaced"
	return conf
}

func TestCnfValidator_ValidConfig(t *testing.T) {
	require.NoError(t, NewCnfValidator(validConfig()).Validate())
}

func TestCnfValidator_RejectsBadPort(t *testing.T) {
	conf := validConfig()
	conf.WebServer.Port = 0
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsUnknownLogLevel(t *testing.T) {
	conf := validConfig()
	conf.Logger.Level = "verbose"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsMissingSnapshotPath(t *testing.T) {
	conf := validConfig()
	conf.Persistence.FilePath = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsZeroSweepInterval(t *testing.T) {
	conf := validConfig()
	conf.Retention.SweepInterval = 0
	assert.Error(t, NewCnfValidator(conf).Validate())
}
