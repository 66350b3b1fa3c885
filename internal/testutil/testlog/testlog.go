package testlog

import (
	"testing"

	"github.com/danmuck/callsdk/internal/logging"
	"github.com/rs/zerolog/log"
)

// Start configures test logging and tags the test in the log stream.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
