package jpfrontend

import (
	"github.com/rs/zerolog"
)

// logger is the package-level logger of jpfrontend itself. SetLogger (see
// modules.go) additionally propagates to njd/utterance/jpcommon, each of
// which keeps its own package-level logger the same way.
var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

func GetLogger() zerolog.Logger {
	return logger
}
