package battle

import "github.com/go-logr/logr"

// Zero value logger does nothing. Embedders that want engine tracing can
// plug their own sink in with SetInternalLogger.
var internalLogger = logr.Logger{}

func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("battle")
}
