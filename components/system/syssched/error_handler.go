package syssched

import "github.com/open-control-systems/clock-guard/components/core"

// ErrorHandler handles task errors.
type ErrorHandler interface {
	// HandleError handles error.
	HandleError(err error)
}

// LogErrorHandler logs task errors with the configured component prefix.
type LogErrorHandler struct {
	prefix string
}

// NewLogErrorHandler is an initialization of LogErrorHandler.
func NewLogErrorHandler(prefix string) *LogErrorHandler {
	return &LogErrorHandler{
		prefix: prefix,
	}
}

// HandleError logs err.
func (h *LogErrorHandler) HandleError(err error) {
	core.LogErr.Printf("%s: task failed: %v\n", h.prefix, err)
}
