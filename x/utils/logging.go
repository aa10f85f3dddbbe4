package utils

import (
	"time"

	"github.com/retok/revenue"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ revenue.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx revenue.Context, store revenue.KVStore, msg revenue.Msg, next revenue.Handler) (*revenue.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, msg)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, msg.Path(), resLog, err)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx revenue.Context, start time.Time, path, msg string, err error) {
	delta := time.Since(start)
	logger := revenue.GetLogger(ctx).With("path", path, "duration", delta/time.Microsecond)
	if caller, ok := revenue.GetCaller(ctx); ok {
		logger = logger.With("caller", caller)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	if err != nil {
		logger.With("err", err).Error(msg)
	} else {
		logger.Info(msg)
	}
}
