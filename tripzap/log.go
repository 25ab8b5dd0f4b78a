// Package tripzap provides zap-backed breaker hooks.
package tripzap

import (
	"go.uber.org/zap"

	"github.com/tripkit/trip"
)

// StateChanges returns a hook that logs every state transition.
func StateChanges(log *zap.Logger) trip.OnStateChangeFunc {
	return func(name string, from, to trip.State) {
		log.Info("breaker state change",
			zap.String("breaker", name),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}
}

// Rejections returns a hook that logs short-circuited calls.
func Rejections(log *zap.Logger) trip.OnRejectFunc {
	return func(name string) {
		log.Warn("breaker rejected call",
			zap.String("breaker", name),
		)
	}
}

// Calls returns a hook that logs failed call attempts at debug level.
// Successful calls are not logged.
func Calls(log *zap.Logger) trip.OnCallFunc {
	return func(name string, state trip.State, err error) {
		if err == nil {
			return
		}
		log.Debug("breaker call failed",
			zap.String("breaker", name),
			zap.Stringer("state", state),
			zap.Error(err),
		)
	}
}

// Hooks bundles StateChanges, Rejections and Calls into breaker options:
//
//	b, err := trip.New("api", tripzap.Hooks(logger)...)
func Hooks(log *zap.Logger) []trip.Option {
	return []trip.Option{
		trip.OnStateChange(StateChanges(log)),
		trip.OnReject(Rejections(log)),
		trip.OnCall(Calls(log)),
	}
}
