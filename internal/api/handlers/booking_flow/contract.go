package booking_flow

import (
	"github.com/abarriera/CPA-BookingService/internal/flow"
)

type SessionManager interface {
	Start() (string, *flow.Flow)
	Get(id string) (*flow.Flow, error)
	Close(id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
