package contact

import (
	"context"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/integrations/resend"
)

type EmailClient interface {
	SendContactEmail(ctx context.Context, sub resend.ContactSubmission) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
