package ports

import (
	"context"

	"arkdumpster/internal/core/domain/services"
)

// NotificationSender is the narrow contract with the email transport. The
// core hands over a prepared payload and only observes success or a typed
// failure; transport-level detail never crosses this boundary.
type NotificationSender interface {
	// Send delivers the notification. Implementations must bound the call
	// with a timeout and return a DependencyError on transport failure.
	Send(ctx context.Context, payload services.Payload) error
}
