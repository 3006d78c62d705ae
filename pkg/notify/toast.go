package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// DesktopToaster delivers toasts through the platform notification
// service via beeep. Delivery runs on a separate goroutine because some
// platforms block on the notification daemon; errors are logged there
// and never reach the dispatcher, which treats delivery as
// fire-and-forget. Auto-dismiss and click handling belong to the host;
// the in-app return banner is the navigation path back to the timer.
type DesktopToaster struct {
	icon string
	log  *slog.Logger
}

// NewDesktopToaster creates a DesktopToaster. icon is an optional path
// to an icon file; empty means the platform default.
func NewDesktopToaster(icon string, log *slog.Logger) *DesktopToaster {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &DesktopToaster{icon: icon, log: log}
}

// Push sends the toast asynchronously and always reports success; a
// rejected notification downgrades to a log line.
func (t *DesktopToaster) Push(toast Toast) error {
	go func() {
		if err := beeep.Notify(toast.Title, toast.Body, t.icon); err != nil {
			t.log.Warn("notification daemon rejected toast", "error", err)
		}
	}()
	return nil
}
