package service

import (
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
)

const defaultNotifierBuffer = 16

// ChannelNotifier is a [Notifier] backed by a buffered channel the UI drains.
// When the buffer is full the new notice is dropped so that Notify never
// blocks the caller.
type ChannelNotifier struct {
	ch     chan models.Notification
	logger *logger.Logger
}

// NewChannelNotifier returns a notifier buffering up to size notices. A
// non-positive size uses the default of 16.
func NewChannelNotifier(size int, logger *logger.Logger) *ChannelNotifier {
	if size <= 0 {
		size = defaultNotifierBuffer
	}
	return &ChannelNotifier{ch: make(chan models.Notification, size), logger: logger}
}

func (n *ChannelNotifier) Notify(notification models.Notification) {
	select {
	case n.ch <- notification:
	default:
		n.logger.Warn().Str("kind", string(notification.Kind)).Msg("notification buffer full, dropping")
	}
}

// C returns the receive side of the channel.
func (n *ChannelNotifier) C() <-chan models.Notification {
	return n.ch
}
