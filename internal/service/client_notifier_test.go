package service

import (
	"testing"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNotifier_DeliversInOrder(t *testing.T) {
	n := NewChannelNotifier(4, logger.Nop())

	n.Notify(models.Notification{Kind: models.NotificationSubjectCreated})
	n.Notify(models.Notification{Kind: models.NotificationDocumentUploaded})

	require.Len(t, n.C(), 2)
	assert.Equal(t, models.NotificationSubjectCreated, (<-n.C()).Kind)
	assert.Equal(t, models.NotificationDocumentUploaded, (<-n.C()).Kind)
}

func TestChannelNotifier_FullBufferDoesNotBlock(t *testing.T) {
	n := NewChannelNotifier(1, logger.Nop())

	n.Notify(models.Notification{Kind: models.NotificationSubjectsUnavailable})
	assert.NotPanics(t, func() {
		n.Notify(models.Notification{Kind: models.NotificationDocumentsUnavailable})
	})

	assert.Equal(t, models.NotificationSubjectsUnavailable, (<-n.C()).Kind)
	assert.Empty(t, n.C())
}

func TestChannelNotifier_DefaultSize(t *testing.T) {
	n := NewChannelNotifier(0, logger.Nop())
	assert.Equal(t, defaultNotifierBuffer, cap(n.ch))
}
