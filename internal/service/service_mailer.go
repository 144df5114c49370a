package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
)

// logMailer writes verification links to the log instead of sending mail.
type logMailer struct {
	publicURL string
	logger    *logger.Logger
}

func NewLogMailer(cfg config.App, logger *logger.Logger) Mailer {
	return &logMailer{publicURL: strings.TrimRight(cfg.PublicURL, "/"), logger: logger.WithComponent("mailer")}
}

func (m *logMailer) SendVerification(ctx context.Context, user models.User, token string) error {
	link := m.publicURL + "/verify?token=" + url.QueryEscape(token)

	m.logger.Info().
		Int64("user_id", user.UserID).
		Str("email", user.Email).
		Str("link", link).
		Msg("verification link issued")

	return nil
}
