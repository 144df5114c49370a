package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of a JSON request body.
const HashHeader = app.HashHeader

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. When appCfg.HashKey is set, JSON bodies of create requests are
// signed with the HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	session, err := h.postSession(ctx, "/api/auth/login", credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	return session, nil
}

// RefreshSession implements [ServerAdapter]. POST /api/auth/refresh.
func (h *httpServerAdapter) RefreshSession(ctx context.Context, refreshToken string) (models.Session, error) {
	session, err := h.postSession(ctx, "/api/auth/refresh", models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh: %w", err)
	}
	return session, nil
}

func (h *httpServerAdapter) postSession(ctx context.Context, path string, body any) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&session).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}
	if session.AccessToken == "" {
		return models.Session{}, fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}

	h.SetToken(session.AccessToken)
	return session, nil
}

// VerifyEmail implements [ServerAdapter]. POST /api/auth/verify.
func (h *httpServerAdapter) VerifyEmail(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Token: token}).
		Post("/api/auth/verify")
	if err != nil {
		return fmt.Errorf("verify email request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResendVerification implements [ServerAdapter]. POST /api/auth/resend.
func (h *httpServerAdapter) ResendVerification(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmailRequest{Email: email}).
		Post("/api/auth/resend")
	if err != nil {
		return fmt.Errorf("resend verification request: %w", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [ServerAdapter]. POST /api/auth/logout. The stored token
// is dropped even when the server could not be reached.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	h.SetToken("")
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAdapter.Logout").Msg("server unreachable, token dropped locally")
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [ServerAdapter]. GET /api/profile.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. PUT /api/profile.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var updated models.Profile

	req, err := h.signedJSON(ctx, profile)
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := req.SetResult(&updated).Put("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return updated, nil
}

// ListSubjects implements [ServerAdapter]. GET /api/subjects?semester=N.
// The owner is inferred by the server from the bearer token.
func (h *httpServerAdapter) ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	var subjects []models.Subject

	resp, err := h.authedRequest(ctx).
		SetQueryParam("semester", filter.Semester).
		SetResult(&subjects).
		Get("/api/subjects")
	if err != nil {
		return nil, fmt.Errorf("list subjects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return subjects, nil
}

// CreateSubject implements [ServerAdapter]. POST /api/subjects.
func (h *httpServerAdapter) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	var created models.Subject

	req, err := h.signedJSON(ctx, models.CreateSubjectRequest{
		Name:     subject.Name,
		IsPublic: subject.IsPublic,
		Semester: subject.Semester,
	})
	if err != nil {
		return models.Subject{}, err
	}

	resp, err := req.SetResult(&created).Post("/api/subjects")
	if err != nil {
		return models.Subject{}, fmt.Errorf("create subject request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Subject{}, err
	}

	return created, nil
}

// ListDocuments implements [ServerAdapter]. GET /api/subjects/{subjectID}/documents.
func (h *httpServerAdapter) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	var documents []models.Document

	resp, err := h.authedRequest(ctx).
		SetPathParam("subjectID", filter.SubjectID).
		SetResult(&documents).
		Get("/api/subjects/{subjectID}/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return documents, nil
}

// CreateDocument implements [ServerAdapter]. POST /api/documents.
func (h *httpServerAdapter) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	var created models.Document

	req, err := h.signedJSON(ctx, models.CreateDocumentRequest{
		Title:     document.Title,
		SubjectID: document.SubjectID,
		FileURL:   document.FileURL,
	})
	if err != nil {
		return models.Document{}, err
	}

	resp, err := req.SetResult(&created).Post("/api/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return created, nil
}

// UploadFile implements [ServerAdapter]. POST /api/files as multipart form
// with the blob under the "file" field.
func (h *httpServerAdapter) UploadFile(ctx context.Context, file models.File) (string, error) {
	var uploaded models.UploadResponse

	resp, err := h.authedRequest(ctx).
		SetMultipartField("file", file.Name, file.ContentType, bytes.NewReader(file.Content)).
		SetResult(&uploaded).
		Post("/api/files")
	if err != nil {
		return "", fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if uploaded.FileURL == "" {
		return "", fmt.Errorf("%w: empty file url", ErrBadGateway)
	}

	return uploaded.FileURL, nil
}

// GetServerVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedJSON prepares an authenticated request with body marshalled up front
// so the integrity hash covers exactly the bytes sent.
func (h *httpServerAdapter) signedJSON(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashString(string(payload), h.hashKey))
	}

	return req, nil
}
