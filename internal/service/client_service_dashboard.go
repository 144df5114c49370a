// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

// KeySemester is the durable slot holding the last selected semester.
const KeySemester = "semester"

const defaultDashboardTimeout = 10 * time.Second

// clientDashboardService is the view-state synchronizer.
//
// State is guarded by mu. Remote calls are never made while mu is held: an
// operation snapshots what it needs, unlocks, calls out and re-locks to apply
// the result. Each list slot has a generation counter bumped when a load
// starts; a response is applied only while its generation is still current.
type clientDashboardService struct {
	sessions  SessionProvider
	records   RecordStore
	files     FileUploader
	prefs     store.KeyValueStore
	notifier  Notifier
	validator validators.Validator

	defaultSemester string
	autoSelect      string
	timeout         time.Duration

	logger *logger.Logger

	// persistMu orders writes of the semester slot so that the last write
	// always carries the semester selected at that moment.
	persistMu sync.Mutex

	mu               sync.Mutex
	ownerID          int64
	selection        models.SelectionState
	subjects         []models.Subject
	documents        []models.Document
	subjectsGen      uint64
	documentsGen     uint64
	loadingSubjects  bool
	loadingDocuments bool
	// firstLoad is true from Initialize until the first subject list is
	// applied; the "initial" auto-select policy only fires while it is set.
	firstLoad bool
}

// NewClientDashboardService wires the synchronizer to its collaborators.
// Zero values in cfg fall back to semester "1", the "always" auto-select
// policy and a 10 second request timeout.
func NewClientDashboardService(
	sessions SessionProvider,
	records RecordStore,
	files FileUploader,
	prefs store.KeyValueStore,
	notifier Notifier,
	validator validators.Validator,
	cfg config.ClientDashboard,
	logger *logger.Logger,
) ClientDashboardService {
	if !models.IsValidSemester(cfg.DefaultSemester) {
		cfg.DefaultSemester = models.DefaultSemester
	}
	if cfg.AutoSelect == "" {
		cfg.AutoSelect = config.AutoSelectAlways
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultDashboardTimeout
	}

	return &clientDashboardService{
		sessions:        sessions,
		records:         records,
		files:           files,
		prefs:           prefs,
		notifier:        notifier,
		validator:       validator,
		defaultSemester: cfg.DefaultSemester,
		autoSelect:      cfg.AutoSelect,
		timeout:         cfg.RequestTimeout,
		logger:          logger.WithComponent("dashboard"),
	}
}

func (d *clientDashboardService) Initialize(ctx context.Context) error {
	session, err := d.requireSession()
	if err != nil {
		return err
	}

	semester := d.persistedSemester(ctx)

	d.mu.Lock()
	d.clearLocked()
	d.ownerID = session.UserID
	d.selection = models.SelectionState{SelectedSemester: semester}
	d.firstLoad = true
	gen := d.startSubjectsLoadLocked()
	d.mu.Unlock()

	d.logger.Debug().Int64("user_id", session.UserID).Str("semester", semester).Msg("dashboard initialized")

	return d.loadSubjects(ctx, session, gen, semester)
}

func (d *clientDashboardService) ChangeSemester(ctx context.Context, semester string) error {
	if err := d.validator.Validate(ctx, models.Subject{Semester: semester}, validators.FieldSemester); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	session, err := d.requireSession()
	if err != nil {
		return err
	}

	// the switch and the start of its load are one step: any list still in
	// flight for the previous semester is superseded here
	d.mu.Lock()
	d.selection = models.SelectionState{SelectedSemester: semester}
	d.subjects = nil
	d.documents = nil
	d.loadingDocuments = false
	d.documentsGen++
	gen := d.startSubjectsLoadLocked()
	d.mu.Unlock()

	d.persistSemester(ctx)

	return d.loadSubjects(ctx, session, gen, semester)
}

func (d *clientDashboardService) LoadSubjects(ctx context.Context) error {
	session, err := d.requireSession()
	if err != nil {
		return err
	}

	d.mu.Lock()
	gen := d.startSubjectsLoadLocked()
	semester := d.selection.SelectedSemester
	d.mu.Unlock()

	return d.loadSubjects(ctx, session, gen, semester)
}

// startSubjectsLoadLocked supersedes any subject list in flight and returns
// the generation of the new one.
func (d *clientDashboardService) startSubjectsLoadLocked() uint64 {
	d.subjectsGen++
	d.loadingSubjects = true
	return d.subjectsGen
}

// loadSubjects fetches the subjects of semester and applies them only if gen
// is still the latest load and semester is still selected.
func (d *clientDashboardService) loadSubjects(ctx context.Context, session models.Session, gen uint64, semester string) error {
	var subjects []models.Subject
	err := d.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		subjects, err = d.records.ListSubjects(ctx, models.SubjectFilter{OwnerID: session.UserID, Semester: semester})
		return err
	})

	d.mu.Lock()
	if gen != d.subjectsGen || semester != d.selection.SelectedSemester {
		d.mu.Unlock()
		d.logger.Debug().Uint64("generation", gen).Msg("discarding superseded subject list")
		return nil
	}
	d.loadingSubjects = false

	if err != nil {
		d.mu.Unlock()
		return d.remoteFailure(err, models.NotificationSubjectsUnavailable, "Не удалось загрузить предметы")
	}

	d.subjects = filter(subjects, func(s models.Subject) bool {
		return s.Semester == semester && s.OwnerID == session.UserID
	})
	slices.SortStableFunc(d.subjects, func(a, b models.Subject) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	if d.selection.HasSubject() && !d.hasSubjectLocked(d.selection.SelectedSubjectID) {
		d.selection.SelectedSubjectID = ""
		d.documents = nil
		d.loadingDocuments = false
		d.documentsGen++
	}

	autoSelect := !d.selection.HasSubject() && len(d.subjects) > 0 && d.shouldAutoSelectLocked()
	if autoSelect {
		d.selection.SelectedSubjectID = d.subjects[0].ID
		d.documents = nil
	}
	d.firstLoad = false
	hasSelection := d.selection.HasSubject()
	d.mu.Unlock()

	if autoSelect || hasSelection {
		return d.LoadDocuments(ctx)
	}
	return nil
}

func (d *clientDashboardService) SelectSubject(ctx context.Context, subjectID string) error {
	d.mu.Lock()
	if !d.hasSubjectLocked(subjectID) {
		d.mu.Unlock()
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownSubject, subjectID)
	}
	if d.selection.SelectedSubjectID != subjectID {
		d.selection.SelectedSubjectID = subjectID
		d.documents = nil
	}
	d.mu.Unlock()

	return d.LoadDocuments(ctx)
}

func (d *clientDashboardService) LoadDocuments(ctx context.Context) error {
	d.mu.Lock()
	d.documentsGen++
	gen := d.documentsGen
	subjectID := d.selection.SelectedSubjectID
	if subjectID == "" {
		d.documents = []models.Document{}
		d.loadingDocuments = false
		d.mu.Unlock()
		return nil
	}
	d.loadingDocuments = true
	d.mu.Unlock()

	session, err := d.requireSession()
	if err != nil {
		d.mu.Lock()
		if gen == d.documentsGen {
			d.loadingDocuments = false
		}
		d.mu.Unlock()
		return err
	}

	var documents []models.Document
	err = d.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		documents, err = d.records.ListDocuments(ctx, models.DocumentFilter{OwnerID: session.UserID, SubjectID: subjectID})
		return err
	})

	d.mu.Lock()
	if gen != d.documentsGen || d.selection.SelectedSubjectID != subjectID {
		d.mu.Unlock()
		d.logger.Debug().Uint64("generation", gen).Msg("discarding superseded document list")
		return nil
	}
	d.loadingDocuments = false

	if err != nil {
		d.mu.Unlock()
		return d.remoteFailure(err, models.NotificationDocumentsUnavailable, "Не удалось загрузить документы")
	}

	d.documents = filter(documents, func(doc models.Document) bool {
		return doc.SubjectID == subjectID && doc.OwnerID == session.UserID
	})
	slices.SortStableFunc(d.documents, func(a, b models.Document) int {
		return b.UploadDate.Compare(a.UploadDate)
	})
	d.mu.Unlock()

	return nil
}

func (d *clientDashboardService) AddSubject(ctx context.Context, name string, isPublic bool) (models.Subject, error) {
	d.mu.Lock()
	semester := d.selection.SelectedSemester
	d.mu.Unlock()

	subject := models.Subject{
		Name:     strings.TrimSpace(name),
		IsPublic: isPublic,
		Semester: semester,
	}
	if err := d.validator.Validate(ctx, subject, validators.FieldName, validators.FieldSemester); err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	session, err := d.requireSession()
	if err != nil {
		return models.Subject{}, err
	}
	subject.OwnerID = session.UserID

	var created models.Subject
	err = d.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		created, err = d.records.CreateSubject(ctx, subject)
		return err
	})
	if err == nil && created.OwnerID != session.UserID {
		err = fmt.Errorf("%w: got owner %d", ErrOwnershipMismatch, created.OwnerID)
	}
	if err != nil {
		return models.Subject{}, d.remoteFailure(err, models.NotificationSubjectCreateFailed, "Не удалось создать предмет")
	}

	d.mu.Lock()
	visible := d.ownerID == session.UserID && d.selection.SelectedSemester == created.Semester
	if visible && !d.hasSubjectLocked(created.ID) {
		d.subjects = append(d.subjects, created)
	}
	d.mu.Unlock()

	d.notify(models.Notification{Kind: models.NotificationSubjectCreated, Message: "Предмет создан: " + created.Name})

	if !visible {
		d.logger.Debug().Str("subject_id", created.ID).Msg("created subject is outside the current semester")
		return created, nil
	}

	return created, d.SelectSubject(ctx, created.ID)
}

func (d *clientDashboardService) UploadDocument(ctx context.Context, title string, file models.File) (models.Document, error) {
	d.mu.Lock()
	subjectID := d.selection.SelectedSubjectID
	d.mu.Unlock()

	document := models.Document{
		Title:     strings.TrimSpace(title),
		SubjectID: subjectID,
	}
	if err := d.validator.Validate(ctx, document, validators.FieldTitle); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if subjectID == "" {
		return models.Document{}, fmt.Errorf("%w: %w", ErrValidation, ErrNoSubjectSelected)
	}
	if err := d.validator.Validate(ctx, file); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	session, err := d.requireSession()
	if err != nil {
		return models.Document{}, err
	}
	document.OwnerID = session.UserID

	var created models.Document
	err = d.withTimeout(ctx, func(ctx context.Context) error {
		url, err := d.files.UploadFile(ctx, file)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}
		document.FileURL = url

		created, err = d.records.CreateDocument(ctx, document)
		return err
	})
	if err == nil && (created.OwnerID != session.UserID || created.SubjectID != subjectID) {
		err = fmt.Errorf("%w: got owner %d subject %q", ErrOwnershipMismatch, created.OwnerID, created.SubjectID)
	}
	if err != nil {
		return models.Document{}, d.remoteFailure(err, models.NotificationDocumentUploadFailed, "Не удалось загрузить PDF")
	}

	d.mu.Lock()
	if d.ownerID == session.UserID && d.selection.SelectedSubjectID == subjectID {
		d.insertDocumentLocked(created)
	}
	d.mu.Unlock()

	d.notify(models.Notification{Kind: models.NotificationDocumentUploaded, Message: "Документ загружен: " + created.Title})

	return created, nil
}

func (d *clientDashboardService) State() models.ViewState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return models.ViewState{
		Selection:        d.selection,
		Subjects:         slices.Clone(d.subjects),
		Documents:        slices.Clone(d.documents),
		LoadingSubjects:  d.loadingSubjects,
		LoadingDocuments: d.loadingDocuments,
	}
}

func (d *clientDashboardService) HandleSessionChange(ctx context.Context, session models.Session) {
	if session.IsZero() {
		d.Reset()
		d.notify(models.Notification{
			Kind:    models.NotificationAuthenticationRequired,
			Message: "Сессия завершена, войдите снова",
		})
		return
	}

	d.mu.Lock()
	sameUser := d.ownerID != 0 && d.ownerID == session.UserID
	d.mu.Unlock()

	if sameUser {
		// token refresh: identity unchanged, cached state stays valid
		return
	}

	d.Reset()
	if err := d.Initialize(ctx); err != nil {
		d.logger.Warn().Err(err).Int64("user_id", session.UserID).Msg("dashboard initialization after sign-in failed")
	}
}

func (d *clientDashboardService) Reset() {
	d.mu.Lock()
	d.clearLocked()
	d.mu.Unlock()
}

// clearLocked drops all state and invalidates in-flight loads.
func (d *clientDashboardService) clearLocked() {
	d.ownerID = 0
	d.selection = models.SelectionState{}
	d.subjects = nil
	d.documents = nil
	d.loadingSubjects = false
	d.loadingDocuments = false
	d.firstLoad = false
	d.subjectsGen++
	d.documentsGen++
}

func (d *clientDashboardService) hasSubjectLocked(subjectID string) bool {
	if subjectID == "" {
		return false
	}
	return slices.ContainsFunc(d.subjects, func(s models.Subject) bool { return s.ID == subjectID })
}

func (d *clientDashboardService) shouldAutoSelectLocked() bool {
	switch d.autoSelect {
	case config.AutoSelectNever:
		return false
	case config.AutoSelectInitial:
		return d.firstLoad
	default:
		return true
	}
}

// insertDocumentLocked keeps documents in upload date descending order. A
// record already cached under the same id is replaced.
func (d *clientDashboardService) insertDocumentLocked(doc models.Document) {
	d.documents = slices.DeleteFunc(d.documents, func(cached models.Document) bool { return cached.ID == doc.ID })

	idx := slices.IndexFunc(d.documents, func(cached models.Document) bool {
		return !cached.UploadDate.After(doc.UploadDate)
	})
	if idx < 0 {
		idx = len(d.documents)
	}
	d.documents = slices.Insert(d.documents, idx, doc)
}

func (d *clientDashboardService) requireSession() (models.Session, error) {
	session, ok := d.sessions.Current()
	if !ok || session.IsZero() {
		d.notify(models.Notification{
			Kind:    models.NotificationAuthenticationRequired,
			Message: "Требуется вход",
			Err:     ErrAuthenticationRequired,
		})
		return models.Session{}, ErrAuthenticationRequired
	}
	return session, nil
}

// persistSemester writes the currently selected semester to the durable
// slot. Writes are serialized and each one reads the selection under the
// lock, so overlapping switches leave the slot equal to the winning
// semester. A failed write is only logged.
func (d *clientDashboardService) persistSemester(ctx context.Context) {
	d.persistMu.Lock()
	defer d.persistMu.Unlock()

	d.mu.Lock()
	semester := d.selection.SelectedSemester
	d.mu.Unlock()

	if semester == "" {
		return
	}

	if err := d.withTimeout(ctx, func(ctx context.Context) error {
		return d.prefs.Set(ctx, KeySemester, semester)
	}); err != nil {
		d.logger.Warn().Err(err).Str("semester", semester).Msg("failed to persist semester")
	}
}

// persistedSemester reads the durable slot. Missing, unreadable or invalid
// values fall back to the configured default.
func (d *clientDashboardService) persistedSemester(ctx context.Context) string {
	var (
		value string
		found bool
	)
	err := d.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		value, found, err = d.prefs.Get(ctx, KeySemester)
		return err
	})
	if err != nil {
		d.logger.Warn().Err(err).Msg("failed to read persisted semester")
		return d.defaultSemester
	}
	if !found || !models.IsValidSemester(value) {
		return d.defaultSemester
	}
	return value
}

func (d *clientDashboardService) withTimeout(ctx context.Context, call func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return call(ctx)
}

// remoteFailure classifies a failed remote call, raises the notification and
// returns the error for the caller.
func (d *clientDashboardService) remoteFailure(err error, kind models.NotificationKind, message string) error {
	mapped := mapAdapterError(err)

	var result error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(mapped, ErrTokenIsExpiredOrInvalid):
		result = fmt.Errorf("%w: %w", ErrAuthenticationRequired, mapped)
		kind = models.NotificationAuthenticationRequired
	case errors.Is(mapped, ErrUnavailable):
		result = mapped
	default:
		result = fmt.Errorf("%w: %w", ErrUnavailable, mapped)
	}

	d.logger.Warn().Err(err).Str("kind", string(kind)).Msg("remote call failed")
	d.notify(models.Notification{Kind: kind, Message: message, Err: result})

	return result
}

// filter returns a new slice with the elements of in that satisfy keep.
func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (d *clientDashboardService) notify(n models.Notification) {
	if d.notifier != nil {
		d.notifier.Notify(n)
	}
}
