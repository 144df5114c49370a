package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-study-shelf/models"
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

var (
	userColumns     = []string{"user_id", "email", "username", "password_hash", "email_confirmed", "created_at"}
	subjectColumns  = []string{"id", "owner_id", "name", "is_public", "semester", "created_at"}
	documentColumns = []string{"id", "subject_id", "owner_id", "title", "file_url", "upload_date"}
)

func returningColumns(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ───────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("email", "username", "password_hash").
		Values(user.Email, user.Username, user.PasswordHash).
		Suffix(returningColumns(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildConfirmEmailQuery(userID int64) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("email_confirmed", true).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateProfileQuery changes username and email. A changed email loses
// its confirmation.
func buildUpdateProfileQuery(profile models.Profile) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("username", profile.Username).
		Set("email_confirmed", sq.Expr("email_confirmed AND email = ?", profile.Email)).
		Set("email", profile.Email).
		Where(sq.Eq{"user_id": profile.UserID}).
		Suffix(returningColumns(userColumns)).
		ToSql()
}

// ── subjects ────────────────────────────────────────────────────────────────

func buildInsertSubjectQuery(subject models.Subject) (string, []any, error) {
	return psql.Insert(subject.TableName()).
		Columns(subjectColumns...).
		Values(subject.ID, subject.OwnerID, subject.Name, subject.IsPublic, subject.Semester, subject.CreatedAt).
		Suffix(returningColumns(subjectColumns)).
		ToSql()
}

func buildGetSubjectQuery(subjectID string) (string, []any, error) {
	return psql.Select(subjectColumns...).
		From(models.Subject{}.TableName()).
		Where(sq.Eq{"id": subjectID}).
		ToSql()
}

func buildListSubjectsQuery(filter models.SubjectFilter) (string, []any, error) {
	return psql.Select(subjectColumns...).
		From(models.Subject{}.TableName()).
		Where(sq.Eq{"owner_id": filter.OwnerID}).
		Where(sq.Eq{"semester": filter.Semester}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// ── documents ───────────────────────────────────────────────────────────────

func buildInsertDocumentQuery(document models.Document) (string, []any, error) {
	return psql.Insert(document.TableName()).
		Columns(documentColumns...).
		Values(document.ID, document.SubjectID, document.OwnerID, document.Title, document.FileURL, document.UploadDate).
		Suffix(returningColumns(documentColumns)).
		ToSql()
}

func buildListDocumentsQuery(filter models.DocumentFilter) (string, []any, error) {
	return psql.Select(documentColumns...).
		From(models.Document{}.TableName()).
		Where(sq.Eq{"owner_id": filter.OwnerID}).
		Where(sq.Eq{"subject_id": filter.SubjectID}).
		OrderBy("upload_date DESC", "id DESC").
		ToSql()
}

// ── client preferences ──────────────────────────────────────────────────────

const preferencesTable = "preferences"

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return sqlite.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildUpsertPreferenceQuery(key, value string, at time.Time) (string, []any, error) {
	return sqlite.Insert(preferencesTable).
		Columns("name", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeletePreferenceQuery(key string) (string, []any, error) {
	return sqlite.Delete(preferencesTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}
