package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameTaken is returned when another account already uses the
	// requested username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a lookup matches no user record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSubjectNotFound is returned when a subject id matches no record.
	ErrSubjectNotFound = errors.New("subject was not found")

	// ErrReferenceNotFound is returned when an insert references a row that
	// does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrStorageUnavailable is returned for transient failures: lost
	// connections, deadlocks, serialization failures.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrInvalidFile is returned by the file storage for names or owners that
	// cannot be turned into a safe path.
	ErrInvalidFile = errors.New("invalid file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
