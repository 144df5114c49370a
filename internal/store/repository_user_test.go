package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "email", "username", "password_hash", "email_confirmed", "created_at"})
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Email:        "john@example.com",
		Username:     "john",
		PasswordHash: "hash",
	}

	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Username, user.PasswordHash).
		WillReturnRows(userRows().AddRow(1, user.Email, user.Username, user.PasswordHash, false, now))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.EmailConfirmed {
		t.Error("new user must not be confirmed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email", "users_email_key", ErrEmailAlreadyExists},
		{"username", "users_username_key", ErrUsernameTaken},
		{"unnamed constraint", "", ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, tt.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.c", Username: "john"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateUser_Unavailable(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.c", Username: "john"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestCreateUser_OtherDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("boom"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.c"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrEmailAlreadyExists) || errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("unexpected classification: %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("john@example.com").
		WillReturnRows(userRows().AddRow(7, "john@example.com", "john", "hash", true, now))

	user, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 7 || !user.EmailConfirmed || user.PasswordHash != "hash" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(userRows())

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(userRows().AddRow(3, "x@y.z", "x", "h", false, time.Now()))

	user, err := repo.FindUserByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "x@y.z" {
		t.Errorf("unexpected email %q", user.Email)
	}
}

func TestFindUserByID_ConnectionLost(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByID(context.Background(), 3)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestConfirmEmail(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET email_confirmed = \\$1 WHERE user_id = \\$2").
			WithArgs(true, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.ConfirmEmail(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.ConfirmEmail(context.Background(), 5); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectExec("UPDATE users").
			WillReturnError(errors.New("boom"))

		if err := repo.ConfirmEmail(context.Background(), 5); !errors.Is(err, ErrExecutingStatement) {
			t.Fatalf("expected ErrExecutingStatement, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	profile := models.Profile{UserID: 2, Username: "neo", Email: "neo@example.com"}

	t.Run("updated", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE users SET username = \\$1, email_confirmed = email_confirmed AND email = \\$2, email = \\$3 WHERE user_id = \\$4").
			WithArgs(profile.Username, profile.Email, profile.Email, profile.UserID).
			WillReturnRows(userRows().AddRow(2, profile.Email, profile.Username, "h", false, time.Now()))

		user, err := repo.UpdateProfile(context.Background(), profile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "neo" {
			t.Errorf("unexpected username %q", user.Username)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE users").WillReturnRows(userRows())

		if _, err := repo.UpdateProfile(context.Background(), profile); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		repo, mock, db := newTestUserRepo(t)
		defer db.Close()

		mock.ExpectQuery("UPDATE users").
			WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "users_username_key"))

		if _, err := repo.UpdateProfile(context.Background(), profile); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})
}
