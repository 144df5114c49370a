package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, email verification, credential checks and the
// JWT lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailer delivers verification links.
	mailer Mailer

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration             time.Duration
	refreshTokenDuration      time.Duration
	verificationTokenDuration time.Duration

	// bcryptCost is lowered in tests.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailer Mailer, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:            userRepository,
		mailer:                    mailer,
		validator:                 validator,
		tokenSignKey:              cfg.TokenSignKey,
		tokenIssuer:               cfg.TokenIssuer,
		tokenDuration:             cfg.TokenDuration,
		refreshTokenDuration:      cfg.RefreshTokenDuration,
		verificationTokenDuration: cfg.VerificationTokenDuration,
		bcryptCost:                bcrypt.DefaultCost,
		logger:                    logger,
	}
}

// Register creates an unconfirmed account and sends the verification link.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validation failure.
//   - A wrapped store.ErrEmailAlreadyExists / store.ErrUsernameTaken on conflicts.
//
// A failed delivery is logged only: the user can ask for the link again.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldUsername, validators.FieldPassword); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.sendVerification(ctx, user); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("verification email was not sent")
	}

	return user, nil
}

// VerifyEmail confirms the address the token was issued for.
func (a *authService) VerifyEmail(ctx context.Context, tokenString string) error {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.PurposeVerifyEmail)
	if err != nil {
		return ErrTokenIsExpiredOrInvalid
	}

	if err = a.userRepository.ConfirmEmail(ctx, token.UserID); err != nil {
		return fmt.Errorf("email confirmation failed: %w", err)
	}

	return nil
}

// ResendVerification sends a new link. Unknown and already confirmed
// addresses succeed silently so the endpoint cannot be used to probe
// accounts.
func (a *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}
	if user.EmailConfirmed {
		return nil
	}

	return a.sendVerification(ctx, user)
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if the email or password is malformed.
//   - ErrWrongPassword if no account matches or the password is wrong.
//   - ErrEmailNotConfirmed if the address has not been verified yet.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Email = strings.TrimSpace(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if !user.EmailConfirmed {
		return models.User{}, ErrEmailNotConfirmed
	}

	return user, nil
}

// IssueSession signs an access and a refresh token for user.
func (a *authService) IssueSession(ctx context.Context, user models.User) (models.Session, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, models.PurposeAccess, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, models.PurposeRefresh, user.UserID, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
		UserID:       user.UserID,
		Email:        user.Email,
		Username:     user.Username,
		ExpiresAt:    access.ExpiresAt.Time,
	}, nil
}

// Refresh exchanges a refresh token for a new session. The account is
// looked up again so a deleted user cannot keep refreshing.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, models.PurposeRefresh)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return a.IssueSession(ctx, user)
}

// ParseToken validates and parses an access token.
//
// Any validation failure (expired, wrong issuer, wrong purpose, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.PurposeAccess)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) sendVerification(ctx context.Context, user models.User) error {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, models.PurposeVerifyEmail, user.UserID, a.verificationTokenDuration, a.tokenSignKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return a.mailer.SendVerification(ctx, user, token.String())
}
