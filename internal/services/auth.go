package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"html/template"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

const (
	minPasswordLength = 6
	maxPasswordBytes  = 72 // bcrypt input limit
	tokenBytes        = 32
	tokenAttempts     = 3
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
	SetVerified(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// TokenReader looks up live single-use tokens.
type TokenReader interface {
	GetValid(ctx context.Context, token string, kind models.TokenType) (*models.TokenDB, error)
}

// TokenWriter issues and consumes single-use tokens.
type TokenWriter interface {
	Create(ctx context.Context, userID int64, token string, kind models.TokenType, expiresAt time.Time) error
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64, kind models.TokenType) error
}

// Mailer delivers a rendered HTML mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthConfig holds the settings of the auth flows.
type AuthConfig struct {
	FrontendURL          string        // Base URL of the links sent by mail
	VerificationTokenTTL time.Duration // Lifetime of email verification tokens
	ResetTokenTTL        time.Duration // Lifetime of password reset tokens
	BcryptCost           int           // Work factor of password hashes
}

// DefaultAuthConfig returns the settings used when nothing is configured.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		FrontendURL:          "http://localhost:3000",
		VerificationTokenTTL: 24 * time.Hour,
		ResetTokenTTL:        time.Hour,
		BcryptCost:           bcrypt.DefaultCost,
	}
}

// AuthService handles registration, login, email verification and
// password reset.
type AuthService struct {
	userReader  UserReader
	userWriter  UserWriter
	tokenReader TokenReader
	tokenWriter TokenWriter
	mailer      Mailer
	jwt         JWTGenerator
	cfg         AuthConfig
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	userReader UserReader,
	userWriter UserWriter,
	tokenReader TokenReader,
	tokenWriter TokenWriter,
	mailer Mailer,
	jwt JWTGenerator,
	cfg AuthConfig,
) *AuthService {
	return &AuthService{
		userReader:  userReader,
		userWriter:  userWriter,
		tokenReader: tokenReader,
		tokenWriter: tokenWriter,
		mailer:      mailer,
		jwt:         jwt,
		cfg:         cfg,
	}
}

// Register creates an unverified user and mails it a verification link.
func (svc *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("Email and password are required.")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("Invalid email format.")
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	existing, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cfg.BcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.userWriter.Create(ctx, email, string(hash))
	if errors.Is(err, models.ErrDuplicate) {
		logger.Log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	token, err := svc.issueToken(ctx, user.UserID, models.TokenEmailVerification, svc.cfg.VerificationTokenTTL)
	if err != nil {
		return nil, err
	}
	svc.sendMail(ctx, email, verificationSubject, verificationMail, svc.cfg.FrontendURL+"/verify-email/"+token)

	return user.Public(), nil
}

// VerifyEmail marks the owner of a live verification token as verified
// and consumes the token.
func (svc *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return invalid("Token is required.")
	}

	stored, err := svc.tokenReader.GetValid(ctx, token, models.TokenEmailVerification)
	if err != nil {
		logger.Log.Errorw("failed to get verification token", "err", err)
		return err
	}
	if stored == nil {
		return ErrInvalidToken
	}

	if err := svc.userWriter.SetVerified(ctx, stored.UserID); err != nil {
		logger.Log.Errorw("failed to verify user", "user_id", stored.UserID, "err", err)
		return err
	}
	if err := svc.tokenWriter.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete verification token", "user_id", stored.UserID, "err", err)
		return err
	}
	return nil
}

// Login authenticates a verified user and returns a bearer token.
// An unverified account is reported before the password is checked.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, invalid("Email and password are required.")
	}

	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		logger.Log.Infow("login before verification", "user_id", user.UserID)
		return "", nil, ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// GetCurrentUser returns the public fields of an authenticated user.
func (svc *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

// ForgotPassword replaces the user's outstanding reset tokens with a new
// one and mails the reset link. Unknown emails succeed silently.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return invalid("Email is required.")
	}

	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return nil
	}

	if err := svc.tokenWriter.DeleteByUser(ctx, user.UserID, models.TokenPasswordReset); err != nil {
		logger.Log.Errorw("failed to delete reset tokens", "user_id", user.UserID, "err", err)
		return err
	}

	token, err := svc.issueToken(ctx, user.UserID, models.TokenPasswordReset, svc.cfg.ResetTokenTTL)
	if err != nil {
		return err
	}
	svc.sendMail(ctx, user.Email, resetSubject, resetMail, svc.cfg.FrontendURL+"/reset-password/"+token)

	return nil
}

// ResetPassword sets a new password for the owner of a live reset token
// and consumes the token.
func (svc *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return invalid("Token and new password are required.")
	}
	if err := checkPassword(password); err != nil {
		return err
	}

	stored, err := svc.tokenReader.GetValid(ctx, token, models.TokenPasswordReset)
	if err != nil {
		logger.Log.Errorw("failed to get reset token", "err", err)
		return err
	}
	if stored == nil {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cfg.BcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.userWriter.UpdatePassword(ctx, stored.UserID, string(hash)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", stored.UserID, "err", err)
		return err
	}
	if err := svc.tokenWriter.Delete(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete reset token", "user_id", stored.UserID, "err", err)
		return err
	}
	return nil
}

// issueToken stores a fresh random token of the given kind, drawing again
// when the value collides with an existing one.
func (svc *AuthService) issueToken(ctx context.Context, userID int64, kind models.TokenType, ttl time.Duration) (string, error) {
	for attempt := 1; ; attempt++ {
		token, err := generateToken()
		if err != nil {
			logger.Log.Errorw("failed to generate token", "err", err)
			return "", err
		}

		err = svc.tokenWriter.Create(ctx, userID, token, kind, time.Now().Add(ttl))
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, models.ErrDuplicate) || attempt == tokenAttempts {
			logger.Log.Errorw("failed to save token", "user_id", userID, "type", kind, "err", err)
			return "", err
		}
	}
}

// sendMail renders and delivers a mail. Failures are logged only: the
// token is already stored and the operation stands.
func (svc *AuthService) sendMail(ctx context.Context, to, subject string, tmpl *template.Template, link string) {
	body, err := renderMail(tmpl, link)
	if err != nil {
		logger.Log.Errorw("failed to render mail", "subject", subject, "err", err)
		return
	}
	if err := svc.mailer.Send(ctx, to, subject, body); err != nil {
		logger.Log.Errorw("failed to send mail", "to", to, "subject", subject, "err", err)
	}
}

// checkPassword enforces the length bounds of a new password. The upper
// bound is in bytes since bcrypt rejects longer input.
func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return invalid("Password must be at least 6 characters long.")
	}
	if len(password) > maxPasswordBytes {
		return invalid("Password must be at most 72 bytes long.")
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
