package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	userReader  *services.MockUserReader
	userWriter  *services.MockUserWriter
	tokenReader *services.MockTokenReader
	tokenWriter *services.MockTokenWriter
	mailer      *services.MockMailer
	jwt         *services.MockJWTGenerator
}

func newAuthService(t *testing.T) (*services.AuthService, *authMocks) {
	ctrl := gomock.NewController(t)
	m := &authMocks{
		userReader:  services.NewMockUserReader(ctrl),
		userWriter:  services.NewMockUserWriter(ctrl),
		tokenReader: services.NewMockTokenReader(ctrl),
		tokenWriter: services.NewMockTokenWriter(ctrl),
		mailer:      services.NewMockMailer(ctrl),
		jwt:         services.NewMockJWTGenerator(ctrl),
	}
	cfg := services.AuthConfig{
		FrontendURL:          "http://app.test",
		VerificationTokenTTL: 24 * time.Hour,
		ResetTokenTTL:        time.Hour,
		BcryptCost:           bcrypt.MinCost,
	}
	svc := services.NewAuthService(m.userReader, m.userWriter, m.tokenReader, m.tokenWriter, m.mailer, m.jwt, cfg)
	return svc, m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		svc, m := newAuthService(t)
		created := &models.UserDB{UserID: 1, Email: "a@x.com", CreatedAt: time.Now()}

		var issued string
		var expires time.Time
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
		m.userWriter.EXPECT().
			Create(gomock.Any(), "a@x.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) (*models.UserDB, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
				return created, nil
			})
		m.tokenWriter.EXPECT().
			Create(gomock.Any(), int64(1), gomock.Any(), models.TokenEmailVerification, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, token string, _ models.TokenType, expiresAt time.Time) error {
				issued, expires = token, expiresAt
				return nil
			})
		m.mailer.EXPECT().
			Send(gomock.Any(), "a@x.com", "Verify Your Email - To-Do App", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, html string) error {
				assert.Contains(t, html, "http://app.test/verify-email/"+issued)
				return nil
			})

		user, err := svc.Register(ctx, "  A@X.com ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: 1, Email: "a@x.com", IsVerified: false, CreatedAt: created.CreatedAt}, user)
		assert.Len(t, issued, 64)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), expires, time.Minute)
	})

	t.Run("validation happens before store access", func(t *testing.T) {
		tests := []struct {
			name     string
			email    string
			password string
			message  string
		}{
			{"missing email", "", "secret1", "Email and password are required."},
			{"missing password", "a@x.com", "", "Email and password are required."},
			{"no domain", "a@x", "secret1", "Invalid email format."},
			{"spaces", "a b@x.com", "secret1", "Invalid email format."},
			{"short password", "a@x.com", "12345", "Password must be at least 6 characters long."},
			{"short multibyte password", "a@x.com", "äöüßé", "Password must be at least 6 characters long."},
			{"password over bcrypt limit", "long@x.com", strings.Repeat("a", 80), "Password must be at most 72 bytes long."},
			{"multibyte password over bcrypt limit", "long@x.com", strings.Repeat("ä", 37), "Password must be at most 72 bytes long."},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _ := newAuthService(t)

				user, err := svc.Register(ctx, tt.email, tt.password)
				assert.Nil(t, user)
				var verr *services.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.message, verr.Message)
			})
		}
	})

	t.Run("user already exists", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(&models.UserDB{UserID: 3}, nil)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("concurrent registration hits unique index", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
		m.userWriter.EXPECT().Create(gomock.Any(), "a@x.com", gomock.Any()).Return(nil, models.ErrDuplicate)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newAuthService(t)
		dbErr := errors.New("db error")
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, dbErr)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("token collision is retried", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
		m.userWriter.EXPECT().Create(gomock.Any(), "a@x.com", gomock.Any()).Return(&models.UserDB{UserID: 1, Email: "a@x.com"}, nil)
		gomock.InOrder(
			m.tokenWriter.EXPECT().Create(gomock.Any(), int64(1), gomock.Any(), models.TokenEmailVerification, gomock.Any()).Return(models.ErrDuplicate),
			m.tokenWriter.EXPECT().Create(gomock.Any(), int64(1), gomock.Any(), models.TokenEmailVerification, gomock.Any()).Return(nil),
		)
		m.mailer.EXPECT().Send(gomock.Any(), "a@x.com", gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.NoError(t, err)
	})

	t.Run("token collisions give up after three attempts", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
		m.userWriter.EXPECT().Create(gomock.Any(), "a@x.com", gomock.Any()).Return(&models.UserDB{UserID: 1, Email: "a@x.com"}, nil)
		m.tokenWriter.EXPECT().Create(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ErrDuplicate).Times(3)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, models.ErrDuplicate)
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
		m.userWriter.EXPECT().Create(gomock.Any(), "a@x.com", gomock.Any()).Return(&models.UserDB{UserID: 1, Email: "a@x.com"}, nil)
		m.tokenWriter.EXPECT().Create(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		user, err := svc.Register(ctx, "a@x.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success consumes the token", func(t *testing.T) {
		svc, m := newAuthService(t)
		gomock.InOrder(
			m.tokenReader.EXPECT().GetValid(gomock.Any(), "tok", models.TokenEmailVerification).Return(&models.TokenDB{UserID: 5, Token: "tok"}, nil),
			m.userWriter.EXPECT().SetVerified(gomock.Any(), int64(5)).Return(nil),
			m.tokenWriter.EXPECT().Delete(gomock.Any(), "tok").Return(nil),
		)

		assert.NoError(t, svc.VerifyEmail(ctx, "tok"))
	})

	t.Run("unknown, expired or used token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokenReader.EXPECT().GetValid(gomock.Any(), "tok", models.TokenEmailVerification).Return(nil, nil)

		assert.ErrorIs(t, svc.VerifyEmail(ctx, "tok"), services.ErrInvalidToken)
	})

	t.Run("missing token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		var verr *services.ValidationError
		assert.ErrorAs(t, svc.VerifyEmail(ctx, ""), &verr)
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newAuthService(t)
		dbErr := errors.New("db error")
		m.tokenReader.EXPECT().GetValid(gomock.Any(), "tok", models.TokenEmailVerification).Return(&models.TokenDB{UserID: 5}, nil)
		m.userWriter.EXPECT().SetVerified(gomock.Any(), int64(5)).Return(dbErr)

		assert.ErrorIs(t, svc.VerifyEmail(ctx, "tok"), dbErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash := hashPassword(t, "secret1")

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			email:     "A@x.com",
			password:  "secret1",
			user:      &models.UserDB{UserID: 1, Email: "a@x.com", PasswordHash: hash, IsVerified: true},
			wantToken: "jwt-token",
		},
		{
			name:     "unknown email",
			email:    "a@x.com",
			password: "secret1",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unverified is reported before password check",
			email:    "a@x.com",
			password: "wrong-password",
			user:     &models.UserDB{UserID: 1, Email: "a@x.com", PasswordHash: hash},
			wantErr:  services.ErrEmailNotVerified,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong-password",
			user:     &models.UserDB{UserID: 1, Email: "a@x.com", PasswordHash: hash, IsVerified: true},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "a@x.com",
			password:  "secret1",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			email:    "a@x.com",
			password: "secret1",
			user:     &models.UserDB{UserID: 1, Email: "a@x.com", PasswordHash: hash, IsVerified: true},
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			m.userReader.EXPECT().GetByEmail(gomock.Any(), strings.ToLower(tt.email)).Return(tt.user, tt.readerErr)
			if tt.wantToken != "" || tt.jwtErr != nil {
				m.jwt.EXPECT().Generate(gomock.Any(), tt.user.UserID, tt.user.Email).Return(tt.wantToken, tt.jwtErr)
			}

			token, user, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.user.UserID, user.ID)
			assert.True(t, user.IsVerified)
		})
	}

	t.Run("missing credentials", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, _, err := svc.Login(ctx, "a@x.com", "")
		var verr *services.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{UserID: 7, Email: "me@x.com", PasswordHash: "hash", IsVerified: true}, nil)

		user, err := svc.GetCurrentUser(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: 7, Email: "me@x.com", IsVerified: true}, user)
	})

	t.Run("deleted since the token was issued", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)

		_, err := svc.GetCurrentUser(ctx, 7)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email succeeds without side effects", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)

		assert.NoError(t, svc.ForgotPassword(ctx, "ghost@x.com"))
	})

	t.Run("existing user gets a fresh token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(&models.UserDB{UserID: 2, Email: "a@x.com"}, nil)

		var issued string
		gomock.InOrder(
			m.tokenWriter.EXPECT().DeleteByUser(gomock.Any(), int64(2), models.TokenPasswordReset).Return(nil),
			m.tokenWriter.EXPECT().
				Create(gomock.Any(), int64(2), gomock.Any(), models.TokenPasswordReset, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, token string, _ models.TokenType, expiresAt time.Time) error {
					issued = token
					assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
					return nil
				}),
			m.mailer.EXPECT().
				Send(gomock.Any(), "a@x.com", "Reset Your Password - To-Do App", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, html string) error {
					assert.Contains(t, html, "http://app.test/reset-password/"+issued)
					assert.Contains(t, html, "1 hour")
					return nil
				}),
		)

		assert.NoError(t, svc.ForgotPassword(ctx, "A@X.COM"))
	})

	t.Run("mail failure still succeeds", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(&models.UserDB{UserID: 2, Email: "a@x.com"}, nil)
		m.tokenWriter.EXPECT().DeleteByUser(gomock.Any(), int64(2), models.TokenPasswordReset).Return(nil)
		m.tokenWriter.EXPECT().Create(gomock.Any(), int64(2), gomock.Any(), models.TokenPasswordReset, gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NoError(t, svc.ForgotPassword(ctx, "a@x.com"))
	})

	t.Run("missing email", func(t *testing.T) {
		svc, _ := newAuthService(t)

		var verr *services.ValidationError
		assert.ErrorAs(t, svc.ForgotPassword(ctx, "  "), &verr)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces hash and consumes token", func(t *testing.T) {
		svc, m := newAuthService(t)
		gomock.InOrder(
			m.tokenReader.EXPECT().GetValid(gomock.Any(), "tok", models.TokenPasswordReset).Return(&models.TokenDB{UserID: 4, Token: "tok"}, nil),
			m.userWriter.EXPECT().
				UpdatePassword(gomock.Any(), int64(4), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, hash string) error {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
					return nil
				}),
			m.tokenWriter.EXPECT().Delete(gomock.Any(), "tok").Return(nil),
		)

		assert.NoError(t, svc.ResetPassword(ctx, "tok", "newpass"))
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokenReader.EXPECT().GetValid(gomock.Any(), "tok", models.TokenPasswordReset).Return(nil, nil)

		assert.ErrorIs(t, svc.ResetPassword(ctx, "tok", "newpass"), services.ErrInvalidToken)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newAuthService(t)

		var verr *services.ValidationError
		require.ErrorAs(t, svc.ResetPassword(ctx, "tok", "short"), &verr)
		assert.Equal(t, "Password must be at least 6 characters long.", verr.Message)

		require.ErrorAs(t, svc.ResetPassword(ctx, "", "newpass"), &verr)
		assert.Equal(t, "Token and new password are required.", verr.Message)
	})

	t.Run("password over bcrypt limit is rejected before token lookup", func(t *testing.T) {
		svc, _ := newAuthService(t)

		var verr *services.ValidationError
		require.ErrorAs(t, svc.ResetPassword(ctx, "tok", strings.Repeat("a", 73)), &verr)
		assert.Equal(t, "Password must be at most 72 bytes long.", verr.Message)
	})

	t.Run("password at bcrypt limit is accepted", func(t *testing.T) {
		svc, m := newAuthService(t)
		password := strings.Repeat("a", 72)
		m.tokenReader.EXPECT().GetValid(gomock.Any(), "tok", models.TokenPasswordReset).Return(&models.TokenDB{UserID: 4, Token: "tok"}, nil)
		m.userWriter.EXPECT().
			UpdatePassword(gomock.Any(), int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
				return nil
			})
		m.tokenWriter.EXPECT().Delete(gomock.Any(), "tok").Return(nil)

		assert.NoError(t, svc.ResetPassword(ctx, "tok", password))
	})
}

func TestDefaultAuthConfig(t *testing.T) {
	cfg := services.DefaultAuthConfig()
	assert.Equal(t, 24*time.Hour, cfg.VerificationTokenTTL)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}
