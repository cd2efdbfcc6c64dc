package service

import (
	"context"
	"testing"

	"github.com/MichaelOwusu007/vdlpro/internal/config"
	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory UserRepository stub ────────────────────────────────────────────

type stubUserRepo struct {
	byID    map[uuid.UUID]*model.User
	byEmail map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[uuid.UUID]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 168,
		BcryptCost:         4, // min cost keeps the suite fast
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterRequest{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "Ama@Example.com",
		Password:  "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ama@example.com", resp.User.Email, "emails are lowercased")
	assert.Equal(t, "user", resp.User.Role)

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "AMA@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Email: "dup@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "DUP@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.byID, 1, "failed registration must not insert")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Email: "u@example.com", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "u@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "right"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenCarriesUserIDClaim(t *testing.T) {
	repo := newStubUserRepo()
	cfg := testAuthConfig()
	svc := NewAuthService(repo, cfg)

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "t@example.com", Password: "pw"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["userId"])
	assert.NotNil(t, claims["exp"])
}

func TestMeAndAvatar(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterRequest{Email: "me@example.com", Password: "pw"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", me.Email)

	updated, err := svc.SetAvatar(ctx, resp.User.ID, "/uploads/1-42.png")
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarURL)
	assert.Equal(t, "/uploads/1-42.png", *updated.AvatarURL)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
