package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type fakeUserRepo struct {
	byEmail       map[string]*types.User
	byProviderSub map[string]*types.User
	created       []*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:       map[string]*types.User{},
		byProviderSub: map[string]*types.User{},
	}
}

func (fr *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	fr.created = append(fr.created, user)
	fr.byEmail[user.Email] = user
	fr.byProviderSub[user.Provider+"|"+user.ProviderSub] = user
	return user, nil
}

func (fr *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	for _, u := range fr.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (fr *fakeUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	return fr.byEmail[email], nil
}

func (fr *fakeUserRepo) GetByProviderSub(ctx context.Context, tx *gorm.DB, provider, sub string) (*types.User, error) {
	return fr.byProviderSub[provider+"|"+sub], nil
}

func (fr *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	_, ok := fr.byEmail[email]
	return ok, nil
}

func (fr *fakeUserRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) error {
	fr.byEmail[user.Email] = user
	return nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return db
}

func newTestAuthService(t *testing.T, userRepo *fakeUserRepo) AuthService {
	t.Helper()
	return NewAuthService(
		testDB(t),
		logger.NewNop(),
		userRepo,
		nil,
		"test-secret",
		"admin@veraroam.test",
		"s3cret-Admin",
		time.Hour,
	)
}

func TestLoginWithPassword_StaticAdminExactMatch(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	token, principal, err := auth.LoginWithPassword(context.Background(), "admin@veraroam.test", "s3cret-Admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if !principal.IsAdmin {
		t.Fatalf("static admin principal must be admin")
	}
	if principal.UserID != uuid.Nil {
		t.Fatalf("static admin has no user row, got id %s", principal.UserID)
	}
}

func TestLoginWithPassword_StaticAdminIsCaseSensitive(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	// Wrong case on the email falls through to the user lookup, which
	// finds nothing.
	_, _, err := auth.LoginWithPassword(context.Background(), "Admin@veraroam.test", "s3cret-Admin")
	if err == nil {
		t.Fatalf("expected error for case-mismatched admin email")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}

	_, _, err = auth.LoginWithPassword(context.Background(), "admin@veraroam.test", "S3CRET-admin")
	if err == nil {
		t.Fatalf("expected error for case-mismatched admin password")
	}
}

func TestLoginWithPassword_ExistingUserAuthenticatesByEmailAlone(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.byEmail["fan@example.com"] = &types.User{
		ID:    uuid.New(),
		Email: "fan@example.com",
		Name:  "Fan",
	}
	auth := newTestAuthService(t, userRepo)

	_, principal, err := auth.LoginWithPassword(context.Background(), "Fan@Example.COM", "literally anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.Email != "fan@example.com" {
		t.Fatalf("unexpected principal email %q", principal.Email)
	}
	if principal.IsAdmin {
		t.Fatalf("regular user must not be admin")
	}
}

func TestLoginWithPassword_UnknownEmailRejected(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	_, _, err := auth.LoginWithPassword(context.Background(), "nobody@example.com", "pw")
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
}

func TestLoginWithPassword_MissingFieldsRejected(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	_, _, err := auth.LoginWithPassword(context.Background(), "", "pw")
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Status != 400 {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestDecodeToken_RoundTripPreservesPrincipal(t *testing.T) {
	userRepo := newFakeUserRepo()
	userID := uuid.New()
	userRepo.byEmail["fan@example.com"] = &types.User{
		ID:     userID,
		Email:  "fan@example.com",
		Name:   "Fan",
		Avatar: types.AssetRef{SecureURL: "https://cdn.test/avatars/fan.png"},
	}
	auth := newTestAuthService(t, userRepo)

	token, _, err := auth.LoginWithPassword(context.Background(), "fan@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	principal, err := auth.DecodeToken(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if principal.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, principal.UserID)
	}
	if principal.Email != "fan@example.com" || principal.Name != "Fan" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.Image != "https://cdn.test/avatars/fan.png" {
		t.Fatalf("avatar url not carried through the token: %+v", principal)
	}
}

func TestDecodeToken_RejectsGarbageAndEmpty(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	if _, err := auth.DecodeToken(""); err == nil {
		t.Fatalf("expected error for empty token")
	}
	if _, err := auth.DecodeToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestDecodeToken_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.byEmail["fan@example.com"] = &types.User{ID: uuid.New(), Email: "fan@example.com"}
	issuer := newTestAuthService(t, userRepo)
	verifier := NewAuthService(testDB(t), logger.NewNop(), userRepo, nil, "other-secret", "admin@veraroam.test", "pw", time.Hour)

	token, _, err := issuer.LoginWithPassword(context.Background(), "fan@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := verifier.DecodeToken(token); err == nil {
		t.Fatalf("expected signature verification failure")
	}
}

func TestIsAdmin_EmailEqualityOverridesFalseClaim(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	if !auth.IsAdmin("admin@veraroam.test", false) {
		t.Fatalf("configured admin email must be admin regardless of claim")
	}
	if !auth.IsAdmin("someone@example.com", true) {
		t.Fatalf("issued admin claim must be honored")
	}
	if auth.IsAdmin("someone@example.com", false) {
		t.Fatalf("ordinary user must not be admin")
	}
}

func TestLoginWithProvider_UpsertsByProviderSub(t *testing.T) {
	userRepo := newFakeUserRepo()
	auth := newTestAuthService(t, userRepo)

	profile := &OAuthProfile{
		Provider: "google",
		Sub:      "sub-123",
		Email:    "Traveler@Example.com",
		Name:     "  Traveler  ",
		Picture:  "https://lh3.test/pic.jpg",
	}
	_, first, err := auth.LoginWithProvider(context.Background(), profile)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	if len(userRepo.created) != 1 {
		t.Fatalf("expected one user created, got %d", len(userRepo.created))
	}
	if userRepo.created[0].Email != "traveler@example.com" {
		t.Fatalf("email should be normalized, got %q", userRepo.created[0].Email)
	}
	if userRepo.created[0].Name != "Traveler" {
		t.Fatalf("name should be trimmed, got %q", userRepo.created[0].Name)
	}

	_, second, err := auth.LoginWithProvider(context.Background(), profile)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if len(userRepo.created) != 1 {
		t.Fatalf("second login must reuse the existing row")
	}
	if first.UserID != second.UserID {
		t.Fatalf("principal ids differ across logins: %s vs %s", first.UserID, second.UserID)
	}
}

func TestLoginWithProvider_RejectsIncompleteProfile(t *testing.T) {
	auth := newTestAuthService(t, newFakeUserRepo())

	if _, _, err := auth.LoginWithProvider(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil profile")
	}
	if _, _, err := auth.LoginWithProvider(context.Background(), &OAuthProfile{Provider: "google", Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error for missing sub")
	}
}
