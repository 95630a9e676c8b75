package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/normalization"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type SessionClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	Admin   bool   `json:"is_admin"`
}

type AuthService interface {
	LoginWithPassword(ctx context.Context, email, password string) (string, *requestdata.Principal, error)
	LoginWithProvider(ctx context.Context, profile *OAuthProfile) (string, *requestdata.Principal, error)
	DecodeToken(tokenString string) (*requestdata.Principal, error)
	// IsAdmin is the one authorization predicate shared by every
	// enforcement point: configured admin email equality OR a previously
	// issued admin claim.
	IsAdmin(email string, claimed bool) bool
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	avatarService AvatarService
	jwtSecretKey  string
	adminEmail    string
	adminPassword string
	accessTTL     time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	avatarService AvatarService,
	jwtSecretKey string,
	adminEmail string,
	adminPassword string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		avatarService: avatarService,
		jwtSecretKey:  jwtSecretKey,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		accessTTL:     accessTTL,
	}
}

func (as *authService) LoginWithPassword(ctx context.Context, email, password string) (string, *requestdata.Principal, error) {
	if email == "" || password == "" {
		return "", nil, apierr.InvalidRequest("email and password are required")
	}

	// Static admin pair: exact, case-sensitive match against the configured
	// credentials, no database lookup.
	if as.adminEmail != "" && email == as.adminEmail && password == as.adminPassword {
		principal := &requestdata.Principal{
			UserID:  uuid.Nil,
			Email:   as.adminEmail,
			Name:    "Administrator",
			IsAdmin: true,
		}
		token, err := as.generateToken(principal)
		if err != nil {
			return "", nil, apierr.Persistence(err)
		}
		return token, principal, nil
	}

	user, err := as.userRepo.GetByEmail(ctx, nil, normalization.ParseInputString(email))
	if err != nil {
		return "", nil, apierr.Persistence(fmt.Errorf("error retrieving user by email: %w", err))
	}
	if user == nil {
		return "", nil, apierr.InvalidCredentials()
	}

	// Any existing account authenticates by email alone; no password hash is
	// checked on this path. Kept as-is from the source system.
	principal := as.principalFromUser(user)
	token, err := as.generateToken(principal)
	if err != nil {
		return "", nil, apierr.Persistence(err)
	}
	return token, principal, nil
}

func (as *authService) LoginWithProvider(ctx context.Context, profile *OAuthProfile) (string, *requestdata.Principal, error) {
	if profile == nil || profile.Sub == "" || profile.Email == "" {
		return "", nil, apierr.InvalidRequest("provider profile is incomplete")
	}

	var user *types.User
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.userRepo.GetByProviderSub(ctx, tx, profile.Provider, profile.Sub)
		if err != nil {
			return fmt.Errorf("failed to look up provider identity: %w", err)
		}
		if existing != nil {
			user = existing
			return nil
		}
		created := &types.User{
			ID:          uuid.New(),
			Email:       normalization.ParseInputString(profile.Email),
			Name:        normalization.TrimInputString(profile.Name),
			Provider:    profile.Provider,
			ProviderSub: profile.Sub,
		}
		if profile.Picture != "" {
			created.Avatar = types.AssetRef{SecureURL: profile.Picture}
		} else if as.avatarService != nil {
			ref, avErr := as.avatarService.CreateAndUploadAvatar(ctx, created.Name)
			if avErr != nil {
				as.log.Warn("failed to render placeholder avatar (ignored)", "error", avErr)
			} else {
				created.Avatar = *ref
			}
		}
		if _, err := as.userRepo.Create(ctx, tx, created); err != nil {
			return fmt.Errorf("failed to create user for provider identity: %w", err)
		}
		user = created
		return nil
	})
	if err != nil {
		return "", nil, apierr.Persistence(err)
	}

	principal := as.principalFromUser(user)
	token, err := as.generateToken(principal)
	if err != nil {
		return "", nil, apierr.Persistence(err)
	}
	return token, principal, nil
}

func (as *authService) generateToken(principal *requestdata.Principal) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email:   principal.Email,
		Name:    principal.Name,
		Picture: principal.Image,
		Admin:   principal.IsAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) DecodeToken(tokenString string) (*requestdata.Principal, error) {
	if tokenString == "" {
		return nil, apierr.Unauthenticated()
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return nil, apierr.Unauthenticated()
	}
	claims, ok := parsedToken.Claims.(*SessionClaims)
	if !ok || !parsedToken.Valid {
		return nil, apierr.Unauthenticated()
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apierr.Unauthenticated()
	}
	// IsAdmin is recomputed from email equality on every materialization so
	// a stale claim alone cannot grant more than the claim carried.
	return &requestdata.Principal{
		UserID:  userID,
		Email:   claims.Email,
		Name:    claims.Name,
		Image:   claims.Picture,
		IsAdmin: as.IsAdmin(claims.Email, claims.Admin),
	}, nil
}

func (as *authService) IsAdmin(email string, claimed bool) bool {
	if as.adminEmail != "" && email == as.adminEmail {
		return true
	}
	return claimed
}

func (as *authService) principalFromUser(user *types.User) *requestdata.Principal {
	return &requestdata.Principal{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Image:   user.Avatar.SecureURL,
		IsAdmin: as.IsAdmin(user.Email, false),
	}
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
