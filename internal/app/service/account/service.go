package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	models "github.com/fatflowers/membership/internal/models"
	"github.com/fatflowers/membership/pkg/config"
	"github.com/fatflowers/membership/pkg/logctx"
	"github.com/fatflowers/membership/pkg/tool"
	types "github.com/fatflowers/membership/pkg/types"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("identity not found")
)

const (
	minPasswordLen = 8
	// bcrypt ignores input beyond 72 bytes.
	maxPasswordLen = 72
)

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
	now func() time.Time
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log, now: time.Now}
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=256"`
	Name     string `json:"name" binding:"max=128"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Identity  *models.Identity `json:"identity"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new identity. The role is decided from the identity count read
// in the same transaction, and the first admin additionally claims the bootstrap
// marker so concurrent first sign-ups cannot both become admin.
func (s *Service) SignUp(ctx context.Context, req *SignUpRequest) (*models.Identity, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidInput)
	}
	email := normalizeEmail(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: bad email %q", ErrInvalidInput, req.Email)
	}
	if n := len(req.Password); n < minPasswordLen || n > maxPasswordLen {
		return nil, fmt.Errorf("%w: password must be %d to %d bytes", ErrInvalidInput, minPasswordLen, maxPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	identity := &models.Identity{
		ID:           tool.GenerateUUIDV7(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&models.Identity{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count identities: %w", err)
		}
		identity.Role = AssignRole(count)
		if identity.Role == types.RoleAdmin {
			claimed, err := s.claimAdminBootstrap(ctx, tx, identity.ID)
			if err != nil {
				return err
			}
			if !claimed {
				identity.Role = types.RoleUser
			}
		}
		if err := tx.WithContext(ctx).Create(identity).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", ErrEmailTaken, email)
			}
			return fmt.Errorf("failed to create identity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("identity signed up", "identity_id", identity.ID, "role", identity.Role)
	return identity, nil
}

func (s *Service) claimAdminBootstrap(ctx context.Context, tx *gorm.DB, identityID string) (bool, error) {
	res := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&models.AdminBootstrap{
		Key:        models.AdminBootstrapKey,
		IdentityID: identityID,
		CreatedAt:  s.now(),
	})
	if res.Error != nil {
		return false, fmt.Errorf("failed to claim admin bootstrap: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// SignIn verifies credentials and issues a bearer token.
func (s *Service) SignIn(ctx context.Context, req *SignInRequest) (*SignInResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}
	var identity models.Identity
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		logctx.FromCtx(ctx, s.log).Infow("sign in rejected", "identity_id", identity.ID)
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.issueToken(identity.ID, identity.Email, identity.Role, s.now())
	if err != nil {
		return nil, err
	}
	return &SignInResponse{Token: token, ExpiresAt: exp, Identity: &identity}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Identity, error) {
	if !tool.IsUUID(id) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var identity models.Identity
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	return &identity, nil
}

// Module exposes the account service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
