package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
)

// Service handles staff account login and registration
type Service struct {
	db              *ent.Client
	log             logger.Logger
	jwtSecret       string
	expirationHours int
}

// NewService creates a new auth service
func NewService(db *ent.Client, log logger.Logger, jwtSecret string, expirationHours int) *Service {
	return &Service{db: db, log: log, jwtSecret: jwtSecret, expirationHours: expirationHours}
}

// RegisterInput holds the fields for a new staff account
type RegisterInput struct {
	BusinessID int    `json:"business_id" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name,omitempty"`
	Role       string `json:"role,omitempty"`
}

// Register creates a staff account for a business
func (s *Service) Register(ctx context.Context, input RegisterInput) (*ent.StaffUser, error) {
	ok, err := s.db.Business.Query().
		Where(business.IDEQ(input.BusinessID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check business: %w", err)
	}
	if !ok {
		return nil, domain.NewNotFoundError("business")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	builder := s.db.StaffUser.Create().
		SetBusinessID(input.BusinessID).
		SetEmail(strings.ToLower(input.Email)).
		SetPasswordHash(hash).
		SetFullName(input.FullName)
	if input.Role != "" {
		builder = builder.SetRole(staffuser.Role(input.Role))
	}

	u, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, domain.NewConflictError("an account with this email already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	s.log.Info("staff account created", "user_id", u.ID, "business_id", input.BusinessID)
	return u, nil
}

// Login verifies credentials and returns a signed token
func (s *Service) Login(ctx context.Context, email, password string) (string, *ent.StaffUser, error) {
	u, err := s.db.StaffUser.Query().
		Where(
			staffuser.EmailEQ(strings.ToLower(email)),
			staffuser.IsActiveEQ(true),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil, domain.NewUnauthorizedError()
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load staff account: %w", err)
	}

	if !CheckPassword(u.PasswordHash, password) {
		return "", nil, domain.NewUnauthorizedError()
	}

	token, err := GenerateJWT(u.ID, u.BusinessID, u.Email, string(u.Role), s.jwtSecret, s.expirationHours)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.db.StaffUser.UpdateOne(u).
		SetLastLoginAt(time.Now()).
		Exec(ctx); err != nil {
		s.log.Warn("failed to record login time", "user_id", u.ID, "error", err)
	}

	return token, u, nil
}
