package usecase

import (
	"context"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/internal/dto/request"
	"garagehub/internal/dto/response"
	"garagehub/pkg/apperror"
	"garagehub/pkg/metrics"
	"garagehub/pkg/token"
	"garagehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	CheckUser(ctx context.Context, req *request.CheckUserRequest) (*response.CheckUserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	role := entity.RoleCustomer
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	// 2. Pre-check email. Optimization only: the unique constraint on
	// users.email is what actually guarantees uniqueness under concurrency.
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email is already in use", "email")
	}

	if req.Phone != nil {
		existing, err = s.repo.User.FindByIdentifier(ctx, *req.Phone)
		if err != nil {
			return nil, apperror.FromDatabase(err)
		}
		if existing != nil {
			return nil, apperror.Conflict("Phone number is already in use", "phone")
		}
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.Internal("Failed to process password")
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
		IsVerified:   false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperror.FromDatabase(err)
	}

	// 5. CUSTOMER accounts get exactly one customer profile; other roles none.
	if role == entity.RoleCustomer {
		customer := &entity.Customer{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID: user.ID,
		}
		if err := s.repo.Customer.Create(ctx, customer); err != nil {
			// Compensate: the account is unusable without its profile.
			if delErr := s.repo.User.Delete(ctx, user.ID); delErr != nil {
				s.log.Error("Failed to roll back user after customer create failure",
					zap.Error(delErr), zap.String("user_id", user.ID.String()))
			}
			return nil, apperror.FromDatabase(err)
		}
	}

	sessionToken, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperror.Internal("Failed to create session")
	}

	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))

	return &response.AuthResponse{
		Token:     sessionToken,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	// 2. Find user by email or phone
	user, err := s.repo.User.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials")
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperror.Unauthorized("Account is deactivated")
	}

	// 3. Issue fresh token. This is the only point where the identity
	// snapshot inside the token is refreshed.
	sessionToken, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperror.Internal("Failed to create session")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		Token:     sessionToken,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

// CheckUser is an existence probe used by the sign-in flow; it never returns
// 404 for a missing user.
func (s *authService) CheckUser(ctx context.Context, req *request.CheckUserRequest) (*response.CheckUserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.FromValidation(errs)
	}

	user, err := s.repo.User.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if user == nil {
		return &response.CheckUserResponse{Exists: false}, nil
	}

	business, err := s.repo.Business.FindByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	userResp := response.UserToResponse(user)
	return &response.CheckUserResponse{
		Exists:      true,
		User:        &userResp,
		HasBusiness: business != nil,
	}, nil
}

func (s *authService) issueToken(user *entity.User) (string, time.Time, error) {
	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	expiresAt := time.Now().Add(ttl)

	signed, err := token.New(token.SessionView{
		UserID:    user.ID.String(),
		Role:      string(user.Role),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Verified:  user.IsVerified,
		Active:    user.IsActive,
	}, s.config.JWT.Secret, ttl)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
