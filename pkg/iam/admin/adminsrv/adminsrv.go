package adminsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/iam/admin"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

const bcryptCost = 10

// AdminService provides signup and login for back-office admins
type AdminService struct {
	adminRepo admin.Repository
	tokens    *auth.TokenService
}

// NewAdminService creates a new instance of the admin service
func NewAdminService(adminRepo admin.Repository, tokens *auth.TokenService) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

// Signup registers a new admin and returns a signed token for it
func (s *AdminService) Signup(ctx context.Context, req admin.SignupRequest) (*admin.AuthResponse, error) {
	if !req.Email.IsValid() {
		return nil, admin.ErrInvalidEmail().WithDetail("email", req.Email.String())
	}
	if len(req.Password) < 8 {
		return nil, admin.ErrWeakPassword()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	newAdmin := &admin.Admin{
		ID:           kernel.NewAdminID(uuid.NewString()),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on admins.email is the authoritative duplicate guard;
	// the repository maps its violation to ErrAdminAlreadyExists.
	if err := s.adminRepo.Create(ctx, newAdmin); err != nil {
		return nil, err
	}

	return s.toAuthResponse(newAdmin)
}

// Login authenticates an admin by email and password. Unknown email and wrong
// password return the same error so callers cannot probe which emails exist.
func (s *AdminService) Login(ctx context.Context, req admin.LoginRequest) (*admin.AuthResponse, error) {
	adminEntity, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, admin.ErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminEntity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, admin.ErrInvalidCredentials()
	}

	return s.toAuthResponse(adminEntity)
}

// GetAdminByID retrieves an admin profile
func (s *AdminService) GetAdminByID(ctx context.Context, id kernel.AdminID) (*admin.AdminResponse, error) {
	adminEntity, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toAdminResponse(adminEntity)
	return &resp, nil
}

func (s *AdminService) toAuthResponse(a *admin.Admin) (*admin.AuthResponse, error) {
	token, err := s.tokens.GenerateAdminToken(a.ID)
	if err != nil {
		return nil, err
	}
	return &admin.AuthResponse{
		Token: token,
		Admin: toAdminResponse(a),
	}, nil
}

func toAdminResponse(a *admin.Admin) admin.AdminResponse {
	return admin.AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
	}
}
