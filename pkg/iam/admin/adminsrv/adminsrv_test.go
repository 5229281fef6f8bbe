package adminsrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/iam/admin"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

type fakeAdminRepo struct {
	byEmail map[kernel.Email]*admin.Admin
	byID    map[kernel.AdminID]*admin.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		byEmail: make(map[kernel.Email]*admin.Admin),
		byID:    make(map[kernel.AdminID]*admin.Admin),
	}
}

func (r *fakeAdminRepo) Create(_ context.Context, a *admin.Admin) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return admin.ErrAdminAlreadyExists()
	}
	cp := *a
	r.byEmail[a.Email] = &cp
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id kernel.AdminID) (*admin.Admin, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, admin.ErrAdminNotFound()
	}
	return a, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email kernel.Email) (*admin.Admin, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, admin.ErrAdminNotFound()
	}
	return a, nil
}

func newTestService() (*AdminService, *fakeAdminRepo, *auth.TokenService) {
	repo := newFakeAdminRepo()
	tokens := auth.NewTokenService("test-secret", 7*24*time.Hour, "ats-backend")
	return NewAdminService(repo, tokens), repo, tokens
}

func signupReq() admin.SignupRequest {
	return admin.SignupRequest{
		Email:     "admin@example.com",
		Password:  "s3cret-password",
		FirstName: "Ada",
		LastName:  "Admin",
	}
}

func TestSignupReturnsValidToken(t *testing.T) {
	svc, repo, tokens := newTestService()

	resp, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, kernel.Email("admin@example.com"), resp.Admin.Email)

	claims, err := tokens.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, claims.AdminID)

	stored := repo.byEmail["admin@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-password")))
	assert.NotEqual(t, "s3cret-password", stored.PasswordHash)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupReq())
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newTestService()

	req := signupReq()
	req.Email = "not-an-email"
	_, err := svc.Signup(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	req = signupReq()
	req.Password = "short"
	_, err = svc.Signup(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "admin@example.com",
			Password: "s3cret-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, wrongPw := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong-password",
		})
		_, unknown := svc.Login(context.Background(), admin.LoginRequest{
			Email:    "ghost@example.com",
			Password: "s3cret-password",
		})

		require.Error(t, wrongPw)
		require.Error(t, unknown)
		assert.Equal(t, wrongPw.Error(), unknown.Error())
	})
}
