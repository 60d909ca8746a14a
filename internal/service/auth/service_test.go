package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicops/clinic-backend-go/internal/domain/auth"
	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	"github.com/clinicops/clinic-backend-go/internal/pkg/jwt"
	"github.com/clinicops/clinic-backend-go/internal/pkg/validator"
)

type stubEmployeeRepo struct {
	byLogin map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByCard(ctx context.Context, cardID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrCardNotFound
}

func (s *stubEmployeeRepo) GetByLogin(ctx context.Context, login string) (employee.Employee, error) {
	emp, ok := s.byLogin[login]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func newLoginEnv(t *testing.T, password string, active bool) auth.AuthService {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	hash := string(hashed)

	repo := &stubEmployeeRepo{byLogin: map[string]employee.Employee{
		"siti": {
			ID:           "emp-1",
			FirstName:    "Siti",
			LastName:     "Rahma",
			Login:        "siti",
			PasswordHash: &hash,
			Role:         employee.RoleAdmin,
			IsActive:     active,
		},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret-key-for-jwt", "1h"))
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newLoginEnv(t, "password123", true)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Login: "siti", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "admin", resp.Role)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newLoginEnv(t, "password123", true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "siti", Password: "nope"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownLogin(t *testing.T) {
	svc := newLoginEnv(t, "password123", true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "ghost", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveEmployee(t *testing.T) {
	svc := newLoginEnv(t, "password123", false)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "siti", Password: "password123"})

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newLoginEnv(t, "password123", true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
