package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/mocks"
	"restaurant-pos/pos-svc/internal/service"
	"restaurant-pos/pos-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuth(t *testing.T, staff *mocks.StaffRepository) (*service.AuthService, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := storage.NewRedisSessionStore(client, time.Hour)

	return service.NewAuthService(staff, sessions), mr
}

func TestLoginSuccess(t *testing.T) {
	hash, err := service.HashPIN("1234")
	assert.NoError(t, err)

	staff := mocks.NewStaffRepository(t)
	staff.On("ListActiveStaff").Return([]domain.Staff{
		{ID: 1, Name: "Admin User", Role: "admin", PINHash: hash,
			Permissions: map[string]bool{"pos": true, "staff": true}},
	}, nil)
	staff.On("TouchLastLogin", 1).Return(nil)

	svc, mr := setupAuth(t, staff)

	session, err := svc.Login(context.Background(), "1234")

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, 1, session.StaffID)
	assert.Equal(t, "Admin User", session.Name)
	assert.True(t, session.Permissions["staff"])
	assert.True(t, mr.Exists("session:"+session.Token))
}

func TestLoginWrongPIN(t *testing.T) {
	hash, err := service.HashPIN("1234")
	assert.NoError(t, err)

	staff := mocks.NewStaffRepository(t)
	staff.On("ListActiveStaff").Return([]domain.Staff{
		{ID: 1, Name: "Admin User", PINHash: hash},
	}, nil)

	svc, _ := setupAuth(t, staff)

	_, err = svc.Login(context.Background(), "9999")
	assert.ErrorIs(t, err, service.ErrInvalidPIN)
}

func TestLoginBadFormat(t *testing.T) {
	staff := mocks.NewStaffRepository(t)
	svc, _ := setupAuth(t, staff)

	for _, pin := range []string{"", "12", "1234567", "12ab"} {
		_, err := svc.Login(context.Background(), pin)
		assert.ErrorIs(t, err, service.ErrInvalidPIN)
	}
	staff.AssertNotCalled(t, "ListActiveStaff")
}

func TestAuthenticateAndLogout(t *testing.T) {
	hash, err := service.HashPIN("1234")
	assert.NoError(t, err)

	staff := mocks.NewStaffRepository(t)
	staff.On("ListActiveStaff").Return([]domain.Staff{
		{ID: 1, Name: "Admin User", PINHash: hash},
	}, nil)
	staff.On("TouchLastLogin", 1).Return(nil)

	svc, _ := setupAuth(t, staff)

	session, err := svc.Login(context.Background(), "1234")
	assert.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), session.Token)
	assert.NoError(t, err)
	assert.Equal(t, session.StaffID, got.StaffID)

	assert.NoError(t, svc.Logout(context.Background(), session.Token))

	_, err = svc.Authenticate(context.Background(), session.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	hash, err := service.HashPIN("1234")
	assert.NoError(t, err)

	staff := mocks.NewStaffRepository(t)
	staff.On("ListActiveStaff").Return([]domain.Staff{
		{ID: 1, Name: "Admin User", PINHash: hash},
	}, nil)
	staff.On("TouchLastLogin", 1).Return(nil)

	svc, mr := setupAuth(t, staff)

	session, err := svc.Login(context.Background(), "1234")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = svc.Authenticate(context.Background(), session.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestCreateStaffRejectsBadPIN(t *testing.T) {
	staff := mocks.NewStaffRepository(t)
	svc, _ := setupAuth(t, staff)

	err := svc.CreateStaff(&domain.Staff{Name: "New Hire"}, "12")
	assert.ErrorIs(t, err, service.ErrBadPINFormat)
	staff.AssertNotCalled(t, "CreateStaff", mock.Anything, mock.Anything)
}

func TestResetPINUnknownStaff(t *testing.T) {
	staff := mocks.NewStaffRepository(t)
	staff.On("ResetPIN", 42, mock.AnythingOfType("string")).Return(int64(0), nil)

	svc, _ := setupAuth(t, staff)

	err := svc.ResetPIN(42, "5678")
	assert.ErrorIs(t, err, service.ErrStaffNotFound)
}
