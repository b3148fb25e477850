package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN      = errors.New("invalid PIN")
	ErrBadPINFormat    = errors.New("PIN must be 4 to 6 digits")
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrSessionNotFound = errors.New("session not found or expired")
)

var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

type AuthService struct {
	staff    StaffRepository
	sessions SessionStore
}

func NewAuthService(staff StaffRepository, sessions SessionStore) *AuthService {
	return &AuthService{staff: staff, sessions: sessions}
}

// Login matches the PIN against every active staff member. PINs are stored
// as bcrypt hashes, so there is no lookup by PIN.
func (s *AuthService) Login(ctx context.Context, pin string) (*domain.Session, error) {
	if !pinPattern.MatchString(pin) {
		return nil, ErrInvalidPIN
	}

	staff, err := s.staff.ListActiveStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	for _, member := range staff {
		if bcrypt.CompareHashAndPassword([]byte(member.PINHash), []byte(pin)) != nil {
			continue
		}

		session := &domain.Session{
			Token:       uuid.NewString(),
			StaffID:     member.ID,
			Name:        member.Name,
			Role:        member.Role,
			Permissions: member.Permissions,
		}
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		_ = s.staff.TouchLastLogin(member.ID)
		return session, nil
	}

	return nil, ErrInvalidPIN
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) ListStaff() ([]domain.Staff, error) {
	return s.staff.ListStaff()
}

func (s *AuthService) CreateStaff(staff *domain.Staff, pin string) error {
	hash, err := HashPIN(pin)
	if err != nil {
		return err
	}
	return s.staff.CreateStaff(staff, hash)
}

func (s *AuthService) UpdateStaff(staff *domain.Staff) error {
	return s.staff.UpdateStaff(staff)
}

func (s *AuthService) ResetPIN(id int, pin string) error {
	hash, err := HashPIN(pin)
	if err != nil {
		return err
	}
	affected, err := s.staff.ResetPIN(id, hash)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func (s *AuthService) RestaurantInfo() (*domain.RestaurantInfo, error) {
	return s.staff.GetRestaurantInfo()
}

func (s *AuthService) UpdateRestaurantInfo(info *domain.RestaurantInfo) error {
	return s.staff.UpdateRestaurantInfo(info)
}

func HashPIN(pin string) (string, error) {
	if !pinPattern.MatchString(pin) {
		return "", ErrBadPINFormat
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
