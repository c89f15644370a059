package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskmate/daily-task-backend/internal/constants"
	"github.com/taskmate/daily-task-backend/internal/mailer"
	"github.com/taskmate/daily-task-backend/internal/models"
	"github.com/taskmate/daily-task-backend/internal/repository"
	"github.com/taskmate/daily-task-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidOTP           = errors.New("invalid or expired OTP")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToSendMail     = errors.New("failed to send reset email")
)

// User creation dates follow the original deployment's timezone.
var ist = time.FixedZone("IST", 5*3600+30*60)

// AuthService handles registration, login, and the password-reset flow.
type AuthService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	mail     mailer.Mailer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, otpRepo repository.OTPRepository, mail mailer.Mailer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mail:     mail,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user. Email uniqueness is ultimately enforced by
// the store's unique index; the lookup here only gives a friendlier error
// for the common case.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedDate:  time.Now().In(ist).Format("2006-01-02"),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RequestPasswordReset issues a fresh one-time code for the email and mails
// it. Any prior code for the same email is superseded.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = NormalizeEmail(email)

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.otpRepo.Put(email, code); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.mail.SendOTP(email, code); err != nil {
		return ErrFailedToSendMail
	}

	return nil
}

// ResetPassword verifies the one-time code and replaces the user's password.
// The code is consumed on success.
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	email = NormalizeEmail(email)

	if _, err := s.otpRepo.Find(email, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOTP
		}
		return fmt.Errorf("failed to check OTP: %w", err)
	}

	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	if err := s.userRepo.UpdatePassword(email, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.otpRepo.Delete(email, code); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}

	return nil
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
