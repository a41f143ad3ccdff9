package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"folio/models"
	"folio/store"
)

// DefaultPassword is the out-of-the-box admin password. It keeps working
// until the admin changes it.
const DefaultPassword = "admin123"

// MinPasswordLength applies to new passwords on change and reset.
const MinPasswordLength = 6

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrNotAuthorized    = errors.New("email not authorized for admin access")
	ErrInvalidCode      = errors.New("invalid or expired code")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service wraps the credential store and the code service. The authenticated
// flag itself lives in the browser cookie session, managed by the admin
// module; this service only decides whether a transition is allowed.
type Service struct {
	kv              store.KV
	codes           *CodeService
	authorizedEmail string
}

// NewService builds the authentication service. authorizedEmail is the single
// allow-listed identity permitted to request login codes.
func NewService(kv store.KV, codes *CodeService, authorizedEmail string) *Service {
	return &Service{
		kv:              kv,
		codes:           codes,
		authorizedEmail: NormalizeEmail(authorizedEmail),
	}
}

// AdminEmail returns the recorded admin identity, falling back to the
// authorized email when none has been stored yet.
func (s *Service) AdminEmail() string {
	v, ok, err := s.kv.Get(models.KeyAdminEmail)
	if err != nil || !ok || v == "" {
		return s.authorizedEmail
	}
	return v
}

// checkPassword compares the candidate against the stored credential. Until
// the admin sets a password, the default constant is accepted.
func (s *Service) checkPassword(candidate string) bool {
	hash, ok, err := s.kv.Get(models.KeyAdminPassword)
	if err != nil || !ok || hash == "" {
		return candidate == DefaultPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

func (s *Service) setPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.kv.Put(models.KeyAdminPassword, string(hash))
}

// Login validates a password login attempt.
func (s *Service) Login(password string) error {
	if !s.checkPassword(password) {
		return ErrInvalidPassword
	}
	return nil
}

// IssueCode validates the email and, for the authorized identity, issues a
// fresh login code. The code is returned for demo display; unauthorized or
// malformed emails never get a code.
func (s *Service) IssueCode(email string) (string, error) {
	normalized := NormalizeEmail(email)
	if !emailPattern.MatchString(normalized) {
		return "", ErrInvalidEmail
	}
	if normalized != s.authorizedEmail {
		return "", ErrNotAuthorized
	}
	return s.codes.Issue(normalized)
}

// LoginWithCode validates a code login attempt and, on success, records the
// email as the admin identity. The code is consumed.
func (s *Service) LoginWithCode(email, code string) error {
	if !s.codes.Verify(email, code) {
		return ErrInvalidCode
	}
	return s.kv.Put(models.KeyAdminEmail, NormalizeEmail(email))
}

// ResetPassword sets a new password after a successful code check. It does
// not authenticate the session.
func (s *Service) ResetPassword(email, code, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !s.codes.Verify(email, code) {
		return ErrInvalidCode
	}
	if err := s.setPassword(newPassword); err != nil {
		return err
	}
	return s.kv.Put(models.KeyAdminEmail, NormalizeEmail(email))
}

// ChangePassword replaces the password after validating the current one.
func (s *Service) ChangePassword(current, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !s.checkPassword(current) {
		return ErrInvalidPassword
	}
	return s.setPassword(newPassword)
}
