package services

import (
	"errors"
	"regexp"

	"authboard/app/apperr"
	jwtutil "authboard/app/jwt"
	"authboard/app/models"
	"authboard/app/password"
	"authboard/app/repo"

	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// AuthService orchestrates registration, login and session lookup over the
// credential store, the password hasher and the token signer.
type AuthService struct {
	users  *repo.UserRepository
	signer *jwtutil.Signer
}

func NewAuthService(users *repo.UserRepository, signer *jwtutil.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// AuthResult carries a freshly issued token plus the user it identifies.
type AuthResult struct {
	Token   string
	User    *models.User
	Profile *models.UserProfile
}

func (s *AuthService) Register(username, email, plainPassword string) (*AuthResult, error) {
	if username == "" || email == "" || plainPassword == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Username, email and password are required")
	}
	if len(plainPassword) < 6 {
		return nil, apperr.New(apperr.KindBadRequest, "Password must be at least 6 characters long")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.New(apperr.KindBadRequest, "Invalid email format")
	}

	// Username is checked before email: if both collide, the conflict
	// reports the username.
	if count, err := s.users.CountByUsername(username); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "checking username", err)
	} else if count > 0 {
		return nil, apperr.New(apperr.KindConflict, "Username already exists")
	}
	if count, err := s.users.CountByEmail(email); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "checking email", err)
	} else if count > 0 {
		return nil, apperr.New(apperr.KindConflict, "Email already exists")
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "hashing password", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash, IsActive: true}
	profile := &models.UserProfile{}
	if err := s.users.CreateWithProfile(user, profile); err != nil {
		// A concurrent registration can slip past the checks above; the
		// store's uniqueness constraint catches it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.KindConflict, "Username already exists")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "creating user", err)
	}

	token, err := s.signer.Sign(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "signing token", err)
	}
	return &AuthResult{Token: token, User: user, Profile: profile}, nil
}

func (s *AuthService) Login(username, plainPassword string) (*AuthResult, error) {
	if username == "" || plainPassword == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Username and password are required")
	}

	// Unknown username and wrong password produce the identical response so
	// neither leaks which check failed.
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "Invalid username or password")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "looking up user", err)
	}
	ok, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "verifying password", err)
	}
	if !ok {
		return nil, apperr.New(apperr.KindUnauthorized, "Invalid username or password")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.KindUnauthorized, "Account is deactivated")
	}

	token, err := s.signer.Sign(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "signing token", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// CurrentUser resolves the identity embedded in a verified token. Tokens are
// not invalidated on deletion, so the user may be gone by now.
func (s *AuthService) CurrentUser(userID string) (*models.User, *models.UserProfile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, nil, apperr.Wrap(apperr.KindInternal, "looking up user", err)
	}
	profile, err := s.users.ProfileByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperr.Wrap(apperr.KindInternal, "looking up profile", err)
	}
	return user, profile, nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing users", err)
	}
	return users, nil
}

// DeleteUser removes the user and, by ownership, every post they authored.
func (s *AuthService) DeleteUser(id string) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "User not found")
		}
		return apperr.Wrap(apperr.KindInternal, "deleting user", err)
	}
	return nil
}

func (s *AuthService) DeactivateUser(id string) error {
	if err := s.users.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "User not found")
		}
		return apperr.Wrap(apperr.KindInternal, "deactivating user", err)
	}
	return nil
}
