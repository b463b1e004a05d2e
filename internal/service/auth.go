package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/repository"
	"github.com/momhive/momhive/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const SessionCookieName = "session"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidSession     = errors.New("invalid session")
)

type AuthService struct {
	userRepository repository.UserRepository
	sessionSecret  string
	sessionExpiry  time.Duration
	isProduction   bool
}

func NewAuthService(
	userRepository repository.UserRepository,
	sessionSecret string,
	sessionExpiry time.Duration,
	isProduction bool,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		sessionSecret:  sessionSecret,
		sessionExpiry:  sessionExpiry,
		isProduction:   isProduction,
	}
}

// Signup stores a new user. The row count is untouched when the username exists.
func (s *AuthService) Signup(form *validation.SignupForm) (*model.User, error) {
	err := validation.ValidatePassword(form.Password)
	if err != nil {
		return nil, err
	}

	hash, err := s.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     form.Username,
		Age:          form.Age,
		Gender:       form.Gender,
		Address:      form.Address,
		Married:      form.Married,
		Working:      form.Working,
		Contact:      form.Contact,
		Partner:      form.Partner,
		DOB:          form.DOB,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.userRepository.Create(user)
	if errors.Is(err, repository.ErrUsernameTaken) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrInvalidCredentials)
	}

	return user, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateJWT(username string) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(s.sessionExpiry)

	claims := jwt.MapClaims{
		"username": username,
		"exp":      expiry.Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.sessionSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiry, nil
}

// VerifyJWT returns the username carried by a valid session token
func (s *AuthService) VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidSession
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return "", ErrInvalidSession
	}

	return username, nil
}

// StartSession signs username into the session cookie
func (s *AuthService) StartSession(w http.ResponseWriter, username string) error {
	token, expiry, err := s.GenerateJWT(username)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *AuthService) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
