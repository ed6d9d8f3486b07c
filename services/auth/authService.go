package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"port-pass/constants"
	staffModel "port-pass/models/staff"
	"port-pass/services/credential"
	"port-pass/services/storage"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials covers unknown usernames, wrong passwords and inactive
// accounts alike, so a caller cannot enumerate valid usernames.
var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTTL = 24 * time.Hour

// Service authenticates staff against the entity store and issues JWTs for the
// request handlers to carry. It has no HTTP surface of its own.
type Service struct {
	store       storage.Storage
	credentials *credential.Service
}

func NewAuthService(store storage.Storage, credentials *credential.Service) *Service {
	return &Service{store: store, credentials: credentials}
}

func signingSecret() []byte {
	secret := os.Getenv(constants.EnvJWTSecret)
	if secret == "" {
		secret = constants.DevJWTSecret
	}
	return []byte(secret)
}

// Login verifies an active staff account and returns a signed token plus the
// staff record. The plaintext password is verified and discarded.
func (s *Service) Login(username, password string) (string, *staffModel.Staff, error) {
	staff, err := s.store.GetStaffByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !staff.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if !s.credentials.Verify(password, staff.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	nowTime := time.Now()
	claims := jwt.MapClaims{
		constants.ClaimSubject:  staff.ID,
		constants.ClaimUsername: staff.Username,
		constants.ClaimIsAdmin:  staff.IsAdmin,
		"iat":                   nowTime.Unix(),
		"exp":                   nowTime.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingSecret())
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, staff, nil
}

// ParseToken validates a token issued by Login and returns its claims.
func (s *Service) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
