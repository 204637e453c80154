package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

// RoleInternalService is the role claim carried by minted tokens.
const RoleInternalService = "internal_service"

// ErrAPIKeyMismatch is returned when the supplied API key does not match
// the stored credential.
var ErrAPIKeyMismatch = errors.New("api key inválida")

// AuthClaims are the claims carried by an internal service token
type AuthClaims struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// InterfaceAuthService mints and verifies internal service tokens and
// checks the API key that guards the token endpoint.
type InterfaceAuthService interface {
	GenerateToken(uid string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*AuthClaims, error)
	VerifyAPIKey(uid, apiKey string) error
	EnsureServiceAccount(uid, apiKey string) error
}

// AuthService provides token minting and verification backed by HMAC JWTs
type AuthService struct {
	DB        *gorm.DB
	secretKey string
	issuer    string
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, db *gorm.DB) InterfaceAuthService {
	return &AuthService{
		DB:        db,
		secretKey: cfg.JWTSecretKey,
		issuer:    "cnk-ceneka",
	}
}

// GenerateToken mints a 24h token for an internal caller
func (s *AuthService) GenerateToken(uid string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UID:  uid,
		Role: RoleInternalService,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   uid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken verifies signature and expiry of a bearer token
func (s *AuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims returns the verified principal of a token
func (s *AuthService) ExtractClaims(tokenString string) (*AuthClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// VerifyAPIKey checks the supplied API key against the bcrypt hash stored
// for the service account identified by uid.
func (s *AuthService) VerifyAPIKey(uid, apiKey string) error {
	var account models.ServiceAccount
	if err := s.DB.Where("uid = ?", uid).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAPIKeyMismatch
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.APIKeyHash), []byte(apiKey)); err != nil {
		return ErrAPIKeyMismatch
	}
	return nil
}

// EnsureServiceAccount seeds a service account when none exists for the
// uid, hashing the configured API key. Called once at startup.
func (s *AuthService) EnsureServiceAccount(uid, apiKey string) error {
	if uid == "" || apiKey == "" {
		return nil
	}

	var count int64
	if err := s.DB.Model(&models.ServiceAccount{}).Where("uid = ?", uid).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account := models.ServiceAccount{
		UID:        uid,
		APIKeyHash: string(hash),
		Role:       RoleInternalService,
	}
	return s.DB.Create(&account).Error
}
