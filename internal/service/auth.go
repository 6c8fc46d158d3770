package service

import (
	"context"
	"errors"
	"time"

	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/model"
)

var (
	ErrKeyRequired = errors.New("key is required")
	ErrInvalidKey  = errors.New("invalid key")
)

// operatorSubject is the token subject; there is a single local operator.
const operatorSubject = "operator"

// AuthService exchanges the operator key for scoped bearer tokens.
type AuthService struct {
	keyHash   string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService hashes adminKey once so it is never kept in memory in
// plain form.
func NewAuthService(adminKey, secret string, expiry time.Duration) (*AuthService, error) {
	if adminKey == "" {
		return nil, ErrKeyRequired
	}

	hash, err := crypto.HashKey(adminKey)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		keyHash:   hash,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}, nil
}

// IssueToken returns a token allowed to change preferences.
func (s *AuthService) IssueToken(ctx context.Context, req model.TokenRequest) (model.TokenResponse, error) {
	if req.Key == "" {
		return model.TokenResponse{}, ErrKeyRequired
	}

	match, err := crypto.VerifyKey(req.Key, s.keyHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidKey
	}

	expiresAt := time.Now().Add(s.jwtExpiry).UTC()
	token, err := crypto.GenerateToken(operatorSubject, crypto.ScopePreferences, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
