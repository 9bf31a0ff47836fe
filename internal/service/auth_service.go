// Package service holds the business rules behind each API operation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"careerflow/internal/config"
	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/observability"
	"careerflow/internal/repository"
	"careerflow/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer      = "careerflow-api"
	tokenAudience    = "careerflow-client"
	revokedKeyPrefix = "blacklist:"
)

var errTokenFailed = models.NewUnauthorizedError("Not authorized, token failed")

// AuthService handles signup, login and identity tokens.
type AuthService struct {
	users  repository.UserRepository
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type tokenClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthService builds an AuthService. rdb may be nil, in which case logout does not revoke tokens.
func NewAuthService(users repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		rdb:    rdb,
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.JWTTTLHours) * time.Hour,
		now:    time.Now,
	}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (user *models.User, err error) {
	defer func() { observability.AuthEvents.WithLabelValues("signup", observability.Outcome(err)).Inc() }()

	name := strings.TrimSpace(in.Name)
	email := validation.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("Please provide all values")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, models.NewValidationError("role must be one of: recruiter, user")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user = &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login does not reveal whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (res *LoginResult, err error) {
	defer func() { observability.AuthEvents.WithLabelValues("login", observability.Outcome(err)).Inc() }()

	email := validation.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, models.NewValidationError("Please provide email and password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

// IssueToken signs an HS256 token carrying the user id (sub) and role.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}
	now := s.now()
	claims := tokenClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) parse(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errTokenFailed
	}
	return claims, nil
}

// ParseToken verifies the token and resolves the caller's identity. Revoked tokens are rejected.
func (s *AuthService) ParseToken(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.parse(token)
	if err != nil {
		return models.Identity{}, err
	}
	uid, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || uid == 0 {
		return models.Identity{}, errTokenFailed
	}
	if !claims.Role.Valid() {
		return models.Identity{}, errTokenFailed
	}

	if s.rdb != nil && claims.ID != "" {
		n, err := s.rdb.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
		switch {
		case err != nil:
			middleware.Logger.WarnContext(ctx, "token revocation check failed", slog.String("error", err.Error()))
		case n > 0:
			return models.Identity{}, models.NewUnauthorizedError("Token has been revoked")
		}
	}

	return models.Identity{UserID: uint(uid), Role: claims.Role}, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string) (err error) {
	defer func() { observability.AuthEvents.WithLabelValues("logout", observability.Outcome(err)).Inc() }()

	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if s.rdb == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err(); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
