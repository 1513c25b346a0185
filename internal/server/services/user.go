// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login, and issues session
// tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finledger/finledger/internal/common"
	"github.com/finledger/finledger/internal/server/auth"
	"github.com/finledger/finledger/internal/server/config"
	"github.com/finledger/finledger/internal/server/models"
	"github.com/finledger/finledger/internal/server/repositories/repomanager"
)

// dummyPasswordHash is verified against when the email is unknown, so the
// unknown-user and wrong-password paths cost the same. It is a hash of
// nothing any caller can know; it never matches.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// UserService provides authentication-related operations:
//   - Register: create users
//   - Login: verify credentials and mint a session token
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories, the password
// hasher, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register hashes the password and persists a new credential record.
// A taken email yields common.ErrEmailAlreadyExists; the uniqueness index
// in the store is the authority, so concurrent duplicate registrations
// resolve to exactly one winner. No token is issued; the caller logs in
// afterwards.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.PublicUser, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyExists) {
			return nil, common.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u.Public(), nil
}

// Login verifies the credentials and, on success, returns a signed session
// token along with the public user view. Unknown email and wrong password
// both collapse to common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn the same bcrypt work as the found path.
			s.hasher.Verify(password, dummyPasswordHash)
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Username, user.Role, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user.Public(), nil
}
