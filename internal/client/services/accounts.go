package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobhunt/internal/auth"
	"github.com/dmitrijs2005/jobhunt/internal/client/config"
	"github.com/dmitrijs2005/jobhunt/internal/client/models"
	"github.com/dmitrijs2005/jobhunt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobhunt/internal/common"
	"github.com/dmitrijs2005/jobhunt/internal/cryptox"
	"github.com/dmitrijs2005/jobhunt/internal/idgen"
	"github.com/dmitrijs2005/jobhunt/internal/logging"
)

// AccountService owns user records and the current session.
//
// Contract:
//   - Load: restore users and session from storage; unreadable or bad
//     records degrade to an empty state and are only logged.
//   - Register: create an account and sign it in; common.ErrorValidation or
//     common.ErrDuplicateIdentifier on rejection.
//   - Login: match identifier (email or phone) and password;
//     common.ErrInvalidCredentials on any mismatch.
//   - Logout: drop the session; always succeeds.
//
// A failed write leaves the in-memory state unchanged.
type AccountService interface {
	Load(ctx context.Context) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, identifier string, password []byte) (*models.User, error)
	Logout(ctx context.Context)
	IsAuthenticated() bool
	CurrentUser() *models.User
	Users() []models.User
}

// AccountOptions tune an account store. Zero values pick the defaults.
type AccountOptions struct {
	// PasswordScheme is config.SchemeArgon2id (default) or
	// config.SchemePlaintext for records readable by older clients.
	PasswordScheme string
	// SessionSecret signs session tokens. When empty a random key is kept
	// in storage under KeySessionKey.
	SessionSecret []byte
	// SessionTTL bounds a session's lifetime; zero means until logout.
	SessionTTL time.Duration
	Now        func() time.Time
	Logger     logging.Logger
}

type accountStore struct {
	mu      sync.Mutex
	repo    metadata.Repository
	log     logging.Logger
	ids     *idgen.Generator
	now     func() time.Time
	scheme  string
	secret  []byte
	ttl     time.Duration
	users   []models.User
	current *models.User
}

// NewAccountService constructs an AccountService persisting through repo.
// Call Load before use.
func NewAccountService(repo metadata.Repository, opts AccountOptions) AccountService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.PasswordScheme == "" {
		opts.PasswordScheme = config.SchemeArgon2id
	}
	return &accountStore{
		repo:   repo,
		log:    opts.Logger.With("store", "accounts"),
		ids:    idgen.New(opts.Now),
		now:    opts.Now,
		scheme: opts.PasswordScheme,
		secret: opts.SessionSecret,
		ttl:    opts.SessionTTL,
	}
}

func (s *accountStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = s.readUsers(ctx)
	for _, u := range s.users {
		s.ids.Observe(u.ID)
	}

	if len(s.secret) == 0 {
		s.secret = s.loadOrCreateSecret(ctx)
	}

	s.current = s.readSession(ctx)
	return nil
}

func (s *accountStore) readUsers(ctx context.Context) []models.User {
	raw, err := s.repo.Get(ctx, KeyUsers)
	if err != nil {
		s.log.Warn(ctx, "reading users failed, starting empty", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn(ctx, "users record is malformed, starting empty", "error", err)
		return nil
	}
	return users
}

// loadOrCreateSecret returns the stored signing key, creating it when absent.
// Storage failures fall back to a key that lives only for this process, so
// sessions opened now will not survive a restart.
func (s *accountStore) loadOrCreateSecret(ctx context.Context) []byte {
	secret, err := s.repo.Get(ctx, KeySessionKey)
	if err != nil {
		s.log.Warn(ctx, "reading session key failed, using a process-local key", "error", err)
		return common.GenerateRandByteArray(32)
	}
	if len(secret) >= 32 {
		return secret
	}

	secret = common.GenerateRandByteArray(32)
	if err := s.repo.Set(ctx, KeySessionKey, secret); err != nil {
		s.log.Warn(ctx, "storing session key failed, using a process-local key", "error", err)
	}
	return secret
}

func (s *accountStore) readSession(ctx context.Context) *models.User {
	raw, err := s.repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		s.log.Warn(ctx, "reading session failed", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	claims, err := auth.ParseToken(string(raw), s.secret, s.now())
	if err != nil {
		s.log.Info(ctx, "discarding stored session", "reason", err)
		s.dropSessionRecord(ctx)
		return nil
	}

	i := slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == claims.UserID })
	if i < 0 {
		s.log.Info(ctx, "discarding session of unknown user", "user_id", claims.UserID)
		s.dropSessionRecord(ctx)
		return nil
	}
	u := s.users[i]
	return &u
}

func (s *accountStore) dropSessionRecord(ctx context.Context) {
	if err := s.repo.Delete(ctx, KeyCurrentUser); err != nil {
		s.log.Warn(ctx, "deleting session record failed", "error", err)
	}
}

func (s *accountStore) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	defer common.WipeByteArray(req.Password)

	if err := models.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if req.Email != "" && u.Email == req.Email {
			return nil, fmt.Errorf("%w: email %s", common.ErrDuplicateIdentifier, req.Email)
		}
		if req.Phone != "" && u.Phone == req.Phone {
			return nil, fmt.Errorf("%w: phone %s", common.ErrDuplicateIdentifier, req.Phone)
		}
	}

	user := models.User{
		ID:        s.nextID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: s.now().UTC(),
	}
	if s.scheme == config.SchemePlaintext {
		user.Password = string(req.Password)
	} else {
		user.PasswordHash = cryptox.HashPassword(req.Password)
	}

	users := append(slices.Clone(s.users), user)
	usersJSON, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("encode users: %w", err)
	}
	token, err := auth.GenerateToken(user.ID, user.Name, s.secret, s.ttl, s.now())
	if err != nil {
		return nil, err
	}

	err = metadata.InTx(ctx, s.repo, func(ctx context.Context, repo metadata.Repository) error {
		if err := repo.Set(ctx, KeyUsers, usersJSON); err != nil {
			return err
		}
		return repo.Set(ctx, KeyCurrentUser, []byte(token))
	})
	if err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}

	s.users = users
	s.current = &user
	s.log.Info(ctx, "account registered", "user_id", user.ID)

	out := user.Public()
	return &out, nil
}

// nextID skips ids already taken, which only happens with clock skew
// between processes sharing the same storage.
func (s *accountStore) nextID() int64 {
	for {
		id := s.ids.Next()
		if !slices.ContainsFunc(s.users, func(u models.User) bool { return u.ID == id }) {
			return id
		}
	}
}

func (s *accountStore) Login(ctx context.Context, identifier string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if !u.MatchesIdentifier(identifier) || !passwordMatches(u, password) {
			continue
		}

		token, err := auth.GenerateToken(u.ID, u.Name, s.secret, s.ttl, s.now())
		if err != nil {
			return nil, err
		}
		if err := s.repo.Set(ctx, KeyCurrentUser, []byte(token)); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}

		s.current = &u
		s.log.Info(ctx, "signed in", "user_id", u.ID)
		out := u.Public()
		return &out, nil
	}

	s.log.Info(ctx, "sign-in rejected")
	return nil, common.ErrInvalidCredentials
}

func passwordMatches(u models.User, password []byte) bool {
	switch {
	case u.PasswordHash != "":
		return cryptox.VerifyPassword(u.PasswordHash, password)
	case u.Password != "":
		return cryptox.EqualPlaintext(u.Password, password)
	default:
		return false
	}
}

func (s *accountStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.repo.Delete(ctx, KeyCurrentUser); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn(ctx, "deleting session record failed", "error", err)
	}
}

func (s *accountStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// CurrentUser returns a copy of the session user without credentials, or nil.
func (s *accountStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := s.current.Public()
	return &u
}

func (s *accountStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Public()
	}
	return out
}
