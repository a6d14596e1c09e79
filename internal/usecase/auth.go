// Package usecase contains the business logic for the booking flow. Each
// use case loads the caller's session, applies the domain rules, and writes
// the updated session back to the store.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/token"
)

// Demo accounts accepted by Login. This is a demo site; the credential list
// is fixed and checked in plain text.
var demoCredentials = map[string]string{
	"demo@skybooker.com":  "demo123",
	"demo@aianalyser.com": "demo123",
	"demo":                "demo",
}

// Guest identity used by GuestLogin.
const (
	guestEmail = "guest@skybooker.com"
	guestName  = "Guest User"
)

// demoUserName is the display name for all demo accounts.
const demoUserName = "Demo User"

// MinPasswordLength is the minimum signup password length.
const MinPasswordLength = 6

// LoginResult is the outcome of a successful login, signup, or guest entry.
type LoginResult struct {
	// Session is the freshly created booking-flow session
	Session *domain.Session

	// Token is the signed session token the client presents on later calls
	Token string
}

// AuthUseCase handles login, signup, guest sessions, and logout.
type AuthUseCase interface {
	// Login checks the credentials and opens a session.
	// Returns domain.ErrInvalidCredentials on a failed attempt.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Signup registers a new account and opens a session.
	Signup(ctx context.Context, name, email, password string) (*LoginResult, error)

	// GuestLogin opens a session for the fixed guest identity.
	GuestLogin(ctx context.Context) (*LoginResult, error)

	// Logout deletes the session. Unknown sessions are not an error.
	Logout(ctx context.Context, sessionID string) error
}

// account is a signed-up user kept in memory for the lifetime of the
// process. The demo has no user database.
type account struct {
	name         string
	passwordHash []byte
}

type authUseCase struct {
	store  session.Store
	tokens *token.Manager
	clock  timeutil.Clock
	log    *logger.Logger

	mu       sync.RWMutex
	accounts map[string]account
}

// NewAuthUseCase creates an AuthUseCase backed by the given session store
// and token manager.
func NewAuthUseCase(store session.Store, tokens *token.Manager, clock timeutil.Clock, log *logger.Logger) AuthUseCase {
	return &authUseCase{
		store:    store,
		tokens:   tokens,
		clock:    clock,
		log:      log,
		accounts: make(map[string]account),
	}
}

// Login implements AuthUseCase.Login.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidRequest)
	}

	name, ok := uc.authenticate(email, password)
	if !ok {
		uc.log.Warn().Str("email", email).Msg("login failed")
		return nil, domain.ErrInvalidCredentials
	}

	return uc.openSession(ctx, domain.User{
		Email:     email,
		Name:      name,
		LoginTime: uc.clock.Now(),
	})
}

// Signup implements AuthUseCase.Signup.
func (uc *authUseCase) Signup(ctx context.Context, name, email, password string) (*LoginResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrInvalidRequest)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidRequest, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	uc.mu.Lock()
	if _, exists := uc.accounts[email]; exists {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: account already exists", domain.ErrInvalidRequest)
	}
	uc.accounts[email] = account{name: name, passwordHash: hash}
	uc.mu.Unlock()

	uc.log.Info().Str("email", email).Msg("account created")

	return uc.openSession(ctx, domain.User{
		Email:     email,
		Name:      name,
		LoginTime: uc.clock.Now(),
	})
}

// GuestLogin implements AuthUseCase.GuestLogin.
func (uc *authUseCase) GuestLogin(ctx context.Context) (*LoginResult, error) {
	return uc.openSession(ctx, domain.User{
		Email:     guestEmail,
		Name:      guestName,
		IsGuest:   true,
		LoginTime: uc.clock.Now(),
	})
}

// Logout implements AuthUseCase.Logout.
func (uc *authUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	uc.log.Info().Str("session_id", sessionID).Msg("logged out")
	return nil
}

// authenticate resolves a credential pair against the demo accounts and the
// in-memory signup registry.
func (uc *authUseCase) authenticate(email, password string) (name string, ok bool) {
	if expected, found := demoCredentials[email]; found && expected == password {
		return demoUserName, true
	}

	uc.mu.RLock()
	acct, found := uc.accounts[email]
	uc.mu.RUnlock()
	if !found {
		return "", false
	}

	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return "", false
	}
	return acct.name, true
}

// openSession creates and stores a new session for the user and issues its
// token.
func (uc *authUseCase) openSession(ctx context.Context, user domain.User) (*LoginResult, error) {
	sess := &domain.Session{
		ID:   uuid.NewString(),
		User: user,
	}

	if err := uc.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	signed, err := uc.tokens.Issue(sess.ID)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("session_id", sess.ID).
		Str("email", user.Email).
		Bool("guest", user.IsGuest).
		Msg("session opened")

	return &LoginResult{Session: sess, Token: signed}, nil
}

var _ AuthUseCase = (*authUseCase)(nil)
