package shop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"marketly/domain"
	"marketly/store"
	"marketly/util"
)

const (
	SessionKey     = "session"
	CredentialsKey = "registeredUsers"

	sessionVersion     = 1
	credentialsVersion = 1
)

// BuiltinCredentials are always available for login.
var BuiltinCredentials = []domain.Credential{
	{Email: "manager@test.com", Password: "manager123", FullName: "Test Manager", CredentialTag: "12345678"},
	{Email: "staff@test.com", Password: "staff123", FullName: "Test Staff", CredentialTag: "12345"},
	{Email: "customer@test.com", Password: "customer123", FullName: "Test Customer"},
}

// Auth resolves the current session and its role.
type Auth struct {
	mu         sync.RWMutex
	session    *domain.Session
	registered []domain.Credential
	builtin    []domain.Credential

	sessions    *store.Collection[*domain.Session]
	credentials *store.Collection[[]domain.Credential]

	hooks  []func(context.Context) error
	newID  func() string
	logger *slog.Logger
}

// NewAuth restores the persisted session and registered credentials.
func NewAuth(ctx context.Context, p *store.Persister, logger *slog.Logger) *Auth {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Auth{
		builtin: BuiltinCredentials,
		sessions: store.NewCollection(p, SessionKey, sessionVersion,
			func() *domain.Session { return nil },
			func(s *domain.Session) error {
				if s != nil && (s.Identity == "" || s.Email == "") {
					return fmt.Errorf("session without identity or email")
				}
				return nil
			}),
		credentials: store.NewCollection(p, CredentialsKey, credentialsVersion,
			func() []domain.Credential { return []domain.Credential{} },
			validateCredentials),
		newID:  util.NewSessionID,
		logger: logger.With("store", "session"),
	}
	a.session = a.sessions.Load(ctx)
	a.registered = a.credentials.Load(ctx)
	return a
}

func validateCredentials(cs []domain.Credential) error {
	for i, c := range cs {
		if c.Email == "" {
			return fmt.Errorf("credential without email")
		}
		for _, other := range cs[:i] {
			if other.HasEmail(c.Email) {
				return fmt.Errorf("duplicate credential %s", c.Email)
			}
		}
	}
	return nil
}

// AddLogoutHook registers fn to run when the session ends.
func (a *Auth) AddLogoutHook(fn func(context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

func (a *Auth) allCredentials() []domain.Credential {
	all := make([]domain.Credential, 0, len(a.builtin)+len(a.registered))
	all = append(all, a.builtin...)
	return append(all, a.registered...)
}

// establish persists a session for c and makes it current. Callers hold a.mu.
func (a *Auth) establish(ctx context.Context, c domain.Credential) error {
	s := &domain.Session{
		Identity:      a.newID(),
		Email:         c.Email,
		FullName:      c.FullName,
		CredentialTag: c.CredentialTag,
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return err
	}
	a.session = s
	a.logger.Info("session established", "identity", s.Identity, "role", s.Role())
	return nil
}

// Login matches email (case-insensitive) and password against the known
// credentials and establishes a session. Logging in as someone else first ends
// the current session, running the logout hooks.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	a.mu.RLock()
	var match *domain.Credential
	for _, c := range a.allCredentials() {
		if c.Matches(email, password) {
			match = &c
			break
		}
	}
	prev := a.session
	a.mu.RUnlock()

	if match == nil {
		a.logger.Debug("login rejected", "email", email)
		return domain.NewInvalidCredentialsError(email)
	}
	if prev != nil && !match.HasEmail(prev.Email) {
		if err := a.Logout(ctx); err != nil {
			return err
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.establish(ctx, *match)
}

// Signup registers a new credential and logs it in, ending any current
// session first. The tag is optional.
func (a *Auth) Signup(ctx context.Context, email, password, fullName, credentialTag string) error {
	a.mu.Lock()
	for _, c := range a.allCredentials() {
		if c.HasEmail(email) {
			a.mu.Unlock()
			return domain.NewEmailTakenError(email)
		}
	}
	c := domain.Credential{Email: email, Password: password, FullName: fullName, CredentialTag: credentialTag}
	next := make([]domain.Credential, 0, len(a.registered)+1)
	next = append(next, a.registered...)
	next = append(next, c)
	if err := a.credentials.Save(ctx, next); err != nil {
		a.mu.Unlock()
		return err
	}
	a.registered = next
	prev := a.session
	a.mu.Unlock()
	a.logger.Info("credential registered", "email", email)

	if prev != nil {
		if err := a.Logout(ctx); err != nil {
			return err
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.establish(ctx, c)
}

// Logout ends the session and runs the logout hooks. It is safe to call
// without a session.
func (a *Auth) Logout(ctx context.Context) error {
	a.mu.Lock()
	if err := a.sessions.Clear(ctx); err != nil {
		a.mu.Unlock()
		return err
	}
	prev := a.session
	a.session = nil
	hooks := append([]func(context.Context) error(nil), a.hooks...)
	a.mu.Unlock()

	if prev != nil {
		a.logger.Info("session ended", "identity", prev.Identity)
	}
	var errs []error
	for _, fn := range hooks {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Current returns a copy of the session, if any.
func (a *Auth) Current() (domain.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return domain.Session{}, false
	}
	return *a.session, true
}

// HasSession reports whether someone is logged in.
func (a *Auth) HasSession() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session != nil
}

func (a *Auth) role() (domain.Role, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return "", false
	}
	return a.session.Role(), true
}

// IsManager is true only for a manager session.
func (a *Auth) IsManager() bool {
	r, ok := a.role()
	return ok && r == domain.RoleManager
}

// IsStaff is true only for a staff session; managers are not staff here.
func (a *Auth) IsStaff() bool {
	r, ok := a.role()
	return ok && r == domain.RoleStaff
}

// IsCustomer is true for any other session.
func (a *Auth) IsCustomer() bool {
	r, ok := a.role()
	return ok && r == domain.RoleCustomer
}

// Access is the guard input for the current visitor.
func (a *Auth) Access() domain.Access {
	return domain.Access{
		HasSession: a.HasSession(),
		IsManager:  a.IsManager(),
		IsStaff:    a.IsStaff(),
	}
}
