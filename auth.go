package kuku

import "golang.org/x/crypto/bcrypt"

// Session is a single-slot holder for the currently authenticated user.
// It is explicit state passed into the shell rather than a package
// global, so a multi-session reimplementation only needs to create more
// of them.
type Session struct {
	current *User
}

// Current returns the authenticated user, or nil when anonymous.
func (s *Session) Current() *User { return s.current }

// Update refreshes the session copy of the user after a mutation such as
// a balance change. It is a no-op when u is not the logged-in user.
func (s *Session) Update(u User) {
	if s.current != nil && s.current.Username == u.Username {
		s.current = &u
	}
}

// Verifier checks a presented password against the stored credential.
// Isolating the comparison lets the storage scheme change (e.g. to a
// salted hash) without touching the auth contract.
type Verifier interface {
	Verify(stored, presented string) bool
}

// PlainVerifier compares passwords as stored, in clear text. This is the
// historical behaviour of the simulator.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool {
	return stored == presented
}

// BcryptVerifier treats the stored credential as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// HashPassword returns the bcrypt hash of password, for use with
// BcryptVerifier.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// AuthService implements login, logout and the access gates.
type AuthService struct {
	users    *UsersRepo
	verifier Verifier
}

// NewAuthService returns an auth service over the users repository.
// A nil verifier defaults to PlainVerifier.
func NewAuthService(users *UsersRepo, verifier Verifier) *AuthService {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &AuthService{users: users, verifier: verifier}
}

// Login authenticates username/password and stores the user in the
// session. It fails with ErrNotFound for an unknown user and ErrAuth on
// a credential mismatch.
func (a *AuthService) Login(session *Session, username, password string) (User, error) {
	u, err := a.users.Get(username)
	if err != nil {
		return User{}, err
	}
	if !a.verifier.Verify(u.Password, password) {
		return User{}, Authf("invalid credentials")
	}
	session.current = &u
	return u, nil
}

// Logout unconditionally returns the session to the anonymous state.
func (a *AuthService) Logout(session *Session) {
	session.current = nil
}

// RequireLogin returns the current user or fails with ErrAuth.
func (a *AuthService) RequireLogin(session *Session) (User, error) {
	if session.current == nil {
		return User{}, Authf("please login first")
	}
	return *session.current, nil
}

// RequireAdmin returns the current user if it has the admin flag, and
// fails with ErrAuth otherwise.
func (a *AuthService) RequireAdmin(session *Session) (User, error) {
	u, err := a.RequireLogin(session)
	if err != nil {
		return User{}, err
	}
	if !u.Admin {
		return User{}, Authf("admins only")
	}
	return u, nil
}
