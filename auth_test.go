package kuku

import (
	"errors"
	"testing"
)

func TestAuthService_Login(t *testing.T) {
	repo := NewUsersRepo(newTestStore(t))
	seedUser(t, repo, "bob", M(100))
	auth := NewAuthService(repo, nil)

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"ok", "bob", "bobpass", nil},
		{"wrong password", "bob", "nope", ErrAuth},
		{"unknown user", "eve", "whatever", ErrNotFound},
		{"empty password", "bob", "", ErrAuth},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := &Session{}
			u, err := auth.Login(session, tc.username, tc.password)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Login() = %v, want %v", err, tc.wantErr)
				}
				if session.Current() != nil {
					t.Error("failed login left a user in the session")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() = %v", err)
			}
			if u.Username != tc.username {
				t.Errorf("logged in as %q, want %q", u.Username, tc.username)
			}
			if session.Current() == nil || session.Current().Username != tc.username {
				t.Error("session does not hold the logged-in user")
			}
		})
	}
}

func TestAuthService_Gates(t *testing.T) {
	repo := NewUsersRepo(newTestStore(t))
	seedUser(t, repo, "bob", M(100))
	admin := User{Username: "root", Password: "rootpass", Admin: true}
	if err := repo.Upsert(admin); err != nil {
		t.Fatal(err)
	}
	auth := NewAuthService(repo, nil)

	session := &Session{}
	if _, err := auth.RequireLogin(session); !errors.Is(err, ErrAuth) {
		t.Errorf("RequireLogin anonymous = %v, want ErrAuth", err)
	}
	if _, err := auth.RequireAdmin(session); !errors.Is(err, ErrAuth) {
		t.Errorf("RequireAdmin anonymous = %v, want ErrAuth", err)
	}

	if _, err := auth.Login(session, "bob", "bobpass"); err != nil {
		t.Fatalf("Login(bob) = %v", err)
	}
	if _, err := auth.RequireLogin(session); err != nil {
		t.Errorf("RequireLogin logged-in = %v", err)
	}
	if _, err := auth.RequireAdmin(session); !errors.Is(err, ErrAuth) {
		t.Errorf("RequireAdmin non-admin = %v, want ErrAuth", err)
	}

	if _, err := auth.Login(session, "root", "rootpass"); err != nil {
		t.Fatalf("Login(root) = %v", err)
	}
	if u, err := auth.RequireAdmin(session); err != nil || !u.Admin {
		t.Errorf("RequireAdmin admin = (%+v, %v)", u, err)
	}

	auth.Logout(session)
	if session.Current() != nil {
		t.Error("Logout left a user in the session")
	}
	if _, err := auth.RequireLogin(session); !errors.Is(err, ErrAuth) {
		t.Errorf("RequireLogin after logout = %v, want ErrAuth", err)
	}
}

func TestSession_Update(t *testing.T) {
	session := &Session{}
	session.Update(User{Username: "bob", Balance: M(1)})
	if session.Current() != nil {
		t.Error("Update on anonymous session should be a no-op")
	}

	session.current = &User{Username: "bob", Balance: M(100)}
	session.Update(User{Username: "eve", Balance: M(999)})
	if !session.Current().Balance.Equal(M(100)) {
		t.Error("Update with another user changed the session")
	}
	session.Update(User{Username: "bob", Balance: M(42)})
	if !session.Current().Balance.Equal(M(42)) {
		t.Error("Update with the session user did not refresh it")
	}
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() = %v", err)
	}
	v := BcryptVerifier{}
	if !v.Verify(hash, "s3cret") {
		t.Error("Verify rejected the right password")
	}
	if v.Verify(hash, "wrong") {
		t.Error("Verify accepted a wrong password")
	}

	// Login through a repo storing hashes.
	repo := NewUsersRepo(newTestStore(t))
	if err := repo.Upsert(User{Username: "bob", Password: hash}); err != nil {
		t.Fatal(err)
	}
	auth := NewAuthService(repo, BcryptVerifier{})
	session := &Session{}
	if _, err := auth.Login(session, "bob", "s3cret"); err != nil {
		t.Errorf("Login with hashed credential = %v", err)
	}
}
