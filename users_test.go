package kuku

import (
	"errors"
	"strings"
	"testing"
)

func TestUsersService_Create(t *testing.T) {
	svc := NewUsersService(NewUsersRepo(newTestStore(t)))

	u, err := svc.Create("bob", "pass", "Bob", "Builder", M(1000), false)
	if err != nil {
		t.Fatalf("Create(bob) = %v", err)
	}
	if u.FullName() != "Bob Builder" {
		t.Errorf("FullName() = %q, want %q", u.FullName(), "Bob Builder")
	}

	_, err = svc.Create("bob", "other", "An", "Other", M(50), false)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("duplicate Create = %v, want ErrDomain", err)
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("duplicate Create error = %q", err)
	}
	// The original account is untouched.
	for _, u := range svc.List() {
		if u.Username == "bob" && u.Password != "pass" {
			t.Error("duplicate Create overwrote the existing user")
		}
	}

	// Usernames are case-sensitive: "Bob" is a different user.
	if _, err := svc.Create("Bob", "pass", "Big", "Bob", M(1), false); err != nil {
		t.Errorf("Create(Bob) = %v, want nil", err)
	}
}

func TestUsersService_Delete(t *testing.T) {
	svc := NewUsersService(NewUsersRepo(newTestStore(t)))
	if err := svc.SeedAdmin(); err != nil {
		t.Fatalf("SeedAdmin() = %v", err)
	}
	if _, err := svc.Create("bob", "pass", "Bob", "B", M(10), false); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"regular user", "bob", nil},
		{"admin is protected", "admin", ErrDomain},
		{"unknown user", "ghost", ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Delete(tc.username)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Delete(%q) = %v", tc.username, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Delete(%q) = %v, want %v", tc.username, err, tc.wantErr)
			}
		})
	}

	// Admin must still be there.
	found := false
	for _, u := range svc.List() {
		if u.Username == "admin" {
			found = true
		}
	}
	if !found {
		t.Error("admin user is gone after a refused delete")
	}
}

func TestUsersService_SeedAdmin(t *testing.T) {
	repo := NewUsersRepo(newTestStore(t))
	svc := NewUsersService(repo)

	if err := svc.SeedAdmin(); err != nil {
		t.Fatalf("SeedAdmin() = %v", err)
	}
	u, err := repo.Get("admin")
	if err != nil {
		t.Fatalf("Get(admin) = %v", err)
	}
	if !u.Admin || u.Password != "adminpass" || u.FullName() != "Kuku Admin" {
		t.Errorf("seeded admin = %+v", u)
	}
	if !u.Balance.Equal(M(5000)) {
		t.Errorf("seeded balance = %s, want %s", u.Balance, M(5000))
	}

	// Seeding again must not reset an updated account.
	u.Balance = M(1)
	if err := repo.Upsert(u); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedAdmin(); err != nil {
		t.Fatalf("second SeedAdmin() = %v", err)
	}
	if u, _ := repo.Get("admin"); !u.Balance.Equal(M(1)) {
		t.Error("SeedAdmin overwrote an existing admin account")
	}
}
