package kuku

import (
	"path/filepath"
	"testing"
)

// newTestStore returns an empty store persisted under a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.jsonl"))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	return s
}

// seedUser registers a user with password "<username>pass" and returns it.
func seedUser(t *testing.T, repo *UsersRepo, username string, balance Money) User {
	t.Helper()
	u := User{
		Username:  username,
		Password:  username + "pass",
		FirstName: "Test",
		LastName:  username,
		Balance:   balance,
	}
	if err := repo.Upsert(u); err != nil {
		t.Fatalf("Upsert(%q) = %v", username, err)
	}
	return u
}

// seedPortfolio creates an empty portfolio owned by owner and returns it.
func seedPortfolio(t *testing.T, repo *PortfoliosRepo, owner string) Portfolio {
	t.Helper()
	p, err := repo.Create(owner, "growth", "tech")
	if err != nil {
		t.Fatalf("Create(%q) = %v", owner, err)
	}
	return p
}
