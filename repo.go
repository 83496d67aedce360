package kuku

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Repositories are thin CRUD wrappers over the Store. Every mutation is
// saved before the call returns, so state is durable immediately.

// UsersRepo gives access to the persistent user collection.
type UsersRepo struct {
	store *Store
}

// NewUsersRepo returns a users repository over store.
func NewUsersRepo(store *Store) *UsersRepo {
	return &UsersRepo{store: store}
}

// Get returns the user by username, or ErrNotFound.
func (r *UsersRepo) Get(username string) (User, error) {
	u, ok := r.store.users[username]
	if !ok {
		return User{}, NotFoundf("unknown user: %s", username)
	}
	return u, nil
}

// All returns a snapshot of all users, sorted by username.
func (r *UsersRepo) All() []User {
	users := make([]User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users
}

// Upsert inserts or overwrites the user and persists.
func (r *UsersRepo) Upsert(u User) error {
	r.store.users[u.Username] = u
	return r.store.Save()
}

// Delete removes the user and persists, or fails with ErrNotFound.
func (r *UsersRepo) Delete(username string) error {
	if _, ok := r.store.users[username]; !ok {
		return NotFoundf("unknown user: %s", username)
	}
	delete(r.store.users, username)
	return r.store.Save()
}

// PortfoliosRepo gives access to the persistent portfolio collection.
type PortfoliosRepo struct {
	store *Store
}

// NewPortfoliosRepo returns a portfolios repository over store.
func NewPortfoliosRepo(store *Store) *PortfoliosRepo {
	return &PortfoliosRepo{store: store}
}

// Get returns a copy of the portfolio by id, or ErrNotFound.
func (r *PortfoliosRepo) Get(pid string) (Portfolio, error) {
	p, ok := r.store.portfolios[pid]
	if !ok {
		return Portfolio{}, NotFoundf("portfolio not found: %s", pid)
	}
	return p.Clone(), nil
}

// ForUser returns a snapshot of the portfolios owned by username, sorted
// by id for a stable listing order.
func (r *PortfoliosRepo) ForUser(username string) []Portfolio {
	var list []Portfolio
	for _, p := range r.store.portfolios {
		if p.Owner == username {
			list = append(list, p.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Create allocates a new empty portfolio with a generated id and
// persists it.
func (r *PortfoliosRepo) Create(owner, name, strategy string) (Portfolio, error) {
	p := Portfolio{
		ID:       r.newID(),
		Owner:    owner,
		Name:     name,
		Strategy: strategy,
		Holdings: make(map[string]Quantity),
	}
	r.store.portfolios[p.ID] = p
	if err := r.store.Save(); err != nil {
		return Portfolio{}, err
	}
	return p.Clone(), nil
}

// newID generates a short opaque portfolio id: the first 8 hex chars of
// a random UUID. Collisions are practically impossible, but ids are
// checked against existing ones anyway since generating another is free.
func (r *PortfoliosRepo) newID() string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if _, exists := r.store.portfolios[id]; !exists {
			return id
		}
	}
}

// Update replaces the portfolio by id and persists.
func (r *PortfoliosRepo) Update(p Portfolio) error {
	r.store.portfolios[p.ID] = p.Clone()
	if err := r.store.Save(); err != nil {
		return fmt.Errorf("cannot persist portfolio %s: %w", p.ID, err)
	}
	return nil
}

// Delete removes the portfolio and persists, or fails with ErrNotFound.
func (r *PortfoliosRepo) Delete(pid string) error {
	if _, ok := r.store.portfolios[pid]; !ok {
		return NotFoundf("portfolio not found: %s", pid)
	}
	delete(r.store.portfolios, pid)
	return r.store.Save()
}
