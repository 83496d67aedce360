package kuku

// adminUsername is the reserved account seeded at startup; it can never
// be deleted.
const adminUsername = "admin"

// UsersService implements the user management use-cases: list, create,
// delete.
type UsersService struct {
	repo *UsersRepo
}

// NewUsersService returns a users service over the repository.
func NewUsersService(repo *UsersRepo) *UsersService {
	return &UsersService{repo: repo}
}

// List returns all users.
func (s *UsersService) List() []User {
	return s.repo.All()
}

// Create registers a new user. The username must not collide with an
// existing one (case-sensitive exact match). Balance validity is the
// caller's responsibility; it is enforced at the input boundary.
func (s *UsersService) Create(username, password, first, last string, balance Money, admin bool) (User, error) {
	if _, err := s.repo.Get(username); err == nil {
		return User{}, Domainf("username already exists: %s", username)
	}
	u := User{
		Username:  username,
		Password:  password,
		FirstName: first,
		LastName:  last,
		Balance:   balance,
		Admin:     admin,
	}
	if err := s.repo.Upsert(u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Delete removes a user. The reserved admin account is protected and
// always refused with a domain error.
func (s *UsersService) Delete(username string) error {
	if username == adminUsername {
		return Domainf("admin user cannot be deleted")
	}
	return s.repo.Delete(username)
}

// SeedAdmin creates the default admin account if it is missing.
func (s *UsersService) SeedAdmin() error {
	if _, err := s.repo.Get(adminUsername); err == nil {
		return nil
	}
	_, err := s.Create(adminUsername, "adminpass", "Kuku", "Admin", M(5000.00), true)
	return err
}
