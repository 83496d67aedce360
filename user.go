package kuku

// User is an account holder. The username doubles as the identifier.
//
// Password is stored as given at account creation; comparison is
// delegated to a Verifier so the scheme can change without touching the
// auth contract.
type User struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Balance   Money
	Admin     bool
}

// FullName returns the display name of the user.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
