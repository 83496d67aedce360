package cmd

// The shell is a state machine over these menus; each iteration of the
// loop renders the current menu and dispatches one choice.
type menu int

const (
	welcomeMenu menu = iota
	adminMenu
	userMenu
	portfoliosMenu
	marketMenu
)

const (
	welcomeChoices = "1. Admin login\n" +
		"2. User login\n" +
		"3. Create new user\n" +
		"0. Exit"

	adminChoices = "1. View users\n" +
		"2. Create user\n" +
		"3. Delete user\n" +
		"9. Back"

	userChoices = "1. Manage portfolios\n" +
		"2. Visit market\n" +
		"9. Logout"

	portfoliosChoices = "1. View my portfolios\n" +
		"2. Create new portfolio\n" +
		"3. Delete a portfolio\n" +
		"4. Sell (liquidate)\n" +
		"9. Back"

	marketChoices = "1. View securities\n" +
		"2. Buy (purchase)\n" +
		"9. Back"
)
