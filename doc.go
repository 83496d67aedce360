// Package kuku implements a terminal-driven portfolio simulator: users
// authenticate, hold a cash balance, create named portfolios, and buy or
// sell fixed-price securities from a static catalog.
//
// The core functionalities include:
//   - Durable Store: the whole state (users and portfolios) lives in a
//     single human-readable JSONL file, fully reloaded at startup and
//     fully rewritten on every mutation.
//   - Repositories: thin CRUD wrappers over the store that generate ids
//     and raise not-found errors.
//   - Auth: an explicit single-slot session with login/logout and the
//     admin gate, with credential comparison isolated behind a Verifier.
//   - Users Service: account creation with a uniqueness rule and a
//     protected, undeletable admin account.
//   - Portfolio Service: the transactional core, where buys and sells
//     are validated against cash balance and holdings so that neither
//     can ever go negative.
//
// This package serves as the foundational logic for the `kuku`
// command-line tool; everything interactive lives in the cmd package.
package kuku
