package kuku

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// This file persists the whole simulator state in a single JSONL file,
// human-readable and git-friendly: one JSON object per line, tagged with
// a "kind" discriminator ("user" or "portfolio").
//
// The strategy is deliberately simple: Open reads the whole file into
// memory; Save rewrites the whole file. Saves go through a temp file in
// the same directory followed by a rename, so a reader never observes a
// partially written state.

const (
	kindUser      = "user"
	kindPortfolio = "portfolio"
)

// Store holds the two persistent collections, users and portfolios, and
// knows how to load and durably save them.
//
// The store is not safe for concurrent use: the simulator serves a
// single interactive session. A reimplementation as a multi-user
// service would insert its locking or transactional engine here.
type Store struct {
	path       string
	users      map[string]User
	portfolios map[string]Portfolio
}

// NewStore creates an empty in-memory store bound to path.
func NewStore(path string) *Store {
	return &Store{
		path:       path,
		users:      make(map[string]User),
		portfolios: make(map[string]Portfolio),
	}
}

// Open loads the state file at path. A missing file is not an error: it
// yields an empty store, saved on the first mutation.
func Open(path string) (*Store, error) {
	s := NewStore(path)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Printf("open-store path=%q state=empty", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open state file %q: %w", path, err)
	}
	defer f.Close()

	if err := s.decode(f); err != nil {
		return nil, fmt.Errorf("cannot read state file %q: %w", path, err)
	}
	return s, nil
}

// jUser and jPortfolio are the persisted forms; domain objects are kept
// free of serialization tags.
type jUser struct {
	Kind      string `json:"kind"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Balance   Money  `json:"balance"`
	Admin     bool   `json:"admin,omitempty"`
}

type jPortfolio struct {
	Kind     string              `json:"kind"`
	ID       string              `json:"id"`
	Owner    string              `json:"owner"`
	Name     string              `json:"name"`
	Strategy string              `json:"strategy,omitempty"`
	Holdings map[string]Quantity `json:"holdings,omitempty"`
}

// decode reads a JSONL stream and fills the store collections.
func (s *Store) decode(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(txt) == 0 {
			continue
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(txt, &identifier); err != nil {
			return fmt.Errorf("line %d: not a correct json object: %w", line, err)
		}

		switch identifier.Kind {
		case kindUser:
			var ju jUser
			if err := json.Unmarshal(txt, &ju); err != nil {
				return fmt.Errorf("line %d: invalid user record: %w", line, err)
			}
			if _, exists := s.users[ju.Username]; exists {
				return fmt.Errorf("line %d: user %q is already defined", line, ju.Username)
			}
			s.users[ju.Username] = User{
				Username:  ju.Username,
				Password:  ju.Password,
				FirstName: ju.FirstName,
				LastName:  ju.LastName,
				Balance:   ju.Balance,
				Admin:     ju.Admin,
			}
		case kindPortfolio:
			var jp jPortfolio
			if err := json.Unmarshal(txt, &jp); err != nil {
				return fmt.Errorf("line %d: invalid portfolio record: %w", line, err)
			}
			if _, exists := s.portfolios[jp.ID]; exists {
				return fmt.Errorf("line %d: portfolio %q is already defined", line, jp.ID)
			}
			holdings := jp.Holdings
			if holdings == nil {
				holdings = make(map[string]Quantity)
			}
			s.portfolios[jp.ID] = Portfolio{
				ID:       jp.ID,
				Owner:    jp.Owner,
				Name:     jp.Name,
				Strategy: jp.Strategy,
				Holdings: holdings,
			}
		default:
			return fmt.Errorf("line %d: unknown record kind %q", line, identifier.Kind)
		}
	}
	return scanner.Err()
}

// encode writes the whole state as JSONL, users first then portfolios,
// each sorted by key so the output is deterministic and diff-friendly.
func (s *Store) encode(w io.Writer) error {
	usernames := make([]string, 0, len(s.users))
	for name := range s.users {
		usernames = append(usernames, name)
	}
	sort.Strings(usernames)
	for _, name := range usernames {
		u := s.users[name]
		ju := jUser{
			Kind:      kindUser,
			Username:  u.Username,
			Password:  u.Password,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Balance:   u.Balance,
			Admin:     u.Admin,
		}
		if err := writeLine(w, ju); err != nil {
			return err
		}
	}

	pids := make([]string, 0, len(s.portfolios))
	for id := range s.portfolios {
		pids = append(pids, id)
	}
	sort.Strings(pids)
	for _, id := range pids {
		p := s.portfolios[id]
		jp := jPortfolio{
			Kind:     kindPortfolio,
			ID:       p.ID,
			Owner:    p.Owner,
			Name:     p.Name,
			Strategy: p.Strategy,
			Holdings: p.Holdings,
		}
		if err := writeLine(w, jp); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write record: %w", err)
	}
	return nil
}

// Save durably rewrites the whole state file. The write goes to a temp
// file in the same directory, renamed over the state file on success.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create state directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.jsonl")
	if err != nil {
		return fmt.Errorf("cannot create temp state file: %w", err)
	}
	if err := s.encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot close temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot replace state file %q: %w", s.path, err)
	}
	return nil
}
