package client

import (
	"encoding/json"
	"errors"
	"os"
)

// SessionUser is the identity cached alongside the token, mirroring what
// the server returns from login.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session holds the credential state for a Client. It is an explicit
// object with a defined lifecycle: NewSession rehydrates from the backing
// file, SetCredentials persists after login, Logout clears both memory
// and disk.
type Session struct {
	path  string
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// NewSession loads a session from path. A missing file yields an empty
// session; an empty path yields a purely in-memory session.
func NewSession(path string) (*Session, error) {
	session := &Session{path: path}

	if path == "" {
		return session, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return session, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, session); err != nil {
		// A corrupt session file is treated as logged out.
		return &Session{path: path}, nil
	}

	return session, nil
}

func (s *Session) Authenticated() bool {
	return s.Token != ""
}

func (s *Session) SetCredentials(token string, user SessionUser) error {
	s.Token = token
	s.User = user
	return s.save()
}

// Logout clears the in-memory state and removes the backing file.
func (s *Session) Logout() error {
	s.Token = ""
	s.User = SessionUser{}

	if s.path == "" {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *Session) save() error {
	if s.path == "" {
		return nil
	}

	data, err := json.Marshal(s)

	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}
