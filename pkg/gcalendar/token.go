package gcalendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/oauth2"
)

// LoadToken reads an OAuth2 token previously written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNoToken, path)
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path, readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// persistingTokenSource writes every newly issued token back to disk so a
// refreshed token survives restarts.
type persistingTokenSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	path string
	last string
}

func newPersistingTokenSource(base oauth2.TokenSource, path string, initial *oauth2.Token) *persistingTokenSource {
	s := &persistingTokenSource{base: base, path: path}
	if initial != nil {
		s.last = initial.AccessToken
	}
	return s
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		// A failed write only costs a refresh on the next start.
		if err := SaveToken(s.path, tok); err == nil {
			s.last = tok.AccessToken
		}
	}
	return tok, nil
}
