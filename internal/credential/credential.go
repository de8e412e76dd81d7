// Package credential supplies the bearer token sent with mutating menu API calls.
// The token lives in client storage that this program reads but never writes.
package credential

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// TokenFileEnv overrides the default token file location.
	TokenFileEnv = "MENUVIEW_TOKEN_FILE"
	// TokenEnv supplies the token directly, taking precedence over the file.
	TokenEnv = "MENUVIEW_ACCESS_TOKEN"
	// DefaultTokenFile is relative to the user's home directory.
	DefaultTokenFile = ".menuview/access_token"
)

// ErrNoToken is returned when storage holds no token.
var ErrNoToken = errors.New("no access token stored")

// Provider returns the current bearer token.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Static is a Provider backed by a fixed token. An empty token yields ErrNoToken.
type Static string

// Token implements Provider.
func (s Static) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

// FileStore reads the token from a single file.
// The file is read on every call so a token refreshed by another tool is picked up.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store at path, or at ~/.menuview/access_token when path is empty.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, DefaultTokenFile)
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// Path returns the file the store reads.
func (s *FileStore) Path() string {
	return s.path
}

// Token implements Provider. Missing or blank files yield ErrNoToken.
// An expired JWT is still returned; the server decides, we only log it.
func (s *FileStore) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", ErrNoToken
	}
	if exp, ok := Expiry(tok); ok && !exp.After(s.now()) {
		log.Printf("credential: token in %s expired at %s", s.path, exp.Format(time.RFC3339))
	}
	return tok, nil
}

// FromEnv builds the default provider: the token env var when set,
// otherwise a FileStore at tokenFile (or its default location).
func FromEnv(tokenFile string) (Provider, error) {
	if tok := strings.TrimSpace(os.Getenv(TokenEnv)); tok != "" {
		return Static(tok), nil
	}
	if env := os.Getenv(TokenFileEnv); env != "" && tokenFile == "" {
		tokenFile = env
	}
	return NewFileStore(tokenFile)
}
