package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gatherly/gatherly-go/internal/model"
)

// CredentialStore persists the client-side session between runs: the
// bearer token and the cached user, keyed separately. An authenticated
// session requires both; partial state reads as absent.
type CredentialStore interface {
	TokenSource
	User() (model.UserResponse, bool)
	Save(token string, user model.UserResponse) error
	Clear() error
}

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileCredentialStore keeps credentials as files under a directory,
// typically inside the user config dir.
type FileCredentialStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileCredentialStore creates a store rooted at dir. The directory
// is created lazily on the first Save.
func NewFileCredentialStore(dir string) *FileCredentialStore {
	return &FileCredentialStore{dir: dir}
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *FileCredentialStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// User returns the persisted user, or false when absent or unparseable.
func (s *FileCredentialStore) User() (model.UserResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return model.UserResponse{}, false
	}

	var user model.UserResponse
	if err := json.Unmarshal(data, &user); err != nil {
		return model.UserResponse{}, false
	}
	return user, true
}

// Save persists the token and user atomically enough for a single
// local client: token first, then user.
func (s *FileCredentialStore) Save(token string, user model.UserResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600)
}

// Clear removes both persisted keys. Missing files are not an error.
func (s *FileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
