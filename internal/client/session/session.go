// Package session holds the signed-in user for the lifetime of the
// process and persists it across restarts, the way a browser keeps the
// record in local storage.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

const (
	userFile = "user.json"
	roleFile = "role"
)

// User is the persisted session record. All fields are set on login or
// none are; there is no partial state.
type User struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	UniversityID int    `json:"university_id"`
	Token        string `json:"token"`
}

// Holder is the process-wide session state. It hydrates from the state
// directory on construction and writes through on every change.
type Holder struct {
	mu   sync.RWMutex
	dir  string
	user *User
	role string
}

// NewHolder loads any persisted session from dir. A missing or
// unreadable record yields an anonymous session with the visitor role.
func NewHolder(dir string) (*Holder, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	h := &Holder{dir: dir, role: string(entities.RoleVisitor)}

	if data, err := os.ReadFile(filepath.Join(dir, userFile)); err == nil {
		var user User
		if json.Unmarshal(data, &user) == nil && user.Username != "" {
			h.user = &user
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if data, err := os.ReadFile(filepath.Join(dir, roleFile)); err == nil {
		if role := strings.TrimSpace(string(data)); role != "" {
			h.role = role
		}
	}

	return h, nil
}

// CurrentUser returns the signed-in user, or nil when anonymous.
func (h *Holder) CurrentUser() *User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	copied := *h.user
	return &copied
}

// Role returns the stored role string. After logout this may still
// carry the last signed-in role; callers must not treat it as an
// authorization signal.
func (h *Holder) Role() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.role
}

// Login replaces the current session with record and persists it
// verbatim.
func (h *Holder) Login(record User) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(h.dir, userFile), data, 0o600); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(h.dir, roleFile), []byte(record.Role), 0o600); err != nil {
		return err
	}

	h.user = &record
	h.role = record.Role
	return nil
}

// Logout clears the user record from memory and storage. The stored
// role is intentionally left in place to match the long-standing
// browser behavior; see Role.
func (h *Holder) Logout() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(filepath.Join(h.dir, userFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	h.user = nil
	return nil
}

// IsAdmin reports whether the signed-in username is the admin account.
// This gates UI affordances only; the backend enforces authorization on
// every admin request.
func (h *Holder) IsAdmin() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user != nil && h.user.Username == "admin"
}
