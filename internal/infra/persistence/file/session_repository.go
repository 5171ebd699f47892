// Package file stores the operator session as a JSON file.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/repository"
	"blogpilot/internal/errors"
)

type sessionRepository struct {
	path   string
	sealer *sealer
	mu     sync.Mutex
}

// storedSession is the on-disk record. Only the token and display name are kept.
type storedSession struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name,omitempty"`
}

// NewSessionRepository stores the session at path. A non-empty passphrase
// seals the file with a key derived from it.
func NewSessionRepository(path, passphrase string) (repository.SessionRepository, error) {
	if path == "" {
		return nil, errors.New("session path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "create session directory")
	}

	return &sessionRepository{path: path, sealer: newSealer(passphrase)}, nil
}

func (r *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	if isSealed(data) {
		if r.sealer == nil {
			return nil, errWrongPassphrase
		}
		if data, err = r.sealer.open(data); err != nil {
			return nil, err
		}
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}
	if stored.Token == "" {
		return nil, nil
	}

	return &entity.Session{Token: stored.Token, DisplayName: stored.DisplayName}, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(storedSession{Token: session.Token, DisplayName: session.DisplayName}, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	if r.sealer != nil {
		if data, err = r.sealer.seal(data); err != nil {
			return err
		}
	}

	// Write then rename so a crash never leaves a half-written session.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}

	return errors.Wrap(os.Rename(tmp, r.path), "replace session file")
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}
