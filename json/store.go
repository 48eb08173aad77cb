package json

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/voicemail"
)

// mailboxPattern matches mailbox files anywhere below the store directory,
// so operators may shard mailboxes into subdirectories.
const mailboxPattern = "**/*.json"

// Store keeps a directory of mailbox files. New mailboxes are written to
// <Dir>/<id>.json; existing ones are rewritten where they were found.
type Store struct {
	Dir string

	paths map[string]string // mailbox id -> path it was loaded from
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, paths: make(map[string]string)}
}

// Load reads every mailbox file under Dir into a MemoryDirectory. A missing
// Dir yields an empty directory. Two files with the same mailbox ID are an
// error.
func (s *Store) Load() (*voicemail.MemoryDirectory, error) {
	dir := voicemail.NewMemoryDirectory()
	info, err := os.Stat(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return dir, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store path %s is not a directory", s.Dir)
	}

	err = doublestar.GlobWalk(os.DirFS(s.Dir), mailboxPattern, func(rel string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		path := filepath.Join(s.Dir, filepath.FromSlash(rel))
		snap, err := Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
		if err := dir.Add(voicemail.RestoreMailbox(snap)); err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
		s.paths[snap.ID] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return dir, nil
}

// SaveMailbox writes one mailbox.
func (s *Store) SaveMailbox(m *voicemail.Mailbox) error {
	path, ok := s.paths[m.ID()]
	if !ok {
		path = filepath.Join(s.Dir, m.ID()+".json")
	}
	if err := Save(path, m.Snapshot()); err != nil {
		return fmt.Errorf("save mailbox %s: %w", m.ID(), err)
	}
	s.paths[m.ID()] = path
	return nil
}

// Save writes every mailbox in d.
func (s *Store) Save(d *voicemail.MemoryDirectory) error {
	for _, m := range d.Mailboxes() {
		if err := s.SaveMailbox(m); err != nil {
			return err
		}
	}
	return nil
}
