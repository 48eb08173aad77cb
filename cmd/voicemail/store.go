package main

import (
	"fmt"

	"github.com/fwojciec/voicemail"
	vmjson "github.com/fwojciec/voicemail/json"
	vmyaml "github.com/fwojciec/voicemail/yaml"
)

// openStore loads the configured store. An empty store is seeded from the
// configured seed file, if any.
func (a *app) openStore() (*vmjson.Store, *voicemail.MemoryDirectory, error) {
	store := vmjson.NewStore(a.cfg.Store.Dir)
	dir, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	if len(dir.Mailboxes()) == 0 && a.cfg.Store.Seed != "" {
		n, err := importSeed(dir, a.cfg.Store.Seed, false)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Info("seeded store", "seed", a.cfg.Store.Seed, "mailboxes", n)
	}
	return store, dir, nil
}

// importSeed adds the mailboxes of the seed file at path to dir and returns
// how many were added. Existing mailboxes are an error unless skipExisting
// is set.
func importSeed(dir *voicemail.MemoryDirectory, path string, skipExisting bool) (int, error) {
	snaps, err := vmyaml.LoadSeed(path)
	if err != nil {
		return 0, fmt.Errorf("load seed: %w", err)
	}
	added := 0
	for _, snap := range snaps {
		if _, err := dir.FindMailbox(snap.ID); err == nil {
			if skipExisting {
				continue
			}
			return added, fmt.Errorf("import mailbox %q: %w", snap.ID, voicemail.ErrMailboxExists)
		}
		if err := dir.Add(voicemail.RestoreMailbox(snap)); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
