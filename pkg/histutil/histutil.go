// Package histutil provides utilities for working with command history.
package histutil

import (
	"errors"
	"strings"

	"src.lined.sh/pkg/store/storedefs"
)

// Store is an abstract interface for a command history store.
type Store interface {
	// AllCmds returns all commands kept in the store, oldest first.
	AllCmds() ([]storedefs.Cmd, error)
	// AddCmd adds a new command to the store and returns its sequence number.
	AddCmd(text string) (int, error)
}

// ErrIllegalCmd is returned by AddCmd when the command contains the record
// delimiter and thus cannot survive the text serialization.
var ErrIllegalCmd = errors.New("command contains newline")

// NewMemStore returns a Store that saves command history in memory.
func NewMemStore(texts ...string) Store {
	cmds := make([]storedefs.Cmd, len(texts))
	for i, text := range texts {
		cmds[i] = storedefs.Cmd{Text: text, Seq: i}
	}
	return &memStore{cmds}
}

type memStore struct {
	cmds []storedefs.Cmd
}

func (s *memStore) AllCmds() ([]storedefs.Cmd, error) {
	return append([]storedefs.Cmd(nil), s.cmds...), nil
}

func (s *memStore) AddCmd(text string) (int, error) {
	if strings.ContainsRune(text, '\n') {
		return -1, ErrIllegalCmd
	}
	seq := len(s.cmds)
	s.cmds = append(s.cmds, storedefs.Cmd{Text: text, Seq: seq})
	return seq, nil
}

// LastCmds returns the newest n commands of cmds, or cmds itself when it has
// no more than n commands. A non-positive n means no limit.
func LastCmds(cmds []storedefs.Cmd, n int) []storedefs.Cmd {
	if n <= 0 || len(cmds) <= n {
		return cmds
	}
	return cmds[len(cmds)-n:]
}

// NewDBStore returns a Store backed by a database.
func NewDBStore(db storedefs.Store) Store {
	return dbStore{db}
}

type dbStore struct {
	db storedefs.Store
}

func (s dbStore) AllCmds() ([]storedefs.Cmd, error) {
	upper, err := s.db.NextCmdSeq()
	if err != nil {
		return nil, err
	}
	return s.db.CmdsWithSeq(0, upper)
}

func (s dbStore) AddCmd(text string) (int, error) {
	if strings.ContainsRune(text, '\n') {
		return -1, ErrIllegalCmd
	}
	return s.db.AddCmd(text)
}
