// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"reflect"
	"testing"

	"src.lined.sh/pkg/store/storedefs"
)

var cmds = []string{"echo foo", "put bar", "put lorem", "echo bar"}

// TestCmd tests the command history part of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (1, nil)",
			startSeq, err)
	}

	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%q) -> (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantEndSeq := startSeq + len(cmds)
	if endSeq != wantEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (%v, nil)",
			endSeq, err, wantEndSeq)
	}

	wantCmds := make([]storedefs.Cmd, len(cmds))
	for i, cmd := range cmds {
		wantCmds[i] = storedefs.Cmd{Text: cmd, Seq: startSeq + i}
	}
	cmdsWithSeq, err := store.CmdsWithSeq(startSeq, endSeq)
	if !reflect.DeepEqual(cmdsWithSeq, wantCmds) || err != nil {
		t.Errorf("store.CmdsWithSeq(%v, %v) -> (%v, %v), want (%v, nil)",
			startSeq, endSeq, cmdsWithSeq, err, wantCmds)
	}

	// A subrange queries only the commands within it.
	subCmds, err := store.CmdsWithSeq(startSeq+1, endSeq-1)
	if !reflect.DeepEqual(subCmds, wantCmds[1:len(wantCmds)-1]) || err != nil {
		t.Errorf("store.CmdsWithSeq(%v, %v) -> (%v, %v), want (%v, nil)",
			startSeq+1, endSeq-1, subCmds, err, wantCmds[1:len(wantCmds)-1])
	}
}
