package histutil

import (
	"reflect"
	"testing"

	"src.lined.sh/pkg/store/storedefs"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore("echo foo", "ls")

	seq, err := s.AddCmd("cat bar")
	if seq != 2 || err != nil {
		t.Errorf("AddCmd -> (%v, %v), want (2, nil)", seq, err)
	}

	cmds, err := s.AllCmds()
	wantCmds := []storedefs.Cmd{
		{Text: "echo foo", Seq: 0},
		{Text: "ls", Seq: 1},
		{Text: "cat bar", Seq: 2},
	}
	if !reflect.DeepEqual(cmds, wantCmds) || err != nil {
		t.Errorf("AllCmds -> (%v, %v), want (%v, nil)", cmds, err, wantCmds)
	}
}

func TestMemStore_AddCmd_Illegal(t *testing.T) {
	s := NewMemStore()
	if _, err := s.AddCmd("put a\nput b"); err != ErrIllegalCmd {
		t.Errorf("AddCmd with newline -> err %v, want %v", err, ErrIllegalCmd)
	}
	cmds, _ := s.AllCmds()
	if len(cmds) != 0 {
		t.Errorf("store has %d commands after rejected AddCmd, want 0",
			len(cmds))
	}
}

func TestLastCmds(t *testing.T) {
	cmds := []storedefs.Cmd{
		{Text: "echo foo", Seq: 0},
		{Text: "ls", Seq: 1},
		{Text: "cat bar", Seq: 2},
	}
	tests := []struct {
		n    int
		want []storedefs.Cmd
	}{
		{2, cmds[1:]},
		{3, cmds},
		{4, cmds},
		{0, cmds},
		{-1, cmds},
	}
	for _, test := range tests {
		if got := LastCmds(cmds, test.n); !reflect.DeepEqual(got, test.want) {
			t.Errorf("LastCmds(cmds, %v) -> %v, want %v",
				test.n, got, test.want)
		}
	}
}

func TestMemStore_AllCmds_ReturnsCopy(t *testing.T) {
	s := NewMemStore("echo foo")
	cmds, _ := s.AllCmds()
	cmds[0].Text = "mutated"
	cmds2, _ := s.AllCmds()
	if cmds2[0].Text != "echo foo" {
		t.Errorf("mutating AllCmds result changed the store")
	}
}
