package histutil

import (
	"strings"

	"bish.sh/pkg/store/storedefs"
)

// NewMemStore returns a Store that keeps at most max commands in memory.
// When the store is full, adding a command evicts the oldest one. If max
// is <= 0, DefaultMaxCmds is used.
func NewMemStore(max int) Store {
	if max <= 0 {
		max = DefaultMaxCmds
	}
	return &memStore{max: max}
}

type memStore struct {
	max     int
	cmds    []storedefs.Cmd
	nextSeq int
}

func (s *memStore) AllCmds() ([]storedefs.Cmd, error) {
	return s.cmds, nil
}

func (s *memStore) AddCmd(cmd storedefs.Cmd) (int, error) {
	if cmd.Seq < 0 {
		cmd.Seq = s.nextSeq
	}
	s.nextSeq = cmd.Seq + 1
	if len(s.cmds) == s.max {
		// Evict the oldest entry. Shifting down keeps the backing array
		// at its capacity.
		copy(s.cmds, s.cmds[1:])
		s.cmds[len(s.cmds)-1] = cmd
	} else {
		s.cmds = append(s.cmds, cmd)
	}
	return cmd.Seq, nil
}

func (s *memStore) Cursor(prefix string) Cursor {
	return &memStoreCursor{s.cmds, prefix, len(s.cmds)}
}

type memStoreCursor struct {
	cmds   []storedefs.Cmd
	prefix string
	index  int
}

func (c *memStoreCursor) Prev() {
	if c.index < 0 {
		return
	}
	for c.index--; c.index >= 0; c.index-- {
		if strings.HasPrefix(c.cmds[c.index].Text, c.prefix) {
			return
		}
	}
}

func (c *memStoreCursor) Next() {
	if c.index >= len(c.cmds) {
		return
	}
	for c.index++; c.index < len(c.cmds); c.index++ {
		if strings.HasPrefix(c.cmds[c.index].Text, c.prefix) {
			return
		}
	}
}

func (c *memStoreCursor) Get() (storedefs.Cmd, error) {
	if c.index < 0 || c.index >= len(c.cmds) {
		return storedefs.Cmd{}, ErrEndOfHistory
	}
	return c.cmds[c.index], nil
}
