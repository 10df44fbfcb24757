// Package store persists user preferences across runs
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/lixenwraith/glyph-trail/core"
)

// MotionKey is the key the motion mode is stored under
const MotionKey = "motion-preference"

// DefaultDir is the preference directory when none is configured
const DefaultDir = "~/.glyph-trail"

// Preferences is a small diskv-backed key/value store
type Preferences struct {
	d   *diskv.Diskv
	dir string
}

// Open creates the store rooted at dir, expanding a leading ~
func Open(dir string) (*Preferences, error) {
	if dir == "" {
		dir = DefaultDir
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("expand preference dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return nil, fmt.Errorf("create preference dir: %w", err)
	}
	return &Preferences{
		d: diskv.New(diskv.Options{
			BasePath:     expanded,
			CacheSizeMax: 4 * 1024,
		}),
		dir: expanded,
	}, nil
}

// Dir returns the expanded base path
func (p *Preferences) Dir() string {
	return p.dir
}

// MotionMode reads the persisted mode; a missing key reads as auto.
// An unrecognized value reads as auto and is reported.
func (p *Preferences) MotionMode() (core.MotionMode, error) {
	val, err := p.d.Read(MotionKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.MotionAuto, nil
		}
		return core.MotionAuto, fmt.Errorf("read motion preference: %w", err)
	}
	mode, err := core.ParseMotionMode(strings.TrimSpace(string(val)))
	if err != nil {
		return core.MotionAuto, fmt.Errorf("read motion preference: %w", err)
	}
	return mode, nil
}

// SetMotionMode persists the mode
func (p *Preferences) SetMotionMode(m core.MotionMode) error {
	if err := p.d.Write(MotionKey, []byte(m.String())); err != nil {
		return fmt.Errorf("write motion preference: %w", err)
	}
	return nil
}

// Clear removes every stored preference
func (p *Preferences) Clear() error {
	if err := p.d.EraseAll(); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}
