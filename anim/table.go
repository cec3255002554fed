package anim

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/spritecore/ident"
)

var (
	ErrDuplicateClip = errors.New("anim: duplicate clip name")
	ErrClipNotFound  = errors.New("anim: clip not found")
)

// Table is the definition table for a set of clips, usually one per sprite sheet.
// It owns its clips; sprites look them up by name and share them.
type Table struct {
	byName map[string]*Clip
	byId   *intmap.Map[ident.Token, *Clip]
	order  []*Clip
}

// NewTable creates an empty clip table
func NewTable() *Table {
	return &Table{
		byName: make(map[string]*Clip),
		byId:   intmap.New[ident.Token, *Clip](32),
	}
}

// Add registers clip under its current name.
func (t *Table) Add(clip *Clip) error {
	if _, exists := t.byName[clip.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateClip, clip.name)
	}
	t.byName[clip.name] = clip
	t.byId.Put(clip.id, clip)
	t.order = append(t.order, clip)
	return nil
}

// Lookup returns the clip registered under name
func (t *Table) Lookup(name string) (*Clip, bool) {
	clip, ok := t.byName[name]
	return clip, ok
}

// ByID returns the clip with the given identity token
func (t *Table) ByID(id ident.Token) (*Clip, bool) {
	return t.byId.Get(id)
}

// Remove drops the clip registered under name and returns it. Players that still
// reference the clip keep playing it.
func (t *Table) Remove(name string) (*Clip, bool) {
	clip, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	delete(t.byName, name)
	t.byId.Del(clip.id)
	t.order = slices.DeleteFunc(t.order, func(c *Clip) bool { return c == clip })
	return clip, true
}

// Rename changes a registered clip's name and re-indexes it.
func (t *Table) Rename(oldName, newName string) error {
	clip, ok := t.byName[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrClipNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, exists := t.byName[newName]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateClip, newName)
	}
	delete(t.byName, oldName)
	clip.SetName(newName)
	t.byName[newName] = clip
	return nil
}

// Len returns the number of registered clips
func (t *Table) Len() int {
	return len(t.order)
}

// All iterates clips in the order they were added
func (t *Table) All() iter.Seq[*Clip] {
	return func(yield func(*Clip) bool) {
		for _, clip := range t.order {
			if !yield(clip) {
				return
			}
		}
	}
}
