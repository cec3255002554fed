package anim

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName       = errors.New("anim: clip has no name")
	ErrInvalidFramerate  = errors.New("anim: fps must be positive")
	ErrNegativeDelay     = errors.New("anim: delay must not be negative")
	ErrConflictingTiming = errors.New("anim: fps and delay are mutually exclusive")
	ErrNegativeFrame     = errors.New("anim: frame index must not be negative")
)

// TableFile is the on-disk layout of a clip table
type TableFile struct {
	Clips []ClipDef `yaml:"clips"`
}

// ClipDef defines one clip in a table file. Timing comes from either FPS or
// Delay; with neither the clip has no delay.
type ClipDef struct {
	Name   string   `yaml:"name"`
	Frames []int    `yaml:"frames"`
	FPS    *float64 `yaml:"fps,omitempty"`
	Delay  *float64 `yaml:"delay,omitempty"`
	Loop   *bool    `yaml:"loop,omitempty"` // nil means true
}

// Validate checks the definition without building a clip
func (d ClipDef) Validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	if d.FPS != nil && d.Delay != nil {
		return ErrConflictingTiming
	}
	if d.FPS != nil && !validFramerate(*d.FPS) {
		return fmt.Errorf("%w: got %v", ErrInvalidFramerate, *d.FPS)
	}
	if d.Delay != nil && !(*d.Delay >= 0) {
		return fmt.Errorf("%w: got %v", ErrNegativeDelay, *d.Delay)
	}
	for i, f := range d.Frames {
		if f < 0 {
			return fmt.Errorf("%w: frames[%d] = %d", ErrNegativeFrame, i, f)
		}
	}
	return nil
}

func (d ClipDef) looped() bool {
	return d.Loop == nil || *d.Loop
}

func (d ClipDef) delay() float64 {
	switch {
	case d.FPS != nil:
		return 1.0 / *d.FPS
	case d.Delay != nil:
		return *d.Delay
	default:
		return 0
	}
}

// Build validates the definition and creates a new clip from it
func (d ClipDef) Build() (*Clip, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var clip *Clip
	if d.FPS != nil {
		clip = NewClipWithLoop(d.Name, d.Frames, *d.FPS, d.looped())
	} else {
		clip = NewStaticClip(d.Name, d.Frames)
		clip.SetDelay(d.delay())
		clip.SetLooped(d.looped())
	}
	return clip, nil
}

func decodeTableFile(data []byte) (*TableFile, error) {
	file := &TableFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse clip table: %w", err)
	}

	seen := make(map[string]bool, len(file.Clips))
	for i, def := range file.Clips {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("clip #%d (%q): %w", i, def.Name, err)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("clip #%d: %w: %q", i, ErrDuplicateClip, def.Name)
		}
		seen[def.Name] = true
	}
	return file, nil
}

// ParseTable builds a table from YAML data
func ParseTable(data []byte) (*Table, error) {
	file, err := decodeTableFile(data)
	if err != nil {
		return nil, err
	}

	table := NewTable()
	for _, def := range file.Clips {
		clip, err := def.Build()
		if err != nil {
			return nil, err
		}
		if err := table.Add(clip); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// LoadTable reads and parses a clip table file
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip table %s: %w", path, err)
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReloadResult lists what a reload did, by clip name
type ReloadResult struct {
	Updated []string
	Added   []string
	Missing []string
}

// Reload applies a new version of the table file. Clips that already exist are
// modified in place, so their identity is kept and every player sharing them
// picks up the change. Clips absent from data are left in the table and listed in
// Missing. If data is invalid the table is not touched.
func (t *Table) Reload(data []byte) (ReloadResult, error) {
	var result ReloadResult

	file, err := decodeTableFile(data)
	if err != nil {
		return result, err
	}

	present := make(map[string]bool, len(file.Clips))
	for _, def := range file.Clips {
		present[def.Name] = true

		clip, exists := t.byName[def.Name]
		if !exists {
			clip, err = def.Build()
			if err != nil {
				return result, err
			}
			if err := t.Add(clip); err != nil {
				return result, err
			}
			result.Added = append(result.Added, def.Name)
			continue
		}

		if !slices.Equal(clip.frames, def.Frames) {
			clip.SetFrames(def.Frames)
		}
		clip.SetDelay(def.delay())
		clip.SetLooped(def.looped())
		result.Updated = append(result.Updated, def.Name)
	}

	for _, clip := range t.order {
		if !present[clip.name] {
			result.Missing = append(result.Missing, clip.name)
		}
	}

	log.Printf("[anim] Reloaded clip table (updated=%d, added=%d, missing=%d)",
		len(result.Updated), len(result.Added), len(result.Missing))
	for _, name := range result.Missing {
		log.Printf("[anim] Warning: clip %q no longer defined, keeping previous version", name)
	}

	return result, nil
}

// ReloadFile reads path and applies it with Reload
func (t *Table) ReloadFile(path string) (ReloadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReloadResult{}, fmt.Errorf("failed to read clip table %s: %w", path, err)
	}
	result, err := t.Reload(data)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
