package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/reactdict"
)

// Ensure SeedFile implements reactdict.SeedStore at compile time.
var _ reactdict.SeedStore = (*SeedFile)(nil)

// SeedFile stores seed definitions as a JSON array in a single file.
// Saves are written to path.tmp and renamed over path, so readers never
// see a partially written file.
type SeedFile struct {
	mu   sync.Mutex
	path string
}

// NewSeedFile creates a SeedFile backed by the file at path.
func NewSeedFile(path string) *SeedFile {
	return &SeedFile{path: path}
}

// Path returns the location of the seed file.
func (f *SeedFile) Path() string {
	return f.path
}

// LoadDefinitions reads all definitions from the file.
// A missing file yields no definitions.
func (f *SeedFile) LoadDefinitions(ctx context.Context) ([]*reactdict.Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var defs []*reactdict.Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, reactdict.Errorf(reactdict.EINVALID, "invalid seed file %s: %v", f.path, err)
	}
	return defs, nil
}

// SaveDefinitions replaces the file contents with defs.
func (f *SeedFile) SaveDefinitions(ctx context.Context, defs []*reactdict.Definition) error {
	if defs == nil {
		defs = []*reactdict.Definition{}
	}
	data, err := json.MarshalIndent(defs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode seed definitions: %w", err)
	}
	data = append(data, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
