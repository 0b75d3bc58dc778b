package test

import (
	"os"
	"path/filepath"
)

// Tree is a throwaway project layout rooted at Dir.
type Tree struct {
	Dir string
}

// NewTree creates a temporary directory; callers remove it with Cleanup.
func NewTree(pattern string) (*Tree, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return nil, err
	}
	return &Tree{Dir: dir}, nil
}

// Path joins elem onto the tree root.
func (t *Tree) Path(elem ...string) string {
	return filepath.Join(append([]string{t.Dir}, elem...)...)
}

// Write creates every file in files (relative path -> content), making parent
// directories as needed.
func (t *Tree) Write(files map[string]string) error {
	for rel, content := range files {
		p := t.Path(rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) Read(rel string) (string, error) {
	b, err := os.ReadFile(t.Path(rel))
	return string(b), err
}

func (t *Tree) Cleanup() error {
	return os.RemoveAll(t.Dir)
}
