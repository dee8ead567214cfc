package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV is a file-based KV implementation. Each key is stored as one JSON
// file under the data directory. Writes are atomic: value goes to a temp
// file first, then rename.
type FileKV struct {
	mu      sync.Mutex
	dataDir string
}

// NewFileKV creates a FileKV rooted at dataDir. The directory is created on
// first write.
func NewFileKV(dataDir string) *FileKV {
	return &FileKV{dataDir: dataDir}
}

// Get returns the value for key and whether it was present.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set stores the value for key, replacing any previous value.
func (f *FileKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.dataDir, 0700); err != nil {
		return err
	}

	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the base data directory.
func (f *FileKV) DataDir() string {
	return f.dataDir
}

// path maps a key to a file name. Keys are fixed internal identifiers, but
// path separators are stripped anyway so a key can never escape the data
// directory.
func (f *FileKV) path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(key) + ".json"
	return filepath.Join(f.dataDir, name)
}

var _ KV = (*FileKV)(nil)
