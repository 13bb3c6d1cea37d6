package jsonstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/tada/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking: two processes writing at once means last writer wins.
// Saves go through a temp file + rename so a crash never leaves a torn file.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.json"

const schemaURL = "todos.schema.json"

//go:embed todos.schema.json
var schemaJSON string

// ErrCorrupt is returned by Load when the file exists but does not hold a todo list.
var ErrCorrupt = errors.New("corrupt todo file")

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.AssertFormat = true
		if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Store is a handle on one todo file. Every command loads, mutates, then saves.
type Store struct {
	path     string
	validate bool
}

// Option tunes a Store.
type Option func(*Store)

// WithoutValidation skips the schema check on Load.
func WithoutValidation() Option {
	return func(s *Store) { s.validate = false }
}

// New returns a store backed by path. An empty path means DefaultPath.
func New(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	s := &Store{path: path, validate: true}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DefaultPath is todos.json in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load reads the whole list. A missing or empty file is an empty list.
// Anything that does not decode as a todo list wraps ErrCorrupt.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return []model.Item{}, nil
	}

	if s.validate {
		if err := validate(b); err != nil {
			return nil, err
		}
	}

	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrCorrupt, err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func validate(b []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("%w: json unmarshal: %v", ErrCorrupt, err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

// Save replaces the file with the full list, pretty-printed.
func (s *Store) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if err := writeAtomic(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
