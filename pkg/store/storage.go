package store

import (
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// profileKey is the single storage key the profile snapshot lives under.
const profileKey = "profile"

// Storage is the blob persistence contract: get/set over the serialized
// profile. Implementations must make Write atomic per key.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Has(key string) bool
}

// LoadStorage creates a diskv-backed Storage rooted at the configured path.
func LoadStorage(cfg Config) (Storage, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	return &diskvStorage{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type diskvStorage struct {
	d        *diskv.Diskv
	basePath string
}

func (s *diskvStorage) BasePath() string {
	return s.basePath
}

func (s *diskvStorage) Read(key string) ([]byte, error) {
	return s.d.Read(key)
}

func (s *diskvStorage) Write(key string, data []byte) error {
	return s.d.Write(key, data)
}

func (s *diskvStorage) Has(key string) bool {
	return s.d.Has(key)
}

// Memory is an in-process Storage for tests and ephemeral sessions.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// FailNext makes the next Write return this error once.
	FailNext error
	// Writes counts successful Write calls.
	Writes int
}

// NewMemory returns an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	m.Writes++
	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok
}
