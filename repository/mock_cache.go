package repository

import "sync"

// MockCache is an in-process CacheRepository for tests and cache-less
// deployments.
type MockCache struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMockCache creates an empty MockCache.
func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

// Get returns the cached value for key, if present.
func (m *MockCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	return val, ok
}

// Set stores value under key.
func (m *MockCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
