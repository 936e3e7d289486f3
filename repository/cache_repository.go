package repository

// CacheRepository memoizes calculation results keyed by their input.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
