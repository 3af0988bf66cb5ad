package types

import "errors"

// Config holds backend selection and parameters for opening a RecordStore.
type Config struct {
	Backend   string `json:"backend" yaml:"backend"`
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	RedisAddr string `json:"redis_addr" yaml:"redis_addr"`
	RedisDB   int    `json:"redis_db" yaml:"redis_db"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrRedisAddrMissing = errors.New("redis backend requires redis_addr")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
	BackendRedis:  true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendRedis && c.RedisAddr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
