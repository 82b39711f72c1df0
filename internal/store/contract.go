package store

import "context"

// Persistence интерфейс коллаборатора для снапшотов
// Backed by Postgres (infra/storage/snapshot) or a local file
// (infra/storage/filesnapshot); injected at construction time,
// never a hidden global.
type Persistence interface {
	// Save persists the serialized value under the key
	Save(ctx context.Context, key string, data []byte) error
	// Load returns the stored value; found=false when absent
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
