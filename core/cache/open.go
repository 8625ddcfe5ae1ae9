package cache

import (
	"errors"
	"fmt"

	"wardrobe-manager/core/storage"

	"gorm.io/gorm"
)

// Backend names accepted by OpenStore.
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendStorage  = "storage"
)

// Backends carries the optional dependencies of the persistent stores.
type Backends struct {
	DB     *gorm.DB
	Client storage.Client
	Bucket string
	Prefix string
}

// OpenStore builds the store named by kind. An empty kind selects memory.
func OpenStore(kind string, b Backends) (Store, error) {
	switch kind {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendDatabase:
		if b.DB == nil {
			return nil, errors.New("database cache backend requires a database connection")
		}
		return NewDatabaseStore(b.DB)
	case BackendStorage:
		if b.Client == nil || b.Bucket == "" {
			return nil, errors.New("storage cache backend requires a storage client and bucket")
		}
		return NewObjectStore(b.Client, b.Bucket, b.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", kind)
	}
}
