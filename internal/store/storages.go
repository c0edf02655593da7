package store

import (
	"github.com/MKhiriev/habit-tracker/internal/logger"
)

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, ids, log),
	}
}
