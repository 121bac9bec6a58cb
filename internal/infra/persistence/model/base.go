package model

import (
	"github.com/google/uuid"
)

// newIDIfNil assigns a fresh UUID to id when the caller did not set one.
// IDs are generated in the application so the schema stays portable between PostgreSQL and SQLite.
func newIDIfNil(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
