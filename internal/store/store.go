package store

import (
	"errors"

	"github.com/rajveda/jyotish/internal/model"
)

// ErrProfileNotFound signals a lookup by an unknown profile name.
var ErrProfileNotFound = errors.New("profile not found")

// Store is the profile repository interface.
type Store interface {
	// Create persists a new profile with a fresh id.
	Create(name string, birth model.BirthDetails) (*model.Profile, error)

	// List returns all stored profiles.
	List() ([]model.Profile, error)

	// GetByName finds a profile by case-insensitive name.
	GetByName(name string) (*model.Profile, error)

	// Upsert replaces the stored profile with the same id, or appends it.
	Upsert(profile *model.Profile) error
}
