package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rajveda/jyotish/internal/model"
)

// FileStore persists profiles as one JSON document file.
type FileStore struct {
	path string
}

// NewFileStore creates a file store, initializing an empty document
// when the file does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write([]model.Profile{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) read() ([]model.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read profile store: %w", err)
	}
	var profiles []model.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profile store: %w", err)
	}
	return profiles, nil
}

func (s *FileStore) write(profiles []model.Profile) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write profile store: %w", err)
	}
	return nil
}

// Create persists a new profile with a uuid id.
func (s *FileStore) Create(name string, birth model.BirthDetails) (*model.Profile, error) {
	profiles, err := s.read()
	if err != nil {
		return nil, err
	}
	profile := model.Profile{
		ID:           uuid.NewString(),
		Name:         name,
		BirthDetails: birth,
	}
	profiles = append(profiles, profile)
	if err := s.write(profiles); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all stored profiles.
func (s *FileStore) List() ([]model.Profile, error) {
	return s.read()
}

// GetByName finds a profile by case-insensitive name.
func (s *FileStore) GetByName(name string) (*model.Profile, error) {
	profiles, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if strings.EqualFold(profiles[i].Name, name) {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

// Upsert replaces the stored profile with the same id, or appends it.
func (s *FileStore) Upsert(profile *model.Profile) error {
	profiles, err := s.read()
	if err != nil {
		return err
	}
	replaced := false
	for i := range profiles {
		if profiles[i].ID == profile.ID {
			profiles[i] = *profile
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, *profile)
	}
	return s.write(profiles)
}
