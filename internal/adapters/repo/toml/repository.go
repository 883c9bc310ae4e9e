package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/bnema/bonita-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

type ProfileRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(cfg *viper.Viper) (*ProfileRepository, error) {
	path, err := pathFromConfig(cfg, ProfilesPathKey, "profiles.toml")
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toProfileSchema(profile)
	updated := false
	for i := range file.Profiles {
		if file.Profiles[i].ID == encoded.ID {
			file.Profiles[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Profiles = append(file.Profiles, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *ProfileRepository) Delete(ctx context.Context, id domain.ProfileID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Profiles[:0]
	found := false
	for _, entry := range file.Profiles {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrProfileNotFound
	}
	file.Profiles = kept

	return writeTOMLFile(r.path, file)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Profile{}, err
	}

	for _, entry := range file.Profiles {
		if entry.ID == string(id) {
			return fromProfileSchema(entry), nil
		}
	}

	return domain.Profile{}, domain.ErrProfileNotFound
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		profiles = append(profiles, fromProfileSchema(entry))
	}

	return profiles, nil
}

func (r *ProfileRepository) readSchema() (profilesFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := profilesFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return profilesFileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file profilesFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return profilesFileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return profilesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toProfileSchema(profile domain.Profile) profileSchema {
	processes := make([]string, 0, len(profile.RequiredProcesses))
	processes = append(processes, profile.RequiredProcesses...)

	return profileSchema{
		ID:                string(profile.ID),
		BaseURL:           profile.BaseURL,
		Username:          profile.Username,
		SecretRef:         profile.SecretRef,
		RequiredProcesses: processes,
		UpdatedAt:         formatTime(profile.UpdatedAt),
	}
}

func fromProfileSchema(schema profileSchema) domain.Profile {
	processes := make([]string, 0, len(schema.RequiredProcesses))
	processes = append(processes, schema.RequiredProcesses...)

	return domain.Profile{
		ID:                domain.ProfileID(schema.ID),
		BaseURL:           schema.BaseURL,
		Username:          schema.Username,
		SecretRef:         schema.SecretRef,
		RequiredProcesses: processes,
		UpdatedAt:         parseTime(schema.UpdatedAt),
	}
}
