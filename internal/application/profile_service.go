package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/bonita-cli/bonita"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/bnema/bonita-cli/internal/ports"
)

type ProfileService struct {
	repo  ports.ProfileRepository
	store ports.SecretStore
	clock ports.Clock
}

func NewProfileService(repo ports.ProfileRepository, store ports.SecretStore, clock ports.Clock) *ProfileService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ProfileService{
		repo:  repo,
		store: store,
		clock: clock,
	}
}

// SetProfile creates or updates a profile. Empty command fields keep the
// stored values. A password is written to the secret store before the
// profile is saved and rolled back if the save fails.
func (s *ProfileService) SetProfile(ctx context.Context, cmd SetProfileCommand) (domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Profile{}, fmt.Errorf("get profile by id: %w", err)
		}
		profile = domain.Profile{ID: cmd.ID}
	}
	original := profile

	if cmd.BaseURL != "" {
		profile.BaseURL = strings.TrimRight(strings.TrimSpace(cmd.BaseURL), "/")
	}
	if cmd.Username != "" {
		profile.Username = cmd.Username
	}
	if cmd.RequiredProcesses != nil {
		profile.RequiredProcesses = cmd.RequiredProcesses
	}
	profile.NormalizeProcesses()
	for _, name := range profile.RequiredProcesses {
		if name == bonita.RegistryProcessName {
			return domain.Profile{}, fmt.Errorf("invalid profile %s: %q is checked on every connect and cannot be listed", cmd.ID, name)
		}
	}
	profile.UpdatedAt = s.clock.Now()

	if err := profile.Validate(); err != nil {
		return domain.Profile{}, fmt.Errorf("invalid profile %s: %w", cmd.ID, err)
	}

	if cmd.Password == "" {
		if err := s.repo.Save(ctx, profile); err != nil {
			return domain.Profile{}, fmt.Errorf("save profile: %w", err)
		}
		return profile, nil
	}

	secretKey := domain.PasswordSecretRef(profile.ID)
	previous, hadPrevious, err := s.currentSecret(ctx, original.SecretRef, secretKey)
	if err != nil {
		return domain.Profile{}, err
	}

	if err := s.store.Put(ctx, secretKey, cmd.Password); err != nil {
		return domain.Profile{}, fmt.Errorf("store profile password: %w", err)
	}
	profile.SecretRef = secretKey

	if err := s.repo.Save(ctx, profile); err != nil {
		if rollbackErr := s.restoreSecret(ctx, secretKey, previous, hadPrevious); rollbackErr != nil {
			return domain.Profile{}, fmt.Errorf("save profile and rollback stored password: %w", errors.Join(err, rollbackErr))
		}
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	if original.SecretRef != "" && original.SecretRef != secretKey {
		if err := s.store.Delete(ctx, original.SecretRef); err != nil {
			var rollbackErr error
			if restoreErr := s.repo.Save(ctx, original); restoreErr != nil {
				rollbackErr = errors.Join(rollbackErr, restoreErr)
			}
			if secretErr := s.restoreSecret(ctx, secretKey, previous, hadPrevious); secretErr != nil {
				rollbackErr = errors.Join(rollbackErr, secretErr)
			}
			if rollbackErr != nil {
				return domain.Profile{}, fmt.Errorf("delete previous profile password and rollback profile update: %w", errors.Join(err, rollbackErr))
			}
			return domain.Profile{}, fmt.Errorf("delete previous profile password: %w", err)
		}
	}

	return profile, nil
}

// currentSecret reads the value about to be overwritten at key, if the
// profile already points there.
func (s *ProfileService) currentSecret(ctx context.Context, currentRef, key string) (string, bool, error) {
	if currentRef != key {
		return "", false, nil
	}

	value, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read current profile password: %w", err)
	}

	return value, true, nil
}

func (s *ProfileService) restoreSecret(ctx context.Context, key, previous string, hadPrevious bool) error {
	if hadPrevious {
		return s.store.Put(ctx, key, previous)
	}
	return s.store.Delete(ctx, key)
}

func (s *ProfileService) RemoveProfile(ctx context.Context, id domain.ProfileID) error {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get profile by id: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if profile.SecretRef == "" {
		return nil
	}

	if err := s.store.Delete(ctx, profile.SecretRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		if restoreErr := s.repo.Save(ctx, profile); restoreErr != nil {
			return fmt.Errorf("delete profile password and restore profile: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete profile password: %w", err)
	}

	return nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id domain.ProfileID) (domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile by id: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})

	return profiles, nil
}

// ResolveSettings builds the connection settings for a profile, applying
// override values on top. A complete override works without a stored
// profile.
func (s *ProfileService) ResolveSettings(ctx context.Context, id domain.ProfileID, override SettingsOverride) (bonita.Settings, domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) || !override.complete() {
			return bonita.Settings{}, domain.Profile{}, fmt.Errorf("get profile by id: %w", err)
		}
		profile = domain.Profile{ID: id}
	}

	settings := bonita.Settings{
		BaseURL:  firstNonEmpty(override.BaseURL, profile.BaseURL),
		Username: firstNonEmpty(override.Username, profile.Username),
		Password: override.Password,
	}

	if settings.Password == "" && profile.SecretRef != "" {
		password, err := s.store.Get(ctx, profile.SecretRef)
		if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return bonita.Settings{}, domain.Profile{}, fmt.Errorf("read profile password: %w", err)
		}
		settings.Password = password
	}

	return settings, profile, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
