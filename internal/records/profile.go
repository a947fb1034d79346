package records

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmcdole/walls/internal/domain"
)

// LoadProfile returns the stored profile; ok is false when none was saved.
func (s *Store) LoadProfile() (domain.Profile, bool, error) {
	raw, ok, err := s.read(KeyProfile)
	if err != nil {
		s.logger.Warn("failed to load profile", "error", err)
		return domain.Profile{}, false, err
	}
	if !ok {
		return domain.Profile{}, false, nil
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		err = malformedErr(KeyProfile, err)
		s.logger.Warn("failed to load profile", "error", err)
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

// SaveProfile trims and stores p, replacing any previous profile.
// The name must not be blank.
func (s *Store) SaveProfile(p domain.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if p.Name == "" {
		return fmt.Errorf("%w: please enter your name", domain.ErrInvalidProfile)
	}

	if err := s.writeJSON(KeyProfile, p); err != nil {
		s.logger.Error("save profile failed", "error", err)
		return err
	}

	s.logger.Info("profile updated")
	return nil
}
