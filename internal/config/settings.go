package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/noot-app/nut/internal/store"
)

var (
	// ErrNoSettings is returned when the settings file does not exist yet
	ErrNoSettings = errors.New("no configurations created")

	// ErrNoCurrent is returned when no profile is selected
	ErrNoCurrent = errors.New("no configuration set")

	// ErrUnknownProfile is returned for a profile name not present in the settings
	ErrUnknownProfile = errors.New("configuration does not exist")

	// ErrProfileExists is returned when adding a profile under a name already in use
	ErrProfileExists = errors.New("configuration already exists")
)

// Profile names the record files of one data set
type Profile struct {
	Name string `yaml:"name"`
	Item string `yaml:"item"`
	Meal string `yaml:"meal"`
	Diet string `yaml:"diet"`
}

// NewProfile creates a profile whose files live in <dataDir>/<name>-data
func NewProfile(name, dataDir string) (Profile, error) {
	if name == "" {
		return Profile{}, errors.New("configuration name cannot be empty")
	}

	dir, err := filepath.Abs(filepath.Join(dataDir, name+"-data"))
	if err != nil {
		return Profile{}, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	return Profile{
		Name: name,
		Item: filepath.Join(dir, "items.yaml"),
		Meal: filepath.Join(dir, "meals.yaml"),
		Diet: filepath.Join(dir, "diets.yaml"),
	}, nil
}

// Paths returns the record files of the profile.
// Profiles written before diets existed get a diets file next to their items.
func (p Profile) Paths() store.Paths {
	diet := p.Diet
	if diet == "" && p.Item != "" {
		diet = filepath.Join(filepath.Dir(p.Item), "diets.yaml")
	}
	return store.Paths{
		Items: p.Item,
		Meals: p.Meal,
		Diets: diet,
	}
}

// Settings is the content of the settings file
type Settings struct {
	Current string    `yaml:"current"`
	Configs []Profile `yaml:"configs"`
}

// LoadSettings reads the settings file at path
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSettings
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if s.Configs == nil {
		s.Configs = []Profile{}
	}
	return &s, nil
}

// Save writes the settings to path
func (s *Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *Settings) index(name string) int {
	return slices.IndexFunc(s.Configs, func(p Profile) bool { return p.Name == name })
}

// Add appends profile and optionally selects it
func (s *Settings) Add(profile Profile, setCurrent bool) error {
	if profile.Name == "" {
		return errors.New("configuration name cannot be empty")
	}
	if s.index(profile.Name) >= 0 {
		return fmt.Errorf("%q: %w", profile.Name, ErrProfileExists)
	}

	s.Configs = append(s.Configs, profile)
	if setCurrent {
		s.Current = profile.Name
	}
	return nil
}

// SetCurrent selects the profile called name
func (s *Settings) SetCurrent(name string) error {
	if s.index(name) < 0 {
		return fmt.Errorf("%q: %w", name, ErrUnknownProfile)
	}
	s.Current = name
	return nil
}

// Remove deletes the profile called name. wasCurrent reports whether the
// selection was cleared as a result.
func (s *Settings) Remove(name string) (wasCurrent bool, err error) {
	i := s.index(name)
	if i < 0 {
		return false, fmt.Errorf("%q: %w", name, ErrUnknownProfile)
	}

	s.Configs = slices.Delete(s.Configs, i, i+1)
	if s.Current == name {
		s.Current = ""
		return true, nil
	}
	return false, nil
}

// CurrentProfile returns the selected profile
func (s *Settings) CurrentProfile() (*Profile, error) {
	if s.Current == "" {
		return nil, ErrNoCurrent
	}
	i := s.index(s.Current)
	if i < 0 {
		return nil, fmt.Errorf("current configuration %q: %w", s.Current, ErrUnknownProfile)
	}
	p := s.Configs[i]
	return &p, nil
}

// Names lists the profile names in order
func (s *Settings) Names() []string {
	names := make([]string, 0, len(s.Configs))
	for _, p := range s.Configs {
		names = append(names, p.Name)
	}
	return names
}
