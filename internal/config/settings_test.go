package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	dir := t.TempDir()

	p, err := NewProfile("home", dir)
	require.NoError(t, err)

	assert.Equal(t, "home", p.Name)
	assert.Equal(t, filepath.Join(dir, "home-data", "items.yaml"), p.Item)
	assert.Equal(t, filepath.Join(dir, "home-data", "meals.yaml"), p.Meal)
	assert.Equal(t, filepath.Join(dir, "home-data", "diets.yaml"), p.Diet)

	paths := p.Paths()
	assert.Equal(t, p.Item, paths.Items)
	assert.Equal(t, p.Meal, paths.Meals)
	assert.Equal(t, p.Diet, paths.Diets)

	_, err = NewProfile("", dir)
	assert.Error(t, err)
}

func TestNewProfile_RelativeDataDir(t *testing.T) {
	p, err := NewProfile("work", ".")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p.Item))
}

func TestProfile_PathsWithoutDiet(t *testing.T) {
	p := Profile{Name: "old", Item: "/data/old-data/items.yaml", Meal: "/data/old-data/meals.yaml"}
	assert.Equal(t, "/data/old-data/diets.yaml", p.Paths().Diets)
}

func TestSettings(t *testing.T) {
	s := &Settings{}

	require.NoError(t, s.Add(Profile{Name: "home"}, false))
	require.NoError(t, s.Add(Profile{Name: "work"}, true))
	assert.Equal(t, "work", s.Current)
	assert.Equal(t, []string{"home", "work"}, s.Names())

	t.Run("duplicate", func(t *testing.T) {
		assert.ErrorIs(t, s.Add(Profile{Name: "home"}, false), ErrProfileExists)
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Error(t, s.Add(Profile{}, false))
	})

	t.Run("set current", func(t *testing.T) {
		require.NoError(t, s.SetCurrent("home"))
		p, err := s.CurrentProfile()
		require.NoError(t, err)
		assert.Equal(t, "home", p.Name)

		assert.ErrorIs(t, s.SetCurrent("gym"), ErrUnknownProfile)
		assert.Equal(t, "home", s.Current)
	})

	t.Run("remove other", func(t *testing.T) {
		wasCurrent, err := s.Remove("work")
		require.NoError(t, err)
		assert.False(t, wasCurrent)
		assert.Equal(t, "home", s.Current)
	})

	t.Run("remove current", func(t *testing.T) {
		wasCurrent, err := s.Remove("home")
		require.NoError(t, err)
		assert.True(t, wasCurrent)
		assert.Empty(t, s.Current)

		_, err = s.CurrentProfile()
		assert.ErrorIs(t, err, ErrNoCurrent)
	})

	t.Run("remove unknown", func(t *testing.T) {
		_, err := s.Remove("home")
		assert.ErrorIs(t, err, ErrUnknownProfile)
	})
}

func TestSettings_CurrentMissingFromConfigs(t *testing.T) {
	s := &Settings{Current: "ghost"}
	_, err := s.CurrentProfile()
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.yaml")

	_, err := LoadSettings(path)
	assert.ErrorIs(t, err, ErrNoSettings)

	s := &Settings{}
	p, err := NewProfile("home", t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Add(p, true))
	require.NoError(t, s.Save(path))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettings_NullCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `current: null
configs:
- name: home
  item: /data/home-data/items.yaml
  meal: /data/home-data/meals.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Empty(t, s.Current)
	require.Len(t, s.Configs, 1)
	assert.Equal(t, "/data/home-data/diets.yaml", s.Configs[0].Paths().Diets)
}

func TestLoadSettings_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("configs: {"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSettings)
}
