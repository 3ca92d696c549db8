package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSettingsFile is the settings file name placed in the user's home directory
const DefaultSettingsFile = ".nutcfg.yaml"

// FileReader abstracts file access so .env loading can be tested
type FileReader interface {
	Open(filename string) (io.ReadCloser, error)
	Stat(filename string) (os.FileInfo, error)
}

type osFileReader struct{}

func (osFileReader) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filename)
}

func (osFileReader) Stat(filename string) (os.FileInfo, error) {
	return os.Stat(filename)
}

// Config holds the process level configuration of the CLI
type Config struct {
	// SettingsPath is the YAML file holding the named profiles
	SettingsPath string

	// DataDir is where new profiles place their record files
	DataDir string

	// Environment is "production" unless ENV says otherwise
	Environment string
}

// Load reads configuration from environment variables and a .env file in the working directory
func Load() *Config {
	return LoadWithFileReader(osFileReader{})
}

// LoadWithFileReader is Load with injectable file access
func LoadWithFileReader(reader FileReader) *Config {
	loadEnvFileWithReader(reader)

	return &Config{
		SettingsPath: getEnv("NUTRITION_CONFIG", defaultSettingsPath()),
		DataDir:      getEnv("NUTRITION_DATA_DIR", "."),
		Environment:  getEnv("ENV", "production"),
	}
}

// IsDevelopment reports whether ENV=development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSettingsFile
	}
	return filepath.Join(home, DefaultSettingsFile)
}

// loadEnvFileWithReader sets variables from .env that are not already set in the environment
func loadEnvFileWithReader(reader FileReader) {
	if _, err := reader.Stat(".env"); err != nil {
		return
	}

	f, err := reader.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
