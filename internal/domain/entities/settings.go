package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the location of the accounts file.
	EnvConfigPath = "GITBRIDGE_CONFIG"
	// EnvSettingsPath overrides the location of the settings file.
	EnvSettingsPath = "GITBRIDGE_SETTINGS"

	SecretBackendFile    = "file"
	SecretBackendKeyring = "keyring"

	GitBackendExec  = "exec"
	GitBackendGoGit = "go-git"

	DefaultProvider    = "github"
	DefaultGitBinary   = "git"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultGitTimeout  = 30 * time.Minute

	configDirName    = ".gitbridge"
	configFileName   = "config.json"
	settingsFileName = "settings.yaml"
)

// Settings is the runtime configuration of gitbridge. It is built once at
// startup and injected wherever it is needed.
type Settings struct {
	// ConfigPath is the accounts file. Never read from the settings file.
	ConfigPath string `yaml:"-"`
	// SettingsPath is where these settings were loaded from, empty for defaults.
	SettingsPath string `yaml:"-"`

	Provider         string        `yaml:"provider"`
	SecretBackend    string        `yaml:"secret_backend"`
	GitBackend       string        `yaml:"git_backend"`
	GitBinary        string        `yaml:"git_binary"`
	APIURL           string        `yaml:"api_url"`
	HTTPTimeout      time.Duration `yaml:"http_timeout"`
	GitTimeout       time.Duration `yaml:"git_timeout"`
	WorkDir          string        `yaml:"work_dir"`
	PrivateByDefault bool          `yaml:"private_by_default"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ConfigPath:    DefaultConfigPath(),
		Provider:      DefaultProvider,
		SecretBackend: SecretBackendFile,
		GitBackend:    GitBackendExec,
		GitBinary:     DefaultGitBinary,
		HTTPTimeout:   DefaultHTTPTimeout,
		GitTimeout:    DefaultGitTimeout,
	}
}

// NewSettingsFromEnvironment resolves the accounts and settings paths from the
// environment and loads the settings file when there is one.
func NewSettingsFromEnvironment() (*Settings, error) {
	path, err := FindSettingsFile()
	if err != nil {
		logger.Debugf("No settings file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}
	return NewSettings(path)
}

// NewSettings reads and parses a YAML settings file, expanding environment
// variable references and filling defaults for omitted values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to read settings file: %w", err)}
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to parse settings file: %w", unmarshalErr)}
	}
	settings.SettingsPath = path

	settings.expand()
	settings.fillDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, &ConfigError{Path: path, Err: validateErr}
	}
	return settings, nil
}

// Validate checks the backend selections and timeouts.
func (s *Settings) Validate() error {
	switch s.SecretBackend {
	case SecretBackendFile, SecretBackendKeyring:
	default:
		return fmt.Errorf(
			"secret_backend must be %q or %q, got %q",
			SecretBackendFile, SecretBackendKeyring, s.SecretBackend,
		)
	}

	switch s.GitBackend {
	case GitBackendExec, GitBackendGoGit:
	default:
		return fmt.Errorf(
			"git_backend must be %q or %q, got %q",
			GitBackendExec, GitBackendGoGit, s.GitBackend,
		)
	}

	if s.HTTPTimeout < 0 || s.GitTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}

func (s *Settings) expand() {
	s.Provider = expandEnv(s.Provider)
	s.SecretBackend = expandEnv(s.SecretBackend)
	s.GitBackend = expandEnv(s.GitBackend)
	s.GitBinary = expandEnv(s.GitBinary)
	s.APIURL = expandEnv(s.APIURL)
	s.WorkDir = expandEnv(s.WorkDir)
}

func (s *Settings) fillDefaults() {
	defaults := DefaultSettings()
	if s.Provider == "" {
		s.Provider = defaults.Provider
	}
	if s.SecretBackend == "" {
		s.SecretBackend = defaults.SecretBackend
	}
	if s.GitBackend == "" {
		s.GitBackend = defaults.GitBackend
	}
	if s.GitBinary == "" {
		s.GitBinary = defaults.GitBinary
	}
	if s.HTTPTimeout == 0 {
		s.HTTPTimeout = defaults.HTTPTimeout
	}
	if s.GitTimeout == 0 {
		s.GitTimeout = defaults.GitTimeout
	}
}

// DefaultConfigPath returns the accounts file path: $GITBRIDGE_CONFIG or
// ~/.gitbridge/config.json.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(homeDir, configDirName, configFileName)
}

// FindSettingsFile returns $GITBRIDGE_SETTINGS when set, otherwise the first
// settings file found in the standard locations.
func FindSettingsFile() (string, error) {
	if path := os.Getenv(EnvSettingsPath); path != "" {
		return path, nil
	}

	locations := []string{".gitbridge.yaml", ".gitbridge.yml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(
			locations,
			filepath.Join(homeDir, configDirName, settingsFileName),
			filepath.Join(homeDir, ".config", "gitbridge", settingsFileName),
		)
	}

	for _, loc := range locations {
		if _, statErr := os.Stat(loc); statErr == nil {
			return loc, nil
		}
	}
	return "", errors.New("settings file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := expandEnv(raw)

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
