package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig represents ~/.rdsq/config.yaml.
type UserConfig struct {
	CurrentProfile string             `yaml:"current-profile" json:"current-profile"`
	Profiles       map[string]Profile `yaml:"profiles" json:"profiles"`
}

// Profile represents a single named configuration profile.
type Profile struct {
	AWSProfile      string `yaml:"aws-profile,omitempty" json:"aws-profile,omitempty"`
	Region          string `yaml:"region,omitempty" json:"region,omitempty"`
	Cluster         string `yaml:"cluster,omitempty" json:"cluster,omitempty"`
	User            string `yaml:"user,omitempty" json:"user,omitempty"`
	Database        string `yaml:"database,omitempty" json:"database,omitempty"`
	Format          string `yaml:"format,omitempty" json:"format,omitempty"`
	EndpointURL     string `yaml:"endpoint-url,omitempty" json:"endpoint-url,omitempty"`
	AccessKeyID     string `yaml:"access-key-id,omitempty" json:"access-key-id,omitempty"`
	SecretAccessKey string `yaml:"secret-access-key,omitempty" json:"secret-access-key,omitempty"`
}

// ActiveProfile returns the profile to use based on the override or current-profile.
// A missing current-profile yields an empty profile; a missing override is an error.
func (c *UserConfig) ActiveProfile(override string) (Profile, error) {
	name := c.CurrentProfile
	if override != "" {
		name = override
	}
	if p, ok := c.Profiles[name]; ok {
		return p, nil
	}
	if override != "" {
		return Profile{}, fmt.Errorf("profile %q not found", override)
	}
	return Profile{}, nil
}

// ConfigDir returns the path to ~/.rdsq/.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rdsq")
}

// ConfigPath returns the path to ~/.rdsq/config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadUserConfig reads ~/.rdsq/config.yaml.
func LoadUserConfig() (*UserConfig, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return &cfg, nil
}

// loadUserConfigOrEmpty treats a missing config file as an empty one.
func loadUserConfigOrEmpty() (*UserConfig, error) {
	cfg, err := LoadUserConfig()
	if errors.Is(err, fs.ErrNotExist) {
		return &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}, nil
	}
	return cfg, err
}

// SaveUserConfig writes ~/.rdsq/config.yaml.
func SaveUserConfig(cfg *UserConfig) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o600)
}
