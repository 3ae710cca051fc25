package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
)

type Manager struct {
	// Override to replace all other configs
	OverrideConfig *Config
	// Config to use if no config file is found alongside the input
	DefaultConfig Config
	// Cache to store loaded configs
	ConfigMap map[string]Config
}

func NewManager() *Manager {
	return &Manager{ConfigMap: make(map[string]Config)}
}

// UseOverride updates the Manager to use the config at the given path in place
// of any other config files that would be loaded when calling Get
func (c *Manager) UseOverride(configPath string) error {
	config, configErr := tryLoadConfig(configPath)
	if configErr != nil {
		return configErr
	}
	c.OverrideConfig = &config

	return nil
}

// Get returns the appropriate config to use based on the targetPath, which is
// either the file versions are being read from or a directory
func (c *Manager) Get(targetPath string) *Config {
	if c.OverrideConfig != nil {
		return c.OverrideConfig
	}

	configPath, err := normalizeConfigLoadPath(targetPath)
	if err != nil {
		cmdlogger.Debugf("Can't find config path: %s", err)

		return &c.DefaultConfig
	}

	if config, alreadyExists := c.ConfigMap[configPath]; alreadyExists {
		return &config
	}

	config, configErr := tryLoadConfig(configPath)
	if configErr == nil {
		cmdlogger.Infof("Loaded filter from: %s", config.LoadPath)
	} else {
		// anything other than the config file not existing is most likely due to an invalid config file
		if !errors.Is(configErr, os.ErrNotExist) {
			cmdlogger.Errorf("Ignored invalid config file at %s because: %v", configPath, configErr)
		}
		// If config doesn't exist, use the default config
		config = c.DefaultConfig
	}
	c.ConfigMap[configPath] = config

	return &config
}

// GetUnusedIgnoreEntries returns the ignore entries that did not match any
// version, keyed by the file they were loaded from
func (c *Manager) GetUnusedIgnoreEntries() map[string][]*IgnoreEntry {
	m := make(map[string][]*IgnoreEntry)

	for _, config := range c.ConfigMap {
		unusedEntries := config.UnusedIgnoredVersions()

		if len(unusedEntries) > 0 {
			m[config.LoadPath] = unusedEntries
		}
	}

	if c.OverrideConfig != nil {
		unusedEntries := c.OverrideConfig.UnusedIgnoredVersions()

		if len(unusedEntries) > 0 {
			m[c.OverrideConfig.LoadPath] = unusedEntries
		}
	}

	return m
}

// Finds the containing folder of `target`, then appends ConfigName
func normalizeConfigLoadPath(target string) (string, error) {
	stat, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("failed to stat target: %w", err)
	}

	var containingFolder string
	if !stat.IsDir() {
		containingFolder = filepath.Dir(target)
	} else {
		containingFolder = target
	}
	configPath := filepath.Join(containingFolder, ConfigName)

	return configPath, nil
}

// tryLoadConfig attempts to parse the config file at the given path as TOML,
// returning the Config object if successful or otherwise the error
func tryLoadConfig(configPath string) (Config, error) {
	config := Config{}
	m, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return Config{}, err
	}

	unknownKeys := m.Undecoded()

	if len(unknownKeys) > 0 {
		keys := make([]string, 0, len(unknownKeys))

		for _, key := range unknownKeys {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown keys in config file: %s", strings.Join(keys, ", "))
	}

	if err := config.validatePatterns(); err != nil {
		return Config{}, err
	}

	config.LoadPath = configPath
	config.warnAboutDuplicates()

	return config, nil
}
