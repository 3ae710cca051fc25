// Package config manages the configuration for versioncmp.
package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/inductiveautomation/versioncmp/internal/cachedregexp"
	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
)

var ConfigName = "versioncmp.toml"

type Config struct {
	IgnoredVersions []*IgnoreEntry `toml:"IgnoredVersions"`
	// The path to config file that this config was loaded from,
	// set by the manager after having successfully parsed the file
	LoadPath string `toml:"-"`
}

// IgnoreEntry drops every version matching Pattern from the versions being
// ordered, until IgnoreUntil if it is set.
type IgnoreEntry struct {
	Pattern     string    `toml:"pattern"`
	IgnoreUntil time.Time `toml:"ignoreUntil,omitempty"`
	Reason      string    `toml:"reason,omitempty"`

	Used bool `toml:"-"`
}

func (ie *IgnoreEntry) MarkAsUsed() {
	ie.Used = true
}

// matches reports whether the raw version matches the pattern, ignoring case.
// Patterns are validated when the config is loaded.
func (ie *IgnoreEntry) matches(version string) bool {
	re, err := cachedregexp.CompileFold(ie.Pattern)
	if err != nil {
		return false
	}

	return re.MatchString(version)
}

func (c *Config) UnusedIgnoredVersions() []*IgnoreEntry {
	unused := make([]*IgnoreEntry, 0, len(c.IgnoredVersions))

	for _, entry := range c.IgnoredVersions {
		if !entry.Used {
			unused = append(unused, entry)
		}
	}

	return unused
}

// ShouldIgnore returns whether the version should be left out, along with the
// first entry whose pattern matches it
func (c *Config) ShouldIgnore(version string) (bool, *IgnoreEntry) {
	index := slices.IndexFunc(c.IgnoredVersions, func(e *IgnoreEntry) bool { return e.matches(version) })
	if index == -1 {
		return false, &IgnoreEntry{}
	}
	ignoredLine := c.IgnoredVersions[index]

	return shouldIgnoreTimestamp(ignoredLine.IgnoreUntil), ignoredLine
}

// Filter returns the versions that are not ignored, in their original order,
// logging why each dropped version was left out
func (c *Config) Filter(versions []string) []string {
	kept := make([]string, 0, len(versions))

	for _, version := range versions {
		ignore, entry := c.ShouldIgnore(version)

		if !ignore {
			kept = append(kept, version)

			continue
		}

		entry.MarkAsUsed()

		if entry.Reason == "" {
			cmdlogger.Infof("%s has been filtered out because it matches %s", version, entry.Pattern)
		} else {
			cmdlogger.Infof("%s has been filtered out because: %s", version, entry.Reason)
		}
	}

	return kept
}

func shouldIgnoreTimestamp(ignoreUntil time.Time) bool {
	if ignoreUntil.IsZero() {
		// If IgnoreUntil is not set, should ignore.
		return true
	}
	// Should ignore if IgnoreUntil is still after current time
	// Takes timezone offsets into account if it is specified. otherwise it's using local time
	return ignoreUntil.After(time.Now())
}

func (c *Config) validatePatterns() error {
	invalid := make([]string, 0)

	for _, entry := range c.IgnoredVersions {
		if _, err := cachedregexp.CompileFold(entry.Pattern); err != nil || entry.Pattern == "" {
			invalid = append(invalid, strconv.Quote(entry.Pattern))
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid patterns in config file: %s", strings.Join(invalid, ", "))
	}

	return nil
}

func (c *Config) warnAboutDuplicates() {
	seen := make(map[string]struct{})

	for _, entry := range c.IgnoredVersions {
		if _, ok := seen[entry.Pattern]; ok {
			cmdlogger.Warnf("warning: %s has multiple ignores for %s - only the first will be used!", c.LoadPath, entry.Pattern)
		}
		seen[entry.Pattern] = struct{}{}
	}
}
