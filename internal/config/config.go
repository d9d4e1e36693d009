package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pmcli/postmortem/internal/storage"
)

// Config is the root configuration for pm, stored in
// ~/.config/postmortem/config.toml. Every setting is optional; missing
// keys fall back to the defaults below.
type Config struct {
	// Root is the directory holding the daily report files.
	Root string `toml:"root"`
	// Editor opens report files; falls back to $EDITOR, then vi.
	Editor string `toml:"editor"`
	// Days is the default aggregation window size.
	Days int `toml:"days"`

	Mail MailConfig `toml:"mail"`
}

// MailConfig holds Microsoft Graph settings for mailing reports.
type MailConfig struct {
	// TenantID is the Azure AD tenant. "common" works for personal and
	// multi-tenant accounts.
	TenantID string `toml:"tenant_id"`
	// ClientID is the Azure app ID for the OAuth2 device code flow.
	// The default is the well-known public Azure CLI app, which needs no
	// registration.
	ClientID string `toml:"client_id"`
	// Recipient is the default To address for pm mail.
	Recipient string `toml:"recipient"`
	// Subject is the mail subject line.
	Subject string `toml:"subject"`
}

const (
	DefaultTenantID = "common"
	DefaultClientID = "04b07795-8542-4c4a-95af-30b2c573d5ab"
	DefaultDays     = 7
	DefaultSubject  = "Hours and issues report"
)

// Dir returns the pm configuration directory (~/.config/postmortem).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "postmortem"), nil
}

// Load reads the config file, overlaying it on built-in defaults. A
// missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Config{
		Days: DefaultDays,
		Mail: MailConfig{
			TenantID: DefaultTenantID,
			ClientID: DefaultClientID,
			Subject:  DefaultSubject,
		},
	}

	dir, err := Dir()
	if err != nil {
		return cfg, err
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if cfg.Root == "" {
		cfg.Root, err = storage.DefaultRoot()
		if err != nil {
			return cfg, err
		}
	}
	// Fill zero-value fields so callers always get a usable Config even
	// if the user only partially fills in the file.
	if cfg.Days <= 0 {
		cfg.Days = DefaultDays
	}
	if cfg.Mail.TenantID == "" {
		cfg.Mail.TenantID = DefaultTenantID
	}
	if cfg.Mail.ClientID == "" {
		cfg.Mail.ClientID = DefaultClientID
	}
	if cfg.Mail.Subject == "" {
		cfg.Mail.Subject = DefaultSubject
	}

	return cfg, nil
}

// EditorCommand resolves the editor to use for opening report files.
func (c Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return "vi"
}
