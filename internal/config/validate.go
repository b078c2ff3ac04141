package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Listen != "" {
		if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
			errs = append(errs, fmt.Sprintf("listen: invalid address %q: %v", cfg.Listen, err))
		}
	}

	if cfg.DocsDir != "" && strings.ContainsAny(cfg.DocsDir, "\x00") {
		errs = append(errs, fmt.Sprintf("docs_dir: invalid path %q", cfg.DocsDir))
	}

	for user, pass := range cfg.Users {
		if user == "" {
			errs = append(errs, "users: empty username")
		}
		if strings.Contains(user, ":") {
			errs = append(errs, fmt.Sprintf("users.%s: username must not contain ':'", user))
		}
		if pass == "" {
			errs = append(errs, fmt.Sprintf("users.%s: empty password", user))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
