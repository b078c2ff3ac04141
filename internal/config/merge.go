package config

// Options are the effective runtime settings after merging defaults, the
// config file, and CLI flags.
type Options struct {
	Listen    string
	Title     string
	DocsDir   string
	ExportDir string
	Users     map[string]string
	NoAuth    bool
}

// Merge combines file-based config with CLI-provided options.
// CLI values take precedence; zero-value CLI fields fall through to file
// config, then to the package defaults.
func Merge(fileCfg *Config, cli Options) Options {
	result := cli

	if result.Listen == "" {
		result.Listen = fileCfg.Listen
	}
	if result.Listen == "" {
		result.Listen = DefaultListen
	}

	if result.Title == "" {
		result.Title = fileCfg.Title
	}
	if result.Title == "" {
		result.Title = DefaultTitle
	}

	if result.DocsDir == "" {
		result.DocsDir = fileCfg.DocsDir
	}
	if result.DocsDir == "" {
		result.DocsDir = DefaultDocsDir
	}

	if result.ExportDir == "" {
		result.ExportDir = fileCfg.ExportDir
	}
	if result.ExportDir == "" {
		result.ExportDir = DefaultExportDir
	}

	if len(result.Users) == 0 && len(fileCfg.Users) > 0 {
		result.Users = fileCfg.Users
	}
	if result.NoAuth {
		result.Users = nil
	}

	return result
}
