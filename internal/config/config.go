// Package config handles .summit.yaml configuration files.
package config

// Config represents the contents of a .summit.yaml file. Zero-value fields
// fall back to the defaults below at merge time.
type Config struct {
	Listen    string `yaml:"listen,omitempty"`
	Title     string `yaml:"title,omitempty"`
	DocsDir   string `yaml:"docs_dir,omitempty"`
	ExportDir string `yaml:"export_dir,omitempty"`

	// Users maps basic-auth usernames to passwords. An empty map disables
	// authentication.
	Users map[string]string `yaml:"users,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".summit.yaml"

// Defaults applied when neither the file nor the CLI sets a value.
const (
	DefaultListen    = ":8050"
	DefaultTitle     = "FLC Portfolio Optimization Dashboard"
	DefaultDocsDir   = "generated_docs"
	DefaultExportDir = "dist"
)
