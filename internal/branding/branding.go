// Package branding holds the tool's name, home directory, and env prefix,
// read from the embedded branding.yaml.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

// current panics on a broken branding.yaml; the file ships inside the binary.
var current = sync.OnceValue(func() identity {
	var id identity
	if err := yaml.Unmarshal(rawBranding, &id); err != nil {
		panic("branding.yaml: " + err.Error())
	}
	return id
})

func CLIName() string     { return current().CLIName }
func DisplayName() string { return current().DisplayName }
func Description() string { return current().Description }

// HomeDir is the dot-directory under $HOME holding config.yaml.
func HomeDir() string { return current().HomeDir }

// EnvPrefix is prepended to every environment variable the tool reads.
func EnvPrefix() string { return current().EnvPrefix }

// EnvVar returns the prefixed, upper-cased variable name: EnvVar("config_dir") is "TODO_CONFIG_DIR".
func EnvVar(suffix string) string {
	return current().EnvPrefix + "_" + strings.ToUpper(suffix)
}
