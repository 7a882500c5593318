package config

import (
	"os"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/davput/davput/pkg/errors"
)

const (
	// UserConfigPath is the default path to the davput user config.
	UserConfigPath = "~/.davput.yaml"

	// SupportedUserConfigVersion is the user config version this binary
	// understands. Files that don't set a version default to it.
	SupportedUserConfigVersion = "v1alpha1"

	// DefaultHost and DefaultPort are used when the config file doesn't
	// exist or leaves them unset.
	DefaultHost = "localhost"
	DefaultPort = 8080
)

// parseConfigErrTemplate is shown when the user config can't be parsed. The
// yaml library constructs errors in a way that loses context, so we can only
// pass its message on.
const parseConfigErrTemplate = "The configuration file %q could not be " +
	"parsed.\n" +
	"Common pitfalls include using the wrong types for fields, and having " +
	"extra fields in the file.\n\n" +
	"For reference, here is the error from the parser:\n%s"

// Mocked out for unit testing.
var fs = afero.NewOsFs()
var homedirExpand = homedir.Expand

// User contains per-user defaults for connecting to the WebDAV server.
// Command line flags override it.
type User struct {
	Version string `json:"version,omitempty"`
	Host    string `json:"host,omitempty"`
	Port    int    `json:"port,omitempty"`
}

// ParseUser parses the user config at the default path. A missing file is
// not an error: the built-in defaults are returned.
func ParseUser() (User, error) {
	path, err := homedirExpand(UserConfigPath)
	if err != nil {
		return User{}, errors.WithContext(err, "expand config path")
	}

	config := User{Version: SupportedUserConfigVersion}
	if err := parseUserFile(path, &config); err != nil {
		if _, ok := err.(errors.FileNotFound); !ok {
			return User{}, err
		}
	}

	if config.Host == "" {
		config.Host = DefaultHost
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	return config, nil
}

func parseUserFile(path string, config *User) error {
	configBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.FileNotFound{Path: path}
		}
		return errors.WithContext(err, "read file")
	}

	if err := yaml.Unmarshal(configBytes, config); err != nil {
		return errors.NewFriendlyError(parseConfigErrTemplate, path, err)
	}

	if config.Version != SupportedUserConfigVersion {
		return errors.NewFriendlyError("The configuration file %q has "+
			"version %q, but this version of davput expects %q.",
			path, config.Version, SupportedUserConfigVersion)
	}

	// A strict re-unmarshal catches extra fields. The non-strict pass above
	// runs first so that version errors take precedence.
	err = yaml.UnmarshalStrict(configBytes, config, yaml.DisallowUnknownFields)
	if err != nil {
		return errors.NewFriendlyError(parseConfigErrTemplate, path, err)
	}
	return nil
}
