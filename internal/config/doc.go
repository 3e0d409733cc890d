// Package config manages user-level settings stored at ~/.todo/config.yaml.
// Values can also come from TODO_-prefixed environment variables, such as
// TODO_STORAGE_PATH for the task file location.
package config
