// Package config is the compiler's ambient configuration: a small set
// of toggles read from an optional crom.yaml, unmarshaled with
// gopkg.in/yaml.v2. Absent a config file, Default() is used as-is.
package config
