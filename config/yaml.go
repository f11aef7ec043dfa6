package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes c as a YAML document readable by Load.
func WriteYAML(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return enc.Close()
}

// WriteFile writes c to path, refusing to overwrite unless force is set.
func WriteFile(path string, c Config, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := WriteYAML(f, c); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
