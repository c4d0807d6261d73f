package commands

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const redacted = "<redacted>"

// showConfig prints the merged flag and environment settings with the mode and files.
// A key given on the command line is redacted.
func showConfig(w io.Writer, s *session) error {
	settings := s.settings()

	if key, ok := settings["key"].(string); ok && key != "" {
		settings["key"] = redacted
	}

	settings["mode"] = string(s.cfg.Mode)
	settings["files"] = s.cfg.Files

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd

	if err := encoder.Encode(settings); err != nil {
		return fmt.Errorf("showing configuration: %w", err)
	}

	return encoder.Close()
}
