package structured

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/coresim/internal/application"
	"gopkg.in/yaml.v3"
)

func RenderJSON(w io.Writer, report application.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

func RenderYAML(w io.Writer, report application.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return enc.Close()
}
