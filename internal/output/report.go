package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/nestegg/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.ProjectionResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, result)
}

// SaveConfiguration writes a projection configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
