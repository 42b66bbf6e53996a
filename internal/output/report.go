package output

import (
	"fmt"
	"strings"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// GenerateReport resolves the format name to a registered formatter and
// writes the report to a timestamped file, returning the filename.
func GenerateReport(summary *domain.PlanSummary, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	return WriteFormatted(f, summary, ext)
}
