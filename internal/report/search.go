package report

import (
	"fmt"
	"strings"

	"railstatus-service/internal/domain/entity"
)

// StationMatches renders station search results as bullet lines.
func StationMatches(query string, matches []entity.StationMatch) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No stations found matching '%s'", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stations matching '%s':\n", query)
	for _, m := range matches {
		fmt.Fprintf(&b, "  • %s - Code: %s\n", m.Name, m.Code)
	}
	return b.String()
}

// TrainMatches renders train search results as bullet lines.
func TrainMatches(query string, matches []entity.TrainMatch) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No trains found matching '%s'", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Trains matching '%s':\n", query)
	for _, m := range matches {
		fmt.Fprintf(&b, "  • %s - %s (%s → %s)\n", m.Number, m.Name, m.FromCode, m.ToCode)
	}
	return b.String()
}
