package output

import (
	"encoding/json"

	"github.com/wgoal/wealth-planner/internal/domain"
)

// JSONFormatter serializes the plan summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
