package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HazardReport is the structured result of an image-hazard analysis call.
type HazardReport struct {
	RiskLevel      string   `json:"riskLevel"`
	Hazards        []string `json:"hazards"`
	Recommendation string   `json:"recommendation"`
}

// ParseHazardReport decodes the assistant's raw response. The service is
// asked for JSON matching this shape but nothing enforces it, so a decode
// failure is a recoverable error, never a crash.
func ParseHazardReport(raw string) (HazardReport, error) {
	var report HazardReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return HazardReport{}, fmt.Errorf("decoding hazard report: %w", err)
	}
	return report, nil
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severity buckets the free-form risk level string. Anything that is not
// recognizably high or medium is treated as low.
func (h HazardReport) Severity() Severity {
	level := strings.ToLower(h.RiskLevel)
	switch {
	case strings.Contains(level, "high"):
		return SeverityHigh
	case strings.Contains(level, "medium"):
		return SeverityMedium
	default:
		return SeverityLow
	}
}
