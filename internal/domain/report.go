package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// ReportStatus tracks a report through municipal handling. Intake only
// creates pending reports; later transitions belong to downstream consumers.
type ReportStatus string

// StatusPending is the status of every newly accepted report.
const StatusPending ReportStatus = "pending"

// Report is the envelope handed to the transport layer: a validated
// submission plus identity, receipt time and optional map enrichment.
type Report struct {
	ID         string            `json:"id"`
	Submission ProblemSubmission `json:"submission"`
	Status     ReportStatus      `json:"status"`
	ReceivedAt time.Time         `json:"received_at"`

	// Reverse-geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceName        string  `json:"place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"
}

// NewReport wraps a submission in a pending Report stamped with the current
// time.
func NewReport(sub ProblemSubmission) Report {
	return Report{
		ID:         generateID(sub),
		Submission: sub,
		Status:     StatusPending,
		ReceivedAt: clock.Now().UTC(),
	}
}

// generateID derives the report ID from the submission content so that a
// replayed message maps to the same ID downstream.
func generateID(sub ProblemSubmission) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%.6f|%.6f",
		sub.Category, sub.Subtype, sub.Title, sub.Description,
		sub.Location.Latitude, sub.Location.Longitude)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if sub.Category == "" {
		return short
	}
	return string(sub.Category) + "-" + short
}

// SerializeReport marshals a Report into an OutputEvent keyed by report ID.
func SerializeReport(r Report) (OutputEvent, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(r.ID),
		Value: data,
		Headers: map[string]string{
			"category":    string(r.Submission.Category),
			"severity":    string(r.Submission.Severity),
			"received_at": r.ReceivedAt.Format(time.RFC3339),
		},
	}, nil
}
