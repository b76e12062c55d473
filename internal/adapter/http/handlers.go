package http

import (
	"errors"
	"net/http"

	"github.com/couchcryptid/problem-report-intake/internal/domain"
)

type subtypeView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type categoryView struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Color    string        `json:"color"`
	Emoji    string        `json:"emoji"`
	Subtypes []subtypeView `json:"subtypes"`
}

type severityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type severityResponse struct {
	Severity domain.Severity `json:"severity"`
	Keyword  string          `json:"keyword,omitempty"`
	Color    string          `json:"color"`
}

type locationRequest struct {
	Location string `json:"location"`
}

func subtypeViews(category string) []subtypeView {
	codes := domain.SubtypesFor(category)
	views := make([]subtypeView, len(codes))
	for i, code := range codes {
		views[i] = subtypeView{ID: code, Label: domain.SubtypeLabel(code)}
	}
	return views
}

func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	cats := domain.Categories()
	views := make([]categoryView, len(cats))
	for i, c := range cats {
		views[i] = categoryView{
			ID:       string(c),
			Label:    domain.CategoryLabel(c),
			Color:    domain.CategoryColor(c),
			Emoji:    domain.CategoryEmoji(c),
			Subtypes: subtypeViews(string(c)),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": views})
}

// handleSubtypes answers an unknown category with an empty list, never 404.
func (s *Server) handleSubtypes(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("category")
	category := raw
	if c, err := domain.ParseCategory(raw); err == nil {
		category = string(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"subtypes": subtypeViews(category),
	})
}

func (s *Server) handleSeverity(w http.ResponseWriter, r *http.Request) {
	var req severityRequest
	if !s.decode(w, r, &req) {
		return
	}
	level, keyword := domain.Explain(req.Title, req.Description)
	writeJSON(w, http.StatusOK, severityResponse{
		Severity: level,
		Keyword:  keyword,
		Color:    domain.SeverityColor(level),
	})
}

func (s *Server) handleParseLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !s.decode(w, r, &req) {
		return
	}
	loc, err := domain.ParseLocation(req.Location)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "invalid location",
			Fields: []fieldError{{
				Field:   domain.FieldLocation,
				Kind:    domain.KindName(domain.ErrInvalidLocationFormat),
				Message: err.Error(),
				Value:   req.Location,
			}},
		})
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (s *Server) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var in domain.RawSubmission
	if !s.decode(w, r, &in) {
		s.deps.Metrics.Submissions.WithLabelValues("malformed").Inc()
		return
	}

	sub, err := domain.Build(in)
	if err != nil {
		verr, ok := domain.AsValidationError(err)
		if !ok {
			s.logger.Error("build submission failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		for _, fe := range verr.Errors {
			s.deps.Metrics.ValidationFailures.WithLabelValues(domain.KindName(fe.Kind)).Inc()
		}
		s.deps.Metrics.Submissions.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse(verr))
		return
	}

	report := domain.NewReport(sub)
	report = domain.EnrichWithGeocoding(r.Context(), report, s.deps.Geocoder, s.logger)

	if err := s.deps.Publisher.Publish(r.Context(), report); err != nil {
		s.logger.Error("publish report failed", "error", err, "report_id", report.ID)
		s.deps.Metrics.Submissions.WithLabelValues("publish_error").Inc()
		writeError(w, http.StatusServiceUnavailable, "report could not be queued, try again later")
		return
	}

	s.deps.Metrics.Submissions.WithLabelValues("accepted").Inc()
	s.deps.Metrics.ReportsClassified.WithLabelValues(string(sub.Severity), string(sub.Category)).Inc()
	s.logger.Info("report accepted",
		"report_id", report.ID,
		"category", sub.Category,
		"severity", sub.Severity,
	)
	writeJSON(w, http.StatusAccepted, report)
}

// decode writes a 400 or 413 and returns false when the body is unusable.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSON(w, r, dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	s.logger.Debug("rejecting malformed request", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusBadRequest, "invalid JSON")
	return false
}

func validationResponse(verr *domain.ValidationError) errorResponse {
	fields := make([]fieldError, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = fieldError{
			Field:    fe.Field,
			Kind:     domain.KindName(fe.Kind),
			Message:  fe.Error(),
			Value:    fe.Value,
			Category: fe.Category,
		}
	}
	return errorResponse{Error: "invalid submission", Fields: fields}
}
