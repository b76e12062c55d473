package domain

import (
	"context"
	"log/slog"
)

// Values for Report.GeoSource.
const (
	GeoSourceReverse  = "reverse"
	GeoSourceOriginal = "original"
	GeoSourceFailed   = "failed"
)

// EnrichWithGeocoding fills the report's place fields by reverse geocoding
// its coordinates. The submission itself is never touched. A nil geocoder
// leaves the report as is; a failed lookup is logged and recorded in
// GeoSource.
func EnrichWithGeocoding(ctx context.Context, report Report, geocoder Geocoder, logger *slog.Logger) Report {
	if geocoder == nil {
		return report
	}

	loc := report.Submission.Location
	result, err := geocoder.ReverseGeocode(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"report_id", report.ID,
			"lat", loc.Latitude,
			"lon", loc.Longitude,
			"error", err,
		)
		report.GeoSource = GeoSourceFailed
		return report
	}
	if result.FormattedAddress == "" {
		report.GeoSource = GeoSourceOriginal
		return report
	}

	report.FormattedAddress = result.FormattedAddress
	report.PlaceName = result.PlaceName
	report.GeoConfidence = result.Confidence
	report.GeoSource = GeoSourceReverse
	return report
}
