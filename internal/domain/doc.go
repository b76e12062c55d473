// Package domain validates citizen problem reports and classifies their
// severity.
//
// # Input Conventions
//
// Reports arrive as raw form strings (see [RawSubmission]): title,
// description, category, optional subtype, location and optional media
// references produced by the media subsystem.
//
// Location format:
//
//	"<lat>, <lon>"            →  "-23.5505, -46.6333"
//	"<lat>, <lon> - <addr>"   →  "-23.5505, -46.6333 - Centro de São Paulo"
//
//	Numbers are signed decimals without exponents. Whitespace around the
//	comma and dash is optional. The parser is syntactic only; range checks
//	(latitude ±90, longitude ±180) happen in [Build]. Coordinates are stored
//	a second time as [longitude, latitude] for map libraries.
//
// Taxonomy:
//
//	Eleven fixed categories, each with a fixed subtype list ending in
//	"other". Subtype codes are scoped to their category; the same code may
//	appear under several categories ("flooding" in mobility and sanitation).
//	Category tokens are matched case-insensitively, ignoring "-" and "_".
//
// Severity classification:
//
//	Computed from "<title> <description>", lowercased, by substring match
//	against per-tier keyword lists (Brazilian Portuguese). Tiers are tried in
//	fixed order and the first with any hit wins:
//
//	  critical  →  emergência, incêndio, desabamento, risco de vida, ...
//	  high      →  acidente, buraco grande, sem água, alagamento, ...
//	  medium    →  problema, buraco, lixo, entupido, pichação, ...
//	  low       →  sugestão, pintura, placa, ... (also the fallback)
//
//	A severity supplied by the reporter is ignored.
//
// # Errors
//
// [Build] never stops at the first problem. It returns a [*ValidationError]
// listing one [FieldError] per problem; each unwraps to a sentinel kind such
// as [ErrUnknownCategory] so callers can use errors.Is.
//
// # ID Generation
//
// Report IDs are deterministic SHA-256 hashes of the submission's category,
// subtype, text and coordinates. See [NewReport].
package domain
