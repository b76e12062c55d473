package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a top-level classification bucket for a reported problem.
type Category string

const (
	CategoryInfrastructure  Category = "infrastructure"
	CategoryMobility        Category = "mobility"
	CategorySecurity        Category = "security"
	CategoryEnvironmental   Category = "environmental"
	CategoryPublicServices  Category = "publicservices"
	CategoryUrbanOccupation Category = "urbanoccupation"
	CategoryAccessibility   Category = "accessibility"
	CategorySanitation      Category = "sanitation"
	CategoryUrbanCare       Category = "urbancare"
	CategorySocial          Category = "social"
	CategoryOther           Category = "other"
)

// SubtypeOther is the fallback subtype accepted under every category.
const SubtypeOther = "other"

// categories is the fixed presentation order.
var categories = []Category{
	CategoryInfrastructure,
	CategoryMobility,
	CategorySecurity,
	CategoryEnvironmental,
	CategoryPublicServices,
	CategoryUrbanOccupation,
	CategoryAccessibility,
	CategorySanitation,
	CategoryUrbanCare,
	CategorySocial,
	CategoryOther,
}

// subtypes maps each category to its allowed subtype codes. Codes are only
// meaningful relative to their category: "flooding" and "urbanpests" appear
// under more than one.
var subtypes = map[Category][]string{
	CategoryInfrastructure: {
		"potholes", "streetlights", "trafficsignals", "streetsigns", "crosswalks",
		"busstops", "drains", "leaks", "electricalwires", "damagedpoles", SubtypeOther,
	},
	CategoryMobility: {
		"traffic", "accidents", "roadblocks", "crowdedtransport", "busdelays",
		"bikelaneobtruction", "sidewalkblocks", "illegalparking", "flooding", SubtypeOther,
	},
	CategorySecurity: {
		"poorlighting", "robberyspots", "brokencameras", "druguse", "vandalism",
		"landslideareas", "violence", "vehicletheft", "pedestriantheft", "harassment",
		"robbery", SubtypeOther,
	},
	CategoryEnvironmental: {
		"illegaldumping", "noisepollution", "airpollution", "fires", "fallingtrees",
		"deforestation", "waterpollution", "badodor", "abandonedanimals", "urbanpests",
		SubtypeOther,
	},
	CategoryPublicServices: {
		"irregulartrash", "wateroutage", "poweroutage", "nopublicinternet", "damagedequipment",
		"servicedelays", "hospitalproblems", "schoolproblems", "parkupkeep", "closedcenters",
		SubtypeOther,
	},
	CategoryUrbanOccupation: {
		"irregularconstruction", "publicareainvasion", "sidewalkvendors", "nolicense", "illegalsigns",
		"graffiti", "riskoccupations", "illegallanduse", "noise", "disturbance", SubtypeOther,
	},
	CategoryAccessibility: {
		"noramps", "wheelchairobstacles", "notactilesurface", "brokenelevators", "noaudiosignals",
		"narrowdoors", "noadaptedbathrooms", "inadequatetransport", "nospecialspots", "inadequatefurniture",
		SubtypeOther,
	},
	CategorySanitation: {
		"opensewage", "standingwater", "denguespots", "accumulatedtrash", "urbanpests",
		"odors", "flooding", "poordrainage", "irregularseptic", "watercontamination", SubtypeOther,
	},
	CategoryUrbanCare: {
		"highgrass", "poorstreetcleaning", "squaremaintenance", "needstreepruning", "damagedtrashcans",
		"wornpaint", "brokenequipment", "vandalizedmonuments", "poorgardens", "damagedfurniture",
		SubtypeOther,
	},
	CategorySocial: {
		"homelessness", "drugusersareas", "childlabor", "sexualexploitation", "forcedbegging",
		"elderlabandonment", "vulnerablepopulation", "extremepoverty", "drugtrafficking", SubtypeOther,
	},
	CategoryOther: {SubtypeOther},
}

// Categories returns every category in presentation order.
func Categories() []Category {
	return slices.Clone(categories)
}

// SubtypesFor returns the subtype codes allowed under category. The category
// is matched the way ParseCategory matches it. An unrecognized category
// yields an empty list rather than an error, since callers probe with
// unsanitized input.
func SubtypesFor(category string) []string {
	c, err := ParseCategory(category)
	if err != nil {
		return []string{}
	}
	return slices.Clone(subtypes[c])
}

// IsValidSubtype reports whether subtype belongs to category.
func IsValidSubtype(category, subtype string) bool {
	c, err := ParseCategory(category)
	if err != nil {
		return false
	}
	return slices.Contains(subtypes[c], subtype)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := subtypes[c]
	return ok
}

// ParseCategory converts a raw category token into a Category. Matching is
// case-insensitive and ignores hyphens and underscores, so "public-services"
// and "Urban_Care" resolve to their canonical identifiers.
func ParseCategory(raw string) (Category, error) {
	token := normalizeToken(raw)
	if c := Category(token); c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
