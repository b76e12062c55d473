package domain

// Display lookups (pt-BR) for presentation collaborators. Validation and
// classification never read these tables.

var categoryLabels = map[Category]string{
	CategoryInfrastructure:  "Infraestrutura",
	CategoryMobility:        "Mobilidade",
	CategorySecurity:        "Segurança",
	CategoryEnvironmental:   "Meio Ambiente",
	CategoryPublicServices:  "Serviços Públicos",
	CategoryUrbanOccupation: "Ocupação Urbana",
	CategoryAccessibility:   "Acessibilidade",
	CategorySanitation:      "Saneamento",
	CategoryUrbanCare:       "Zeladoria",
	CategorySocial:          "Problemas Sociais",
	CategoryOther:           "Outros",
}

var categoryColors = map[Category]string{
	CategoryInfrastructure:  "#3498db",
	CategoryMobility:        "#f39c12",
	CategorySecurity:        "#e74c3c",
	CategoryEnvironmental:   "#2ecc71",
	CategoryPublicServices:  "#9b59b6",
	CategoryUrbanOccupation: "#34495e",
	CategoryAccessibility:   "#1abc9c",
	CategorySanitation:      "#95a5a6",
	CategoryUrbanCare:       "#7f8c8d",
	CategorySocial:          "#e67e22",
	CategoryOther:           "#bdc3c7",
}

var categoryEmojis = map[Category]string{
	CategoryInfrastructure:  "🏗️",
	CategoryMobility:        "🚗",
	CategorySecurity:        "🔒",
	CategoryEnvironmental:   "🌳",
	CategoryPublicServices:  "🏢",
	CategoryUrbanOccupation: "🏙️",
	CategoryAccessibility:   "♿",
	CategorySanitation:      "🚿",
	CategoryUrbanCare:       "🧹",
	CategorySocial:          "👥",
	CategoryOther:           "📍",
}

var severityColors = map[Severity]string{
	SeverityLow:      "#4cd137",
	SeverityMedium:   "#ffed4a",
	SeverityHigh:     "#ff9f1a",
	SeverityCritical: "#ff3838",
}

// subtypeLabels is keyed by bare code; a code shared by two categories
// shares its label.
var subtypeLabels = map[string]string{
	// infrastructure
	"potholes":        "Buracos nas ruas e calçadas",
	"streetlights":    "Iluminação pública defeituosa",
	"trafficsignals":  "Semáforos com mau funcionamento",
	"streetsigns":     "Placas de rua danificadas ou ausentes",
	"crosswalks":      "Faixas de pedestres apagadas",
	"busstops":        "Pontos de ônibus danificados",
	"drains":          "Bueiros entupidos ou quebrados",
	"leaks":           "Vazamentos de água ou esgoto",
	"electricalwires": "Fiação elétrica exposta",
	"damagedpoles":    "Postes danificados",

	// mobility
	"traffic":            "Congestionamentos",
	"accidents":          "Acidentes de trânsito",
	"roadblocks":         "Obras e bloqueios de vias",
	"crowdedtransport":   "Transportes públicos lotados",
	"busdelays":          "Atrasos em linhas de ônibus/metrô",
	"bikelaneobtruction": "Ciclovias obstruídas",
	"sidewalkblocks":     "Calçadas bloqueadas",
	"illegalparking":     "Estacionamento irregular",
	"flooding":           "Pontos de alagamento",

	// security
	"poorlighting":    "Áreas com iluminação precária",
	"robberyspots":    "Pontos de assaltos frequentes",
	"brokencameras":   "Câmeras de segurança quebradas",
	"druguse":         "Locais com consumo de drogas",
	"vandalism":       "Vandalismos",
	"landslideareas":  "Áreas de risco de deslizamento",
	"violence":        "Locais com violência frequente",
	"vehicletheft":    "Roubos de veículos",
	"pedestriantheft": "Furtos a pedestres",
	"harassment":      "Assédio nas ruas",
	"robbery":         "Assalto",

	// environmental
	"illegaldumping":   "Descarte irregular de lixo",
	"noisepollution":   "Poluição sonora",
	"airpollution":     "Poluição do ar",
	"fires":            "Queimadas",
	"fallingtrees":     "Árvores em risco de queda",
	"deforestation":    "Áreas de desmatamento",
	"waterpollution":   "Poluição de rios e córregos",
	"badodor":          "Mau cheiro",
	"abandonedanimals": "Animais abandonados",
	"urbanpests":       "Pragas urbanas",

	// public services
	"irregulartrash":   "Coleta de lixo irregular",
	"wateroutage":      "Falta de água",
	"poweroutage":      "Queda de energia",
	"nopublicinternet": "Falta de internet pública",
	"damagedequipment": "Equipamentos públicos danificados",
	"servicedelays":    "Demora em atendimentos",
	"hospitalproblems": "Problemas em hospitais/postos",
	"schoolproblems":   "Escolas com problemas estruturais",
	"parkupkeep":       "Parques mal conservados",
	"closedcenters":    "Centros comunitários fechados",

	// urban occupation
	"irregularconstruction": "Construções irregulares",
	"publicareainvasion":    "Invasões de áreas públicas",
	"sidewalkvendors":       "Calçadas ocupadas por ambulantes",
	"nolicense":             "Estabelecimentos sem alvará",
	"illegalsigns":          "Propaganda irregular",
	"graffiti":              "Pichações",
	"riskoccupations":       "Ocupações de risco",
	"illegallanduse":        "Uso irregular do solo",
	"noise":                 "Barulho excessivo",
	"disturbance":           "Perturbação do sossego",

	// accessibility
	"noramps":             "Falta de rampas de acesso",
	"wheelchairobstacles": "Obstáculos para cadeirantes",
	"notactilesurface":    "Calçadas sem piso tátil",
	"brokenelevators":     "Elevadores quebrados",
	"noaudiosignals":      "Ausência de sinais sonoros",
	"narrowdoors":         "Portas estreitas",
	"noadaptedbathrooms":  "Banheiros não adaptados",
	"inadequatetransport": "Transporte adaptado insuficiente",
	"nospecialspots":      "Falta de vagas especiais",
	"inadequatefurniture": "Mobiliário urbano inadequado",

	// sanitation
	"opensewage":         "Esgoto a céu aberto",
	"standingwater":      "Água parada",
	"denguespots":        "Focos de dengue",
	"accumulatedtrash":   "Lixo acumulado",
	"odors":              "Mau cheiro",
	"poordrainage":       "Drenagem insuficiente",
	"irregularseptic":    "Fossas irregulares",
	"watercontamination": "Contaminação de água",

	// urban care
	"highgrass":           "Mato alto em terrenos",
	"poorstreetcleaning":  "Limpeza urbana deficiente",
	"squaremaintenance":   "Manutenção de praças",
	"needstreepruning":    "Poda de árvores necessária",
	"damagedtrashcans":    "Lixeiras danificadas",
	"wornpaint":           "Pinturas desgastadas",
	"brokenequipment":     "Equipamentos quebrados",
	"vandalizedmonuments": "Monumentos vandalizados",
	"poorgardens":         "Jardins mal cuidados",
	"damagedfurniture":    "Mobiliário urbano danificado",

	// social
	"homelessness":         "Moradores em situação de rua",
	"drugusersareas":       "Áreas de concentração de usuários de drogas",
	"childlabor":           "Trabalho infantil",
	"sexualexploitation":   "Exploração sexual",
	"forcedbegging":        "Mendicância forçada",
	"elderlabandonment":    "Abandono de idosos",
	"vulnerablepopulation": "População vulnerável",
	"extremepoverty":       "Áreas de extrema pobreza",
	"drugtrafficking":      "Tráfico de drogas",

	SubtypeOther: "Outro",
}

// CategoryLabel returns the display label for a category, or "Outros" for
// anything unrecognized.
func CategoryLabel(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// SubtypeLabel returns the display label for a subtype code, falling back to
// the code itself.
func SubtypeLabel(code string) string {
	if label, ok := subtypeLabels[code]; ok {
		return label
	}
	return code
}

// CategoryColor returns the map marker colour for a category.
func CategoryColor(c Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}

// CategoryEmoji returns the map marker emoji for a category.
func CategoryEmoji(c Category) string {
	if emoji, ok := categoryEmojis[c]; ok {
		return emoji
	}
	return categoryEmojis[CategoryOther]
}

// SeverityColor returns the badge colour for a severity; unknown levels
// render as low.
func SeverityColor(s Severity) string {
	if color, ok := severityColors[s]; ok {
		return color
	}
	return severityColors[SeverityLow]
}
