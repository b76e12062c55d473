package domain

import (
	"fmt"
	"strings"
)

// Severity is the urgency tier assigned to a report. It is always computed
// from the report text, never taken from the reporter.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities by urgency: critical is 4, low is 1, anything
// unrecognized is 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ParseSeverity converts a serialized severity back into its typed value.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s.Rank() == 0 {
		return "", fmt.Errorf("unknown severity %q", raw)
	}
	return s, nil
}

type severityTier struct {
	level    Severity
	keywords []string
}

// severityTiers is evaluated top to bottom; the first tier with a keyword
// present in the text wins, regardless of how many keywords later tiers match.
// Keywords are lowercase substrings. Bare stems that occur inside everyday
// words (e.g. "perigo" in "perigoso") are listed as phrases instead.
var severityTiers = []severityTier{
	{
		level: SeverityCritical,
		keywords: []string{
			"emergência", "em perigo", "perigo de vida", "perigo iminente", "morte", "grave",
			"urgente", "incêndio", "desabamento", "inundação", "enchente", "desmoronamento",
			"risco de vida", "acidente grave", "desastre", "explosão", "eletrocussão", "esgoto",
			"contaminação", "feridos", "roubo", "assalto", "agressão", "violência", "arma",
			"sequestro", "estupro",
		},
	},
	{
		level: SeverityHigh,
		keywords: []string{
			"saúde", "segurança", "violência", "acidente", "falta", "roubo", "assalto",
			"queda", "bloqueio", "buraco grande", "curto circuito", "fios", "choque",
			"trânsito parado", "sem água", "sem energia", "semáforo quebrado",
			"alagamento", "deslizamento", "obstrução",
		},
	},
	{
		level: SeverityMedium,
		keywords: []string{
			"problema", "dificuldade", "manutenção", "quebrado", "buraco", "lixo",
			"iluminação", "entupido", "mau funcionamento", "barulho", "poluição",
			"deteriorado", "lento", "atrasado", "irregular", "pichação", "mato",
			"abandono", "danificado", "mal conservado",
		},
	},
	{
		level: SeverityLow,
		keywords: []string{
			"sugestão", "melhoria", "pequeno", "leve", "estética", "pintura", "embelezamento",
			"desgastado", "sinalização", "aviso", "informação", "placa", "faixa apagada",
			"ajuste", "verificação", "atenção", "monitoramento", "orientação",
		},
	},
}

// Classify infers the severity of a report from its title and description.
// Text with no keyword from any tier is low.
func Classify(title, description string) Severity {
	level, _ := Explain(title, description)
	return level
}

// Explain is Classify plus the keyword that decided the tier. The keyword is
// empty when the result is the low fallback.
func Explain(title, description string) (Severity, string) {
	text := strings.ToLower(title + " " + description)
	for _, tier := range severityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(text, kw) {
				return tier.level, kw
			}
		}
	}
	return SeverityLow, ""
}
