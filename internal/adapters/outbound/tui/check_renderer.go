package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/perfgate/perfgate/internal/domain"
)

const (
	ruleWidth  = 60
	labelWidth = 15
	shortHash  = 12
)

var separator = strings.Repeat("=", ruleWidth)

// RenderVerdict renders a verdict as the SLA report printed by the gate.
func (r *Renderer) RenderVerdict(v *domain.Verdict) string {
	var b strings.Builder

	// ── Header ──
	b.WriteString(r.dimStyle.Render(separator) + "\n")
	b.WriteString(r.headerStyle.Render("Performance SLA Check Results") + "\n")
	b.WriteString(r.dimStyle.Render(separator) + "\n")
	if v.CommitHash != "" {
		b.WriteString(r.label("Commit") + r.dimStyle.Render(abbreviate(v.CommitHash)) + "\n")
	}

	// ── Rules ──
	infoStarted := false
	for _, res := range v.Results {
		if res.Rule.Severity == domain.SeverityInfo {
			if !infoStarted {
				b.WriteString("\n" + r.sectionStyle.Render("Additional Metrics:") + "\n")
				infoStarted = true
			}
			b.WriteString(r.label(res.Rule.Label) + formatObserved(res.Rule.Unit, res.Observed) + "\n")
			continue
		}
		r.renderCheck(&b, res)
	}

	// ── Summary ──
	b.WriteString(r.dimStyle.Render(separator) + "\n")
	if v.Passed {
		b.WriteString(r.passStyle.Render("✅ All SLAs met!") + "\n")
	} else {
		b.WriteString(r.failStyle.Render("❌ Some SLAs not met. Please investigate before merging.") + "\n")
	}

	return b.String()
}

func (r *Renderer) renderCheck(b *strings.Builder, res domain.RuleResult) {
	rule := res.Rule
	kind := "SLA"
	if rule.Severity == domain.SeverityWarning {
		kind = "Target"
	}

	fmt.Fprintf(b, "%s%s (%s: %s%s) %s\n",
		r.label(rule.Label),
		formatObserved(rule.Unit, res.Observed),
		kind,
		rule.Comparison,
		formatThreshold(rule.Unit, rule.Threshold),
		r.marker(res.Status),
	)
}

func (r *Renderer) label(name string) string {
	return r.labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, name+":")) + " "
}

func (r *Renderer) marker(s domain.Status) string {
	switch s {
	case domain.StatusPass:
		return r.passStyle.Render("✅ PASS")
	case domain.StatusFail:
		return r.failStyle.Render("❌ FAIL")
	case domain.StatusWarn:
		return r.warnStyle.Render("⚠️  WARN")
	default:
		return ""
	}
}

func formatObserved(unit domain.Unit, v float64) string {
	switch unit {
	case domain.UnitFraction:
		return fmt.Sprintf("%.2f%%", v*100)
	case domain.UnitRequestsPerSecond:
		return fmt.Sprintf("%.2f req/s", v)
	default:
		return fmt.Sprintf("%.2fms", v)
	}
}

func formatThreshold(unit domain.Unit, v float64) string {
	switch unit {
	case domain.UnitFraction:
		return fmt.Sprintf("%.1f%%", v*100)
	case domain.UnitRequestsPerSecond:
		return strconv.FormatFloat(v, 'f', -1, 64) + " req/s"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64) + "ms"
	}
}

func abbreviate(hash string) string {
	if len(hash) > shortHash {
		return hash[:shortHash]
	}
	return hash
}
