package sla

import "github.com/perfgate/perfgate/internal/domain"

// Evaluate applies the fixed rule set to doc and returns the verdict.
// A nil doc behaves like a document with no metrics.
func Evaluate(doc *domain.ResultsDocument) *domain.Verdict {
	return EvaluateRules(doc, Rules())
}

// EvaluateRules applies rules in order. Skipped rules leave no result.
// The verdict fails iff a hard rule fails.
func EvaluateRules(doc *domain.ResultsDocument, rules []domain.Rule) *domain.Verdict {
	verdict := &domain.Verdict{Passed: true}

	for _, rule := range rules {
		if rule.Conditional && !doc.Has(rule.Metric) {
			continue
		}

		observed := doc.Value(rule.Metric, rule.Field)
		if rule.ReportIfPositive && observed <= 0 {
			continue
		}

		status := statusFor(rule, observed)
		if rule.Severity == domain.SeverityHard && status == domain.StatusFail {
			verdict.Passed = false
		}

		verdict.Results = append(verdict.Results, domain.RuleResult{
			Rule:     rule,
			Observed: observed,
			Status:   status,
		})
	}

	return verdict
}

func statusFor(rule domain.Rule, observed float64) domain.Status {
	switch rule.Severity {
	case domain.SeverityInfo:
		return domain.StatusInfo
	case domain.SeverityWarning:
		if rule.Comparison.Holds(observed, rule.Threshold) {
			return domain.StatusPass
		}
		return domain.StatusWarn
	default:
		if rule.Comparison.Holds(observed, rule.Threshold) {
			return domain.StatusPass
		}
		return domain.StatusFail
	}
}
