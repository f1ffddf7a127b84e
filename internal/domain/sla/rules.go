package sla

import "github.com/perfgate/perfgate/internal/domain"

const (
	p95LatencyThresholdMs  = 2000
	errorRateThreshold     = 0.01
	throughputTargetRPS    = 100
	intentAccuracyRequired = 0.95
)

// Rule names, stable across releases.
const (
	RuleP95Latency     = "p95_latency"
	RuleErrorRate      = "error_rate"
	RuleThroughput     = "throughput"
	RuleP50Latency     = "p50_latency"
	RuleP99Latency     = "p99_latency"
	RuleIntentAccuracy = "intent_accuracy"
)

// Rules returns the fixed rule set in report order.
func Rules() []domain.Rule {
	return []domain.Rule{
		{
			Name:       RuleP95Latency,
			Label:      "P95 Latency",
			Metric:     domain.MetricHTTPReqDuration,
			Field:      domain.FieldP95,
			Comparison: domain.LessThan,
			Threshold:  p95LatencyThresholdMs,
			Unit:       domain.UnitMilliseconds,
			Severity:   domain.SeverityHard,
		},
		{
			Name:       RuleErrorRate,
			Label:      "Error Rate",
			Metric:     domain.MetricHTTPReqFailed,
			Field:      domain.FieldRate,
			Comparison: domain.LessThan,
			Threshold:  errorRateThreshold,
			Unit:       domain.UnitFraction,
			Severity:   domain.SeverityHard,
		},
		{
			Name:             RuleThroughput,
			Label:            "Throughput",
			Metric:           domain.MetricHTTPReqs,
			Field:            domain.FieldRate,
			Comparison:       domain.GreaterThan,
			Threshold:        throughputTargetRPS,
			Unit:             domain.UnitRequestsPerSecond,
			Severity:         domain.SeverityWarning,
			ReportIfPositive: true,
		},
		{
			Name:     RuleP50Latency,
			Label:    "P50 Latency",
			Metric:   domain.MetricHTTPReqDuration,
			Field:    domain.FieldP50,
			Unit:     domain.UnitMilliseconds,
			Severity: domain.SeverityInfo,
		},
		{
			Name:     RuleP99Latency,
			Label:    "P99 Latency",
			Metric:   domain.MetricHTTPReqDuration,
			Field:    domain.FieldP99,
			Unit:     domain.UnitMilliseconds,
			Severity: domain.SeverityInfo,
		},
		{
			Name:        RuleIntentAccuracy,
			Label:       "Intent Accuracy",
			Metric:      domain.MetricIntentAccuracy,
			Field:       domain.FieldRate,
			Comparison:  domain.AtLeast,
			Threshold:   intentAccuracyRequired,
			Unit:        domain.UnitFraction,
			Severity:    domain.SeverityHard,
			Conditional: true,
		},
	}
}
