package domain

// Severity decides whether a failing rule flips the overall verdict.
type Severity string

const (
	SeverityHard    Severity = "hard"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Comparison is the operator a rule applies as observed <op> threshold.
type Comparison string

const (
	LessThan    Comparison = "<"
	GreaterThan Comparison = ">"
	AtLeast     Comparison = ">="
	NoCompare   Comparison = ""
)

// Holds reports whether observed satisfies the comparison against threshold.
// NoCompare always holds.
func (c Comparison) Holds(observed, threshold float64) bool {
	switch c {
	case LessThan:
		return observed < threshold
	case GreaterThan:
		return observed > threshold
	case AtLeast:
		return observed >= threshold
	default:
		return true
	}
}

// Unit controls how observed values and thresholds are displayed.
type Unit string

const (
	UnitMilliseconds      Unit = "ms"
	UnitFraction          Unit = "fraction"
	UnitRequestsPerSecond Unit = "req/s"
)

// Status is the per-rule marker in a verdict.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusWarn Status = "WARN"
	StatusInfo Status = "INFO"
)

// Rule is one fixed SLA check against a single metric field.
type Rule struct {
	Name       string     `json:"name"`
	Label      string     `json:"label"`
	Metric     string     `json:"metric"`
	Field      string     `json:"field"`
	Comparison Comparison `json:"comparison,omitempty"`
	Threshold  float64    `json:"threshold,omitempty"`
	Unit       Unit       `json:"unit"`
	Severity   Severity   `json:"severity"`
	// Conditional rules are evaluated only when their metric is present.
	Conditional bool `json:"conditional,omitempty"`
	// ReportIfPositive rules are skipped when the observed value is 0 or less.
	ReportIfPositive bool `json:"report_if_positive,omitempty"`
}

// RuleResult is the outcome of evaluating one rule.
type RuleResult struct {
	Rule     Rule    `json:"rule"`
	Observed float64 `json:"observed"`
	Status   Status  `json:"status"`
}

// Verdict is the evaluated report for one results document.
type Verdict struct {
	Source     string       `json:"source,omitempty"`
	CommitHash string       `json:"commit_hash,omitempty"`
	Results    []RuleResult `json:"results"`
	Passed     bool         `json:"passed"`
}

// Failures returns the hard rules that failed.
func (v *Verdict) Failures() []RuleResult {
	var out []RuleResult
	for _, r := range v.Results {
		if r.Rule.Severity == SeverityHard && r.Status == StatusFail {
			out = append(out, r)
		}
	}
	return out
}

// Result looks up the result for the named rule.
func (v *Verdict) Result(name string) (RuleResult, bool) {
	for _, r := range v.Results {
		if r.Rule.Name == name {
			return r, true
		}
	}
	return RuleResult{}, false
}
