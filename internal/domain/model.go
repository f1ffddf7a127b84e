package domain

// Metric names recognized in a results document. Everything else under
// "metrics" is ignored.
const (
	MetricHTTPReqDuration = "http_req_duration"
	MetricHTTPReqFailed   = "http_req_failed"
	MetricHTTPReqs        = "http_reqs"
	MetricIntentAccuracy  = "intent_accuracy"
)

// Fields read from a metric record.
const (
	FieldP50  = "p(50)"
	FieldP95  = "p(95)"
	FieldP99  = "p(99)"
	FieldRate = "rate"
)

// RecognizedFields lists, per recognized metric, the fields the checker reads.
var RecognizedFields = map[string][]string{
	MetricHTTPReqDuration: {FieldP50, FieldP95, FieldP99},
	MetricHTTPReqFailed:   {FieldRate},
	MetricHTTPReqs:        {FieldRate},
	MetricIntentAccuracy:  {FieldRate},
}

// MetricRecord maps a field name (e.g. "p(95)" or "rate") to its value.
type MetricRecord map[string]float64

// ResultsDocument is a parsed performance-test report.
type ResultsDocument struct {
	Metrics map[string]MetricRecord `json:"metrics"`
	// Populated records the metrics whose source record had at least one
	// key, numeric or not.
	Populated map[string]bool `json:"-"`
}

// Value returns metrics[metric][field], or 0 when either is absent.
func (d *ResultsDocument) Value(metric, field string) float64 {
	if d == nil {
		return 0
	}
	return d.Metrics[metric][field]
}

// Has reports whether metric is present and non-empty. A record whose
// fields were all non-numeric still counts.
func (d *ResultsDocument) Has(metric string) bool {
	if d == nil {
		return false
	}
	return len(d.Metrics[metric]) > 0 || d.Populated[metric]
}
