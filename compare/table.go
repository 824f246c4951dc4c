package compare

import (
	"fmt"
	"math"
	"strings"
)

const bytesPerMB = 1024 * 1024

// Row is one line of the comparison table.
type Row struct {
	Metric     string  `json:"metric"`
	Horizontal float64 `json:"apriori"`
	Vertical   float64 `json:"eclat"`
	// Difference describes the vertical value relative to the horizontal one.
	Difference string `json:"eclat_vs_apriori"`
}

// Rows returns the comparison table: time, itemset and rule counts, and
// the two memory figures.
func (r *Report) Rows() []Row {
	h, v := r.Horizontal, r.Vertical
	metrics := []struct {
		name string
		h, v float64
	}{
		{"Execution Time (ms)", round(h.Millis(), 2), round(v.Millis(), 2)},
		{"Frequent Itemsets", float64(h.Itemsets), float64(v.Itemsets)},
		{"Association Rules", float64(h.RuleCount), float64(v.RuleCount)},
		{"Allocated Memory (MB)", round(float64(h.AllocBytes)/bytesPerMB, 3), round(float64(v.AllocBytes)/bytesPerMB, 3)},
		{"Peak Memory (MB)", round(float64(h.PeakHeapBytes)/bytesPerMB, 3), round(float64(v.PeakHeapBytes)/bytesPerMB, 3)},
	}

	out := make([]Row, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, Row{Metric: m.name, Horizontal: m.h, Vertical: m.v, Difference: Relative(m.h, m.v)})
	}

	return out
}

// Relative phrases v against the baseline h: "12.5% faster" when v is
// smaller, "12.5% slower" when larger, "Same" when equal and "N/A" when
// the baseline is zero.
func Relative(h, v float64) string {
	if h == 0 {
		return "N/A"
	}
	ratio := v / h
	switch {
	case ratio < 1:
		return fmt.Sprintf("%.1f%% faster", (1-ratio)*100)
	case ratio > 1:
		return fmt.Sprintf("%.1f%% slower", (ratio-1)*100)
	default:
		return "Same"
	}
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Summary names the faster and the leaner miner.
type Summary struct {
	Faster          Algorithm `json:"faster"`
	FasterMillis    float64   `json:"faster_ms"`
	LowerMemory     Algorithm `json:"lower_memory"`
	LowerMemoryMB   float64   `json:"lower_memory_mb"`
	RulesMatch      bool      `json:"rules_match"`
	HorizontalRules int       `json:"apriori_rules"`
	VerticalRules   int       `json:"eclat_rules"`
}

// Winner picks the faster and the lower-memory miner. Ties go to the
// vertical miner.
func (r *Report) Winner() Summary {
	h, v := r.Horizontal, r.Vertical
	s := Summary{
		Faster:          Vertical,
		FasterMillis:    v.Millis(),
		LowerMemory:     Vertical,
		LowerMemoryMB:   float64(v.PeakHeapBytes) / bytesPerMB,
		RulesMatch:      h.RuleCount == v.RuleCount,
		HorizontalRules: h.RuleCount,
		VerticalRules:   v.RuleCount,
	}
	if h.Duration < v.Duration {
		s.Faster, s.FasterMillis = Horizontal, h.Millis()
	}
	if h.PeakHeapBytes < v.PeakHeapBytes {
		s.LowerMemory, s.LowerMemoryMB = Horizontal, float64(h.PeakHeapBytes)/bytesPerMB
	}

	return s
}

// String renders the summary as a short text block.
func (s Summary) String() string {
	match := "No"
	if s.RulesMatch {
		match = "Yes"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Faster Algorithm: %s (%.2fms)\n", s.Faster, s.FasterMillis)
	fmt.Fprintf(&b, "Lower Memory Usage: %s (%.3fMB)\n", s.LowerMemory, s.LowerMemoryMB)
	fmt.Fprintf(&b, "Rules Generated Match: %s (%s: %d, %s: %d)\n", match, Horizontal, s.HorizontalRules, Vertical, s.VerticalRules)

	return b.String()
}

// Table renders Rows as aligned plain text.
func (r *Report) Table() string {
	rows := r.Rows()
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %12s %12s  %s\n", "Metric", Horizontal, Vertical, "eclat vs apriori")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-24s %12g %12g  %s\n", row.Metric, row.Horizontal, row.Vertical, row.Difference)
	}

	return b.String()
}
