package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
)

// Format selects a rule export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts "csv" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("store: unknown export format %q", s)
	}
}

// WriteRules encodes rs in the given format.
func WriteRules(w io.Writer, rs []rules.Rule, f Format) error {
	switch f {
	case FormatCSV:
		return WriteRulesCSV(w, rs)
	case FormatJSON:
		return WriteRulesJSON(w, rs)
	default:
		return fmt.Errorf("store: unknown export format %q", f)
	}
}

// WriteRulesCSV writes antecedent,consequent,support,confidence,lift rows.
// Itemsets are comma-joined inside their cell.
func WriteRulesCSV(w io.Writer, rs []rules.Rule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"antecedent", "consequent", "support", "confidence", "lift"}); err != nil {
		return fmt.Errorf("store: write header: %w", err)
	}
	for _, r := range rs {
		row := []string{
			strings.Join(r.Antecedent.Items(), ","),
			strings.Join(r.Consequent.Items(), ","),
			formatFloat(r.Support),
			formatFloat(r.Confidence),
			formatFloat(r.Lift),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("store: write rule: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}

// WriteRulesJSON writes rs as an indented JSON array.
func WriteRulesJSON(w io.Writer, rs []rules.Rule) error {
	if rs == nil {
		rs = []rules.Rule{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rs); err != nil {
		return fmt.Errorf("store: encode rules: %w", err)
	}

	return nil
}

// ReadRulesJSON decodes a JSON array written by WriteRulesJSON.
func ReadRulesJSON(r io.Reader) ([]rules.Rule, error) {
	var rs []rules.Rule
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, fmt.Errorf("store: decode rules: %w", err)
	}

	return rs, nil
}

// LevelEntry is the export form of one frequent itemset.
type LevelEntry struct {
	Size    int             `json:"size"`
	Itemset itemset.Itemset `json:"itemset"`
	Support float64         `json:"support"`
}

// WriteLevelsJSON writes every frequent itemset, level by level in key
// order, as a JSON array.
func WriteLevelsJSON(w io.Writer, levels itemset.Levels) error {
	out := make([]LevelEntry, 0, levels.Count())
	for _, e := range levels.Entries() {
		out = append(out, LevelEntry{Size: e.Set.Len(), Itemset: e.Set, Support: e.Support})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("store: encode levels: %w", err)
	}

	return nil
}

// WriteItemFrequencies encodes counts in the given format.
func WriteItemFrequencies(w io.Writer, counts []itemset.ItemCount, f Format) error {
	switch f {
	case FormatCSV:
		return WriteItemFrequenciesCSV(w, counts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(counts); err != nil {
			return fmt.Errorf("store: encode item frequencies: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("store: unknown export format %q", f)
	}
}

// WriteItemFrequenciesCSV writes item,count rows in the order given.
func WriteItemFrequenciesCSV(w io.Writer, counts []itemset.ItemCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"item", "count"}); err != nil {
		return fmt.Errorf("store: write header: %w", err)
	}
	for _, c := range counts {
		if err := cw.Write([]string{c.Item, strconv.Itoa(c.Count)}); err != nil {
			return fmt.Errorf("store: write %s: %w", c.Item, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
