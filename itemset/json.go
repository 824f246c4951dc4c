package itemset

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the set as a sorted JSON array of strings.
func (s Itemset) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.items)
}

// UnmarshalJSON decodes a JSON array of labels, normalizing and
// deduplicating them.
func (s *Itemset) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = FromStrings(raw...)

	return nil
}
