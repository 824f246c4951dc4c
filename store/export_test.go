package store_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
	"github.com/katalvlaran/lvbasket/store"
)

func sampleRules() []rules.Rule {
	return []rules.Rule{
		{Antecedent: itemset.New("bread"), Consequent: itemset.New("milk"), Support: 0.5, Confidence: 2.0 / 3, Lift: 8.0 / 9},
		{Antecedent: itemset.New("jam", "tea"), Consequent: itemset.New("honey"), Support: 0.25, Confidence: 1, Lift: 2},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := store.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, store.FormatJSON, f)

	_, err = store.ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteRulesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, store.WriteRules(&buf, sampleRules(), store.FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "antecedent,consequent,support,confidence,lift", lines[0])
	assert.Equal(t, "bread,milk,0.5000,0.6667,0.8889", lines[1])
	assert.Equal(t, "\"jam,tea\",honey,0.2500,1.0000,2.0000", lines[2])
}

func TestRulesJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, store.WriteRules(&buf, sampleRules(), store.FormatJSON))
	assert.Contains(t, buf.String(), `"antecedent": [`)

	got, err := store.ReadRulesJSON(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "{jam, tea}", got[1].Antecedent.String())
	assert.Equal(t, 2.0, got[1].Lift)
}

func TestWriteRulesJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, store.WriteRulesJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteLevelsJSON(t *testing.T) {
	l1 := make(itemset.SupportMap)
	l1.Put(itemset.New("milk"), 0.75)
	l1.Put(itemset.New("bread"), 0.75)
	l2 := make(itemset.SupportMap)
	l2.Put(itemset.New("bread", "milk"), 0.5)

	var buf bytes.Buffer
	require.NoError(t, store.WriteLevelsJSON(&buf, itemset.Levels{l1, l2}))
	s := buf.String()
	assert.Less(t, strings.Index(s, `"bread"`), strings.Index(s, `"milk"`))
	assert.Contains(t, s, `"size": 2`)
}

func TestWriteItemFrequencies(t *testing.T) {
	counts := []itemset.ItemCount{{Item: "milk", Count: 3}, {Item: "ice, cream", Count: 1}}

	tests := []struct {
		name   string
		format store.Format
		want   string
	}{
		{"csv", store.FormatCSV, "item,count\nmilk,3\n\"ice, cream\",1\n"},
		{"json", store.FormatJSON, `[{"item":"milk","count":3},{"item":"ice, cream","count":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, store.WriteItemFrequencies(&buf, counts, tt.format))
			if tt.format == store.FormatJSON {
				assert.JSONEq(t, tt.want, buf.String())
			} else {
				assert.Equal(t, tt.want, buf.String())
			}
		})
	}

	assert.Error(t, store.WriteItemFrequencies(&bytes.Buffer{}, counts, store.Format("xml")))
}
