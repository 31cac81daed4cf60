package typeahead_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bessdsv/kitematic/internal/ui/typeahead"
)

type labeled struct{ id int }

func (l labeled) Label(key string) (string, bool) {
	if key != "custom" {
		return "", false
	}
	return strings.Repeat("x", l.id), true
}

type tagged struct {
	Display string `json:"display_name,omitempty"`
	hidden  string
	Count   int
}

func TestLabelOf(t *testing.T) {
	name := "web"
	tests := []struct {
		name   string
		option any
		key    string
		want   string
		wantOK bool
	}{
		{"map any", map[string]any{"label": "db"}, "label", "db", true},
		{"map string", map[string]string{"Name": "web"}, "Name", "web", true},
		{"map missing", map[string]any{"other": "db"}, "label", "", false},
		{"map nil value", map[string]any{"label": nil}, "label", "", false},
		{"struct field", container{Name: "worker"}, "Name", "worker", true},
		{"struct pointer", &container{Name: "worker"}, "Name", "worker", true},
		{"nil pointer", (*container)(nil), "Name", "", false},
		{"json tag", tagged{Display: "Pretty"}, "display_name", "Pretty", true},
		{"unexported field", tagged{hidden: "secret"}, "hidden", "", false},
		{"non-string field", tagged{Count: 42}, "Count", "42", true},
		{"missing field", container{Name: "x"}, "label", "", false},
		{"string option", "plain", "label", "plain", true},
		{"string pointer field", map[string]*string{"label": &name}, "label", "web", true},
		{"labeler", labeled{id: 3}, "custom", "xxx", true},
		{"labeler missing", labeled{id: 3}, "label", "", false},
		{"nil", nil, "label", "", false},
		{"int", 7, "label", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := typeahead.LabelOf(tt.option, tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	options := []container{{"db"}, {"Web"}, {"worker"}, {"cache"}}

	got := typeahead.Filter(options, "W", "Name")
	assert.Equal(t, []container{{"Web"}, {"worker"}}, got)

	got = typeahead.Filter(options, "ER", "Name")
	assert.Equal(t, []container{{"worker"}}, got)

	got = typeahead.Filter(options, "zzz", "Name")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilter_EmptyQueryKeepsAll(t *testing.T) {
	options := []container{{"db"}, {"web"}, {"worker"}}
	got := typeahead.Filter(options, "", "Name")
	assert.Equal(t, options, got)

	got[0].Name = "changed"
	assert.Equal(t, "db", options[0].Name)
}

func TestFilter_MissingLabelNeverMatches(t *testing.T) {
	options := []map[string]any{
		{"label": "alpha"},
		{"name": "alpha"},
		{"label": nil},
	}
	assert.Len(t, typeahead.Filter(options, "a", "label"), 1)
	assert.Len(t, typeahead.Filter(options, "", "label"), 3)
}

func TestFilter_IsOrderedSubsequence(t *testing.T) {
	options := []container{
		{"alpha"}, {"Bravo"}, {"charlie"}, {"DELTA"}, {"echo"},
		{"foxtrot"}, {"golf"}, {"hotel"}, {"india"}, {"Juliett"},
	}
	queries := []string{"", "a", "A", "o", "L", "ta", "ot", "xyz", "e", "ECHO"}

	for _, q := range queries {
		got := typeahead.Filter(options, q, "Name")

		j := 0
		for _, o := range got {
			assert.Contains(t, strings.ToLower(o.Name), strings.ToLower(q))
			for j < len(options) && options[j] != o {
				j++
			}
			require.Less(t, j, len(options), "query %q returned %v out of order", q, o)
			j++
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	options := []container{{"db"}, {"web"}, {"worker"}}
	snapshot := append([]container(nil), options...)

	_ = typeahead.Filter(options, "w", "Name")
	assert.Equal(t, snapshot, options)
}
