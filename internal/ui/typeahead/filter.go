package typeahead

import "strings"

// Filter keeps the options whose label contains query, ignoring case.
// Order is preserved and options is never modified. An empty query keeps
// every option; a missing label never matches a non-empty query.
func Filter[T any](options []T, query, labelKey string) []T {
	out := make([]T, 0, len(options))
	if query == "" {
		return append(out, options...)
	}

	q := strings.ToLower(query)
	for _, o := range options {
		l, ok := LabelOf(o, labelKey)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(l), q) {
			out = append(out, o)
		}
	}
	return out
}
