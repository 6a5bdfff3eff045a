// Package form encodes key-value structures as
// application/x-www-form-urlencoded body text.
package form

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Encode serializes values into url-encoded form text. Keys are sorted at
// every level, so output is deterministic. Nested maps use bracket syntax
// (user[name]=x) and slices repeat the key with a [] suffix
// (tags[]=a&tags[]=b). Scalar values are formatted with fmt.
func Encode(values map[string]any) string {
	return strings.Join(flatten("", values), "&")
}

func flatten(prefix string, values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "[" + k + "]"
		}
		pairs = append(pairs, encodeValue(name, values[k])...)
	}
	return pairs
}

func encodeValue(name string, v any) []string {
	switch val := v.(type) {
	case map[string]any:
		return flatten(name, val)
	case []any:
		var pairs []string
		for _, item := range val {
			pairs = append(pairs, encodeValue(name+"[]", item)...)
		}
		return pairs
	case []string:
		pairs := make([]string, 0, len(val))
		for _, item := range val {
			pairs = append(pairs, pair(name+"[]", item))
		}
		return pairs
	case string:
		return []string{pair(name, val)}
	default:
		return []string{pair(name, fmt.Sprintf("%v", val))}
	}
}

func pair(name, value string) string {
	return url.QueryEscape(name) + "=" + url.QueryEscape(value)
}
