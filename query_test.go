package pathmaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuery(t *testing.T) {
	testCases := []struct {
		name     string
		query    any
		expected string
	}{
		{name: "nil", query: nil, expected: ""},
		{name: "undefined", query: Undefined, expected: ""},
		{name: "empty query", query: Query{}, expected: ""},
		{name: "empty map", query: map[string]any{}, expected: ""},
		{name: "empty payload", query: Payload{}, expected: ""},
		{name: "ordered", query: Q("a", "a", "b", "b"), expected: "?a=a&b=b"},
		{name: "insertion order kept", query: Q("z", 1, "a", 2), expected: "?z=1&a=2"},
		{name: "map sorted", query: map[string]any{"b": "b", "a": "a"}, expected: "?a=a&b=b"},
		{name: "string map", query: map[string]string{"q": "x y"}, expected: "?q=x%20y"},
		{name: "prebuilt string", query: "?x=a b", expected: "?x=a b"},
		{name: "empty string", query: "", expected: ""},
		{name: "value escaped", query: Q("redirect", "/dashboard"), expected: "?redirect=%2Fdashboard"},
		{name: "key not escaped", query: Q("a b/c", "d"), expected: "?a b/c=d"},
		{name: "space is %20", query: Q("q", "the query"), expected: "?q=the%20query"},
		{name: "duplicate keys", query: Q("a", 1, "a", 2), expected: "?a=1&a=2"},
		{name: "null value", query: Q("a", nil), expected: "?a=null"},
		{name: "undefined value", query: Q("a", Undefined), expected: "?a=undefined"},
		{name: "slice value", query: Q("ids", []any{1, "x y"}), expected: "?ids=1%2Cx%20y"},
		{name: "int map", query: map[string]int{"page": 2, "a": 1}, expected: "?a=1&page=2"},
		{name: "defined key map", query: map[routeName]string{"q": "x y"}, expected: "?q=x%20y"},
		{name: "nil int map", query: map[string]int(nil), expected: ""},
		{name: "defined string", query: routeName("?x=1"), expected: "?x=1"},
		{name: "non string keys", query: map[int]string{1: "a"}, expected: ""},
		{name: "number", query: 42, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodeQuery(tc.query))
		})
	}
}

func TestPercentEncode(t *testing.T) {
	testCases := map[string]string{
		"":              "",
		"plain":         "plain",
		"AZaz09":        "AZaz09",
		"-_.!~*'()":     "-_.!~*'()",
		"the query":     "the%20query",
		"/dashboard":    "%2Fdashboard",
		"a+b&c=d":       "a%2Bb%26c%3Dd",
		"?#[]@:$,;":     "%3F%23%5B%5D%40%3A%24%2C%3B",
		"100%":          "100%25",
		"ü":             "%C3%BC",
		"日本":            "%E6%97%A5%E6%9C%AC",
		"line\nbreak\t": "line%0Abreak%09",
	}
	for in, expected := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, PercentEncode(in))
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	q := Q("a", 1, "b")
	assert.Equal(t, Query{{Key: "a", Value: 1}, {Key: "b", Value: Undefined}}, q)

	v, ok := q.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = q.Get("missing")
	assert.False(t, ok)

	added := q.Add("c", "x")
	assert.Len(t, q, 2, "Add must not modify the receiver")
	assert.Len(t, added, 3)
	assert.Equal(t, map[string]any{"a": 1, "b": Undefined, "c": "x"}, added.Map())
}

func BenchmarkEncodeQuery(b *testing.B) {
	q := Q("q", "the query", "page", 2, "redirect", "/dashboard")
	for i := 0; i < b.N; i++ {
		EncodeQuery(q)
	}
}
