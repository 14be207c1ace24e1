package pathmaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	testCases := []struct {
		name      string
		path      string
		payload   Payload
		delimiter string
		prefix    string
		expected  string
	}{
		{name: "number", path: "/things/:id/", payload: Payload{"id": 10}, expected: "/things/10/"},
		{name: "missing key", path: "/things/:id/", payload: Payload{}, expected: "/things/:id/"},
		{name: "nil payload", path: "/things/:id/", payload: nil, expected: "/things/:id/"},
		{name: "other key", path: "/things/:id/", payload: Payload{"name": "x"}, expected: "/things/:id/"},
		{name: "null", path: "/things/:id", payload: Payload{"id": nil}, expected: "/things/null"},
		{name: "undefined", path: "/things/:id", payload: Payload{"id": Undefined}, expected: "/things/undefined"},
		{name: "bool", path: "/flags/:on", payload: Payload{"on": false}, expected: "/flags/false"},
		{name: "several", path: "/orgs/:org/users/:user", payload: Payload{"org": "acme", "user": 7}, expected: "/orgs/acme/users/7"},
		{name: "repeated token", path: ":a/:a", payload: Payload{"a": "x"}, expected: "x/x"},
		{name: "bare prefix", path: "/:/x", payload: Payload{"": "nope"}, expected: "/:/x"},
		{name: "token inside segment", path: "/user-:id", payload: Payload{"id": 1}, expected: "/user-:id"},
		{name: "no spanning", path: "/:a/b", payload: Payload{"a/b": "x"}, expected: "/:a/b"},
		{name: "scheme untouched", path: "http://h:8080/:id", payload: Payload{"id": 3}, expected: "http://h:8080/3"},
		{name: "value not escaped", path: "/:q", payload: Payload{"q": "a b/c"}, expected: "/a b/c"},
		{name: "slice value", path: "/:ids", payload: Payload{"ids": []int{1, 2}}, expected: "/1,2"},
		{name: "custom delimiter", path: "a.{b.c", payload: Payload{"b": "B"}, delimiter: ".", prefix: "{", expected: "a.B.c"},
		{name: "multi char delimiter", path: "x::$y::z", payload: Payload{"y": 1}, delimiter: "::", prefix: "$", expected: "x::1::z"},
		{name: "unicode prefix", path: "/§id", payload: Payload{"id": 5}, prefix: "§", expected: "/5"},
		{name: "unicode prefix alone", path: "/§", payload: Payload{"": 5}, prefix: "§", expected: "/§"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, p := tc.delimiter, tc.prefix
			if d == "" {
				d = DefaultDelimiter
			}
			if p == "" {
				p = DefaultTokenPrefix
			}
			assert.Equal(t, tc.expected, Merge(tc.path, tc.payload, d, p))
		})
	}
}

func TestPayloadNestedQuery(t *testing.T) {
	q, ok := Payload{"query": Q("a", 1)}.NestedQuery()
	assert.True(t, ok)
	assert.Equal(t, Q("a", 1), q)

	_, ok = Payload{"id": 1}.NestedQuery()
	assert.False(t, ok)

	_, ok = Payload(nil).NestedQuery()
	assert.False(t, ok)
}

func TestToPayload(t *testing.T) {
	assert.Equal(t, Payload{"a": 1}, toPayload(map[string]any{"a": 1}))
	assert.Equal(t, Payload{"a": "b"}, toPayload(map[string]string{"a": "b"}))
	assert.Equal(t, Payload{"a": 2, "b": "x"}, toPayload(Q("a", 1, "b", "x", "a", 2)))
	assert.Equal(t, Payload{"id": 10, "page": 2}, toPayload(map[string]int{"id": 10, "page": 2}))
	assert.Equal(t, Payload{"users": true}, toPayload(map[routeName]bool{"users": true}))
	assert.Nil(t, toPayload(map[string]int(nil)))
	assert.Nil(t, toPayload(map[int]string{1: "a"}))
	assert.Nil(t, toPayload(42))
	assert.Nil(t, toPayload(nil))
}

func TestMergeWithTypedMaps(t *testing.T) {
	b := New("http://api.site.test/")
	assert.Equal(t, "http://api.site.test/users/10", b.Build("users/:id", map[string]int{"id": 10}))
	assert.Equal(t, "http://api.site.test/flags/true", b.Build("flags/:on", map[string]bool{"on": true}))
	assert.Equal(t, "http://api.site.test/users/7", b.Sub("users/:id").Build(map[string]uint{"id": 7}))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"org", "team"}, Tokens("http://h:80/orgs/:org/teams/:team/", "/", ":"))
	assert.Nil(t, Tokens("/a/:/b", "/", ":"))
	assert.Equal(t, []string{"x"}, Tokens("a.$x.y", ".", "$"))

	b := New("http://api.site.test/").Sub("users/:id")
	assert.Equal(t, []string{"id"}, b.Tokens())
	assert.Empty(t, New("http://api.site.test/").Tokens())
}
