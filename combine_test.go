package pathmaker

import (
	"fmt"
	"testing"
)

func TestCombine(t *testing.T) {
	// 定义一组测试用例
	testCases := []struct {
		a, b      any
		delimiter string
		expected  string
	}{
		// --- 基本情况 ---
		{a: "/api", b: "/v1", delimiter: "/", expected: "/api/v1"},
		{a: "/api/", b: "v1", delimiter: "/", expected: "/api/v1"},
		{a: "/api", b: "v1", delimiter: "/", expected: "/api/v1"},
		{a: "/api/", b: "/v1", delimiter: "/", expected: "/api/v1"},

		// --- 尾部分隔符保持不变 ---
		{a: "/api", b: "/v1/", delimiter: "/", expected: "/api/v1/"},
		{a: "/api/", b: "/", delimiter: "/", expected: "/api/"},
		{a: "/api", b: "/", delimiter: "/", expected: "/api/"},

		// --- 空片段 ---
		{a: "/users", b: "", delimiter: "/", expected: "/users"},
		{a: "/users/", b: nil, delimiter: "/", expected: "/users/"},
		{a: "", b: "users", delimiter: "/", expected: "/users"},
		{a: "", b: "/users", delimiter: "/", expected: "/users"},
		{a: "", b: "", delimiter: "/", expected: ""},

		// --- 不做清理, 只关心拼接处 ---
		{a: "/api//v1", b: "users", delimiter: "/", expected: "/api//v1/users"},
		{a: "/api/v1", b: "../v2", delimiter: "/", expected: "/api/v1/../v2"},
		{a: "a/", b: "//b", delimiter: "/", expected: "a//b"},

		// --- 其他分隔符 ---
		{a: "com.example", b: "api", delimiter: ".", expected: "com.example.api"},
		{a: "a::", b: "::b", delimiter: "::", expected: "a::b"},
		{a: "a", b: "b", delimiter: "::", expected: "a::b"},
		{a: "a:", b: "b", delimiter: "::", expected: "a:::b"},

		// --- 非字符串片段 ---
		{a: "http://api.site.test/", b: 10, delimiter: "/", expected: "http://api.site.test/10"},
		{a: []string{"a", "b"}, b: []any{"c", []any{"d/", "/e"}}, delimiter: "/", expected: "a/b/c/d/e"},
	}

	for _, tc := range testCases {
		// 使用 t.Run 为每个测试用例创建一个子测试，方便定位问题
		testName := fmt.Sprintf("a:'%v', b:'%v', d:'%s'", tc.a, tc.b, tc.delimiter)
		t.Run(testName, func(t *testing.T) {
			result := Combine(tc.a, tc.b, tc.delimiter)
			if result != tc.expected {
				t.Errorf("Combine(%v, %v, %q) = '%s'; want '%s'",
					tc.a, tc.b, tc.delimiter, result, tc.expected)
			}
		})
	}
}

// 拼接只关心端点处的分隔符, 因此满足结合律
func TestCombineAssociative(t *testing.T) {
	fragments := []string{"", "/", "//", "a", "a/", "/a", "/a/", "b//", "x/y"}
	for _, a := range fragments {
		for _, b := range fragments {
			for _, c := range fragments {
				left := Combine(Combine(a, b, "/"), c, "/")
				right := Combine(a, Combine(b, c, "/"), "/")
				if left != right {
					t.Errorf("combine(combine(%q,%q),%q) = %q, combine(%q,combine(%q,%q)) = %q",
						a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		fragment any
		expected string
	}{
		{name: "nil", fragment: nil, expected: ""},
		{name: "undefined", fragment: Undefined, expected: ""},
		{name: "string", fragment: "a/b", expected: "a/b"},
		{name: "bytes", fragment: []byte("a/b"), expected: "a/b"},
		{name: "number", fragment: 42, expected: "42"},
		{name: "float", fragment: 1.5, expected: "1.5"},
		{name: "bool", fragment: true, expected: "true"},
		{name: "empty slice", fragment: []any{}, expected: ""},
		{name: "single", fragment: []any{"only/"}, expected: "only/"},
		{name: "single nested", fragment: []any{[]any{"x"}}, expected: "x"},
		{name: "strings", fragment: []string{"a", "b", "c"}, expected: "a/b/c"},
		{name: "ints", fragment: []int{1, 2, 3}, expected: "1/2/3"},
		{name: "mixed", fragment: []any{10, "organizations/search"}, expected: "10/organizations/search"},
		{name: "nested", fragment: []any{"a", []any{"b", []string{"c", "d"}}, "e/"}, expected: "a/b/c/d/e/"},
		{name: "nil element", fragment: []any{"a", nil, "b"}, expected: "a/b"},
		{name: "nil pointer", fragment: (*string)(nil), expected: ""},
		{name: "nil pointer element", fragment: []any{(*string)(nil), "x"}, expected: "x"},
		{name: "defined string", fragment: routeName("users/:id"), expected: "users/:id"},
		{name: "defined strings", fragment: []routeName{"users", "me"}, expected: "users/me"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := Normalize(tc.fragment, "/"); result != tc.expected {
				t.Errorf("Normalize(%v) = %q; want %q", tc.fragment, result, tc.expected)
			}
		})
	}
}

// Normalize(S) 等于对 S 做 Combine 左折叠
func TestNormalizeIsFold(t *testing.T) {
	sequences := [][]string{
		{"a"},
		{"a", "b"},
		{"/a/", "/b/", "c"},
		{"", "x", "", "/y"},
		{"http://site.test/", "/api/", "v1", ""},
	}
	for _, seq := range sequences {
		expected := seq[0]
		for _, s := range seq[1:] {
			expected = Combine(expected, s, "/")
		}
		if got := Normalize(seq, "/"); got != expected {
			t.Errorf("Normalize(%q) = %q; want %q", seq, got, expected)
		}
	}
}

// 性能基准测试
func BenchmarkCombine(b *testing.B) {
	basePath := "/api/v1/some/long/path"
	relativePath := "/users/profile/details/"

	for i := 0; i < b.N; i++ {
		Combine(basePath, relativePath, "/")
	}
}

func BenchmarkNormalizeNested(b *testing.B) {
	fragment := []any{"api", []any{"v1", 10}, "users/"}
	for i := 0; i < b.N; i++ {
		Normalize(fragment, "/")
	}
}
