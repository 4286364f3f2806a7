package feed

import (
	"strconv"
	"testing"
)

// TestDedupe 验证去重保留首次出现的元素且顺序不变
func TestDedupe(t *testing.T) {
	keyOf := func(s string) string { return s }

	t.Run("FirstOccurrenceWins", func(t *testing.T) {
		got := Dedupe([]string{"a", "b", "a", "c", "b", "a"}, keyOf)
		want := []string{"a", "b", "c"}
		if len(got) != len(want) {
			t.Fatalf("长度不对: got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("第 %d 个元素: got %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("NilInput", func(t *testing.T) {
		got := Dedupe(nil, keyOf)
		if got == nil || len(got) != 0 {
			t.Errorf("nil 输入应返回空数组, got %v", got)
		}
	})

	t.Run("NoDuplicateKeys", func(t *testing.T) {
		// 属性：输出里任意两个元素的键都不同
		input := make([]int, 0, 100)
		for i := 0; i < 100; i++ {
			input = append(input, i%7)
		}
		got := Dedupe(input, func(n int) string { return strconv.Itoa(n) })
		seen := map[int]bool{}
		for _, n := range got {
			if seen[n] {
				t.Fatalf("输出里出现重复键 %d", n)
			}
			seen[n] = true
		}
		if len(got) != 7 {
			t.Errorf("去重后应剩 7 个, got %d", len(got))
		}
	})

	t.Run("KeepsFirstElementNotLast", func(t *testing.T) {
		type rec struct{ key, val string }
		got := Dedupe([]rec{{"k", "first"}, {"k", "second"}}, func(r rec) string { return r.key })
		if len(got) != 1 || got[0].val != "first" {
			t.Errorf("应保留第一次出现的元素, got %v", got)
		}
	})
}
