// Package feed 实现房间动态的增量合并窗口：
// 弹幕 / 礼物 / PK 三类记录各自维护一个按时间倒序的滚动窗口，
// 支持首屏加载、向旧翻页、向新合并，以及时间跳转回放。
package feed

// Dedupe 按 keyOf 去重，保留每个键第一次出现的元素，相对顺序不变。
// 纯函数；nil 输入当空数组处理。
func Dedupe[T any](items []T, keyOf func(T) string) []T {
	out := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := keyOf(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
