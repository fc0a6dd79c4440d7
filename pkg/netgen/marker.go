package netgen

import "strings"

// Sentinel 标记两侧的分隔符。
const Sentinel = "@@"

// Marker 模板行中的标记。
type Marker struct {
	Keyword string
	Indent  string // 第一个 Sentinel 之前的原始字符
	Text    string // 完整的 "@@KEYWORD@@" 子串
}

// FindMarker 在 line 中查找标记。
//
// 关键字取第一个与最后一个 Sentinel 之间的文本；只有一个 Sentinel 时关键字为空。
func FindMarker(line string) (Marker, bool) {
	start := strings.Index(line, Sentinel)
	if start < 0 {
		return Marker{}, false
	}

	m := Marker{Indent: line[:start]}

	end := strings.LastIndex(line, Sentinel)
	if end < start+len(Sentinel) {
		m.Text = line[start : start+len(Sentinel)]

		return m, true
	}

	m.Keyword = line[start+len(Sentinel) : end]
	m.Text = line[start : end+len(Sentinel)]

	return m, true
}
