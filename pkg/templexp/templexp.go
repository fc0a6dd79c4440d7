package templexp

import (
	"fmt"
	"os"
	"strings"
)

// Lookup 变量查找函数，签名与 os.LookupEnv 相同。
type Lookup func(name string) (string, bool)

// ExpandTemplate 使用当前环境变量展开 text。
func ExpandTemplate(text string) (string, error) {
	return Expand(text, os.LookupEnv)
}

// Expand 使用 lookup 展开 text 中的 ${...} 表达式。
//
// 仅在 ":?" / "?" 校验失败时返回 error。
func Expand(text string, lookup Lookup) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		switch {
		case text[i] != '$' || i+1 >= len(text):
			b.WriteByte(text[i])
			i++
		case text[i+1] == '$':
			b.WriteByte('$')
			i += 2
		case text[i+1] != '{':
			b.WriteByte('$')
			i++
		default:
			end := closingBrace(text, i+2)
			if end < 0 {
				b.WriteString(text[i:])

				return b.String(), nil
			}
			out, ok, err := expandExpr(text[i+2:end], lookup)
			if err != nil {
				return "", err
			}
			if ok {
				b.WriteString(out)
			} else {
				b.WriteString(text[i : end+1])
			}
			i = end + 1
		}
	}

	return b.String(), nil
}

// closingBrace 返回与 ${ 匹配的 "}" 位置，考虑嵌套。
func closingBrace(text string, from int) int {
	depth := 0
	for i := from; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

func expandExpr(expr string, lookup Lookup) (string, bool, error) {
	name, op, word, ok := splitExpr(expr)
	if !ok {
		return "", false, nil
	}

	val, set := lookup(name)
	missing := !set
	if strings.HasPrefix(op, ":") {
		missing = !set || val == ""
	}

	switch strings.TrimPrefix(op, ":") {
	case "":
		return val, true, nil
	case "-":
		if missing {
			out, err := Expand(word, lookup)

			return out, err == nil, err
		}

		return val, true, nil
	case "?":
		if missing {
			if word == "" {
				word = "parameter null or not set"
			}

			return "", false, fmt.Errorf("templexp: %s: %s", name, word)
		}

		return val, true, nil
	}

	return "", false, nil
}

// splitExpr 将 "NAME:-word" 拆分为 name、操作符与 word。
func splitExpr(expr string) (string, string, string, bool) {
	n := 0
	for n < len(expr) && isNameChar(expr[n], n == 0) {
		n++
	}
	if n == 0 {
		return "", "", "", false
	}

	name, rest := expr[:n], expr[n:]
	for _, op := range []string{"", ":-", ":?", "-", "?"} {
		if op == "" && rest == "" {
			return name, "", "", true
		}
		if op != "" && strings.HasPrefix(rest, op) {
			return name, op, rest[len(op):], true
		}
	}

	return "", "", "", false
}

func isNameChar(ch byte, first bool) bool {
	if ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
		return true
	}

	return !first && ch >= '0' && ch <= '9'
}
