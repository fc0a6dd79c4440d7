package netgen

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/lwmacct/261015-go-pkg-netgen/pkg/species"
)

// rule 单个关键字的展开规则。
//
// inline 非 nil 时在原行内替换标记；否则对每个物种输出一行 "indent array(i) = value"。
type rule struct {
	inline func(line string, m Marker, reg *species.Registry) string
	array  string
	value  func(species.Species) string
}

var rules = map[string]rule{
	"NSPEC": {
		inline: func(line string, m Marker, reg *species.Registry) string {
			return strings.ReplaceAll(line, m.Text, strconv.Itoa(reg.Len()))
		},
	},
	"SPEC_NAMES": {
		array: "spec_names",
		value: func(s species.Species) string { return quote(s.Name) },
	},
	"SHORT_SPEC_NAMES": {
		array: "short_spec_names",
		value: func(s species.Species) string { return quote(s.ShortName) },
	},
	"AION": {
		array: "aion",
		value: func(s species.Species) string { return s.A },
	},
	"ZION": {
		array: "zion",
		value: func(s species.Species) string { return s.Z },
	},
}

func quote(s string) string {
	return `"` + s + `"`
}

// Keywords 返回全部已知关键字（已排序）。
func Keywords() []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// expand 按规则输出标记行。
func (r rule) expand(w io.Writer, line string, m Marker, reg *species.Registry) error {
	if r.inline != nil {
		_, err := io.WriteString(w, r.inline(line, m, reg))

		return err
	}

	for i, s := range reg.All() {
		if _, err := fmt.Fprintf(w, "%s%s(%d) = %s\n", m.Indent, r.array, i, r.value(s)); err != nil {
			return err
		}
	}

	return nil
}
