package netgen

import (
	"bufio"
	"io"

	"github.com/lwmacct/261015-go-pkg-netgen/pkg/species"
)

// Renderer 将注册表展开到模板中。
type Renderer struct {
	opts options
}

// NewRenderer 创建渲染器。
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{opts: newOptions(opts)}
}

// Render 先写文件头，再逐行输出模板。
//
// 不含 Sentinel 的行原样输出；标记行按关键字规则展开。同一对 (tmpl, reg) 的输出总是相同。
func (r *Renderer) Render(w io.Writer, tmpl *Template, reg *species.Registry) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(r.opts.header); err != nil {
		return err
	}

	for i, line := range tmpl.Lines {
		m, ok := FindMarker(line)
		if !ok {
			if _, err := bw.WriteString(line); err != nil {
				return err
			}

			continue
		}

		rl, known := rules[m.Keyword]
		if !known {
			if r.opts.strict {
				return &UnknownKeywordError{Line: i + 1, Keyword: m.Keyword}
			}
			r.opts.logger.Debug("Dropping template line with unknown marker", "line", i+1, "keyword", m.Keyword)

			continue
		}

		if err := rl.expand(bw, line, m, reg); err != nil {
			return err
		}
	}

	return bw.Flush()
}
