package netgen

import (
	"fmt"
	"io"
	"os"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/linescan"
)

// Template 完整读入内存的模板，每行保留原始行尾。
type Template struct {
	Lines []string
}

// ReadTemplate 读取 r 的全部行。
func ReadTemplate(r io.Reader) (*Template, error) {
	lines, err := linescan.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("netgen: read template: %w", err)
	}

	return &Template{Lines: lines}, nil
}

// ReadTemplateFile 打开 path 并调用 [ReadTemplate]；文件不存在时返回 *[MissingFileError]。
func ReadTemplateFile(path string) (*Template, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the build system
	if err != nil {
		return nil, &MissingFileError{Role: "template", Tried: []string{path}, Err: err}
	}
	defer func() { _ = f.Close() }()

	return ReadTemplate(f)
}
