package species

import (
	"fmt"
	"io"
	"os"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/linescan"
)

// Build 解析物种定义并返回注册表。
//
// 注册表总是返回（包含到目前为止接受的条目）；存在诊断时 error 为 *[ValidationError]。
// 读取 r 失败时返回包装后的 I/O 错误，此时注册表为 nil。
func Build(r io.Reader) (*Registry, error) {
	lines, err := linescan.ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("species: read definitions: %w", err)
	}

	reg := NewRegistry()
	firstLine := make(map[string]int)

	var diags []error
	for i, line := range lines {
		lineNo := i + 1

		fields := linescan.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != FieldsPerLine {
			diags = append(diags, &FieldCountError{
				Line:   lineNo,
				Fields: len(fields),
				Text:   linescan.StripComment(line),
			})

			continue
		}

		s := Species{
			Name:      fields[0],
			ShortName: fields[1],
			A:         fields[2],
			Z:         fields[3],
		}

		// 重复条目记为错误但仍然追加，保持后续条目的序号不变
		if prev, ok := firstLine[s.Name]; ok {
			diags = append(diags, &DuplicateSpeciesError{Line: lineNo, FirstLine: prev, Name: s.Name})
		} else {
			firstLine[s.Name] = lineNo
		}

		reg.append(s)
	}

	if len(diags) > 0 {
		return reg, &ValidationError{Diagnostics: diags}
	}

	return reg, nil
}

// BuildFile 打开 path 并调用 [Build]；打开失败的错误包装了底层 *fs.PathError。
func BuildFile(path string) (*Registry, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the build system
	if err != nil {
		return nil, fmt.Errorf("species: open definitions: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Build(f)
}
