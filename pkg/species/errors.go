package species

import (
	"errors"
	"fmt"
	"strings"
)

// FieldsPerLine 每个数据行要求的字段数：name shortName A Z。
const FieldsPerLine = 4

// ErrInvalidDefinition 物种定义存在错误。
var ErrInvalidDefinition = errors.New("species: invalid definition")

// FieldCountError 数据行的字段数不是 [FieldsPerLine]。
type FieldCountError struct {
	Line   int    // 1 基物理行号
	Fields int    // 实际字段数
	Text   string // 剥离注释后的行内容
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("species: line %d: expected %d fields (name shortName A Z), got %d: %q",
		e.Line, FieldsPerLine, e.Fields, strings.TrimSpace(e.Text))
}

// Is 使 errors.Is(err, ErrInvalidDefinition) 成立。
func (e *FieldCountError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// DuplicateSpeciesError name 与之前的条目重复。
type DuplicateSpeciesError struct {
	Line      int
	FirstLine int
	Name      string
}

func (e *DuplicateSpeciesError) Error() string {
	return fmt.Sprintf("species: line %d: species %s already defined on line %d", e.Line, e.Name, e.FirstLine)
}

// Is 使 errors.Is(err, ErrInvalidDefinition) 成立。
func (e *DuplicateSpeciesError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// ValidationError 一次扫描中累积的全部诊断，按行号顺序排列。
type ValidationError struct {
	Diagnostics []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "species: %d invalid definition(s)", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		b.WriteString("\n  ")
		b.WriteString(d.Error())
	}

	return b.String()
}

// Unwrap 返回各条诊断，供 errors.As 匹配具体类型。
func (e *ValidationError) Unwrap() []error {
	return e.Diagnostics
}

// Is 使 errors.Is(err, ErrInvalidDefinition) 成立。
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDefinition
}
