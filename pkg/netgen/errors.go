package netgen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGenerationFailed 生成失败，输出文件已被替换为失败产物。
	ErrGenerationFailed = errors.New("netgen: generation failed")
	// ErrMissingFile 输入文件无法打开。
	ErrMissingFile = errors.New("netgen: file not found")
	// ErrUnknownKeyword 严格模式下遇到未知标记关键字。
	ErrUnknownKeyword = errors.New("netgen: unknown marker keyword")
)

// MissingFileError 输入文件无法打开，Tried 为依次尝试过的路径。
type MissingFileError struct {
	Role  string // "template" 或 "species"
	Tried []string
	Err   error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("netgen: %s file %s does not exist: %v", e.Role, strings.Join(e.Tried, ", "), e.Err)
}

// Unwrap 返回底层 I/O 错误。
func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// Is 使 errors.Is(err, ErrMissingFile) 成立。
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// UnknownKeywordError 模板第 Line 行的关键字没有展开规则。
type UnknownKeywordError struct {
	Line    int
	Keyword string
}

func (e *UnknownKeywordError) Error() string {
	return fmt.Sprintf("netgen: template line %d: unknown marker keyword %q (known: %s)",
		e.Line, e.Keyword, strings.Join(Keywords(), ", "))
}

// Is 使 errors.Is(err, ErrUnknownKeyword) 成立。
func (e *UnknownKeywordError) Is(target error) bool {
	return target == ErrUnknownKeyword
}

// GenerationError 生成在某个阶段失败，失败产物已写入 Output。
type GenerationError struct {
	Stage  string
	Output string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("netgen: %s failed, wrote failure artifact to %s: %v", e.Stage, e.Output, e.Err)
}

// Unwrap 返回导致失败的原因。
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is 使 errors.Is(err, ErrGenerationFailed) 成立。
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}
