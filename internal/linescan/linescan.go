// Package linescan 提供按行读取与注释剥离的公共工具。
//
// 物种定义文件与模板文件都按物理行处理，行尾换行符保留在每一行中，
// 以便模板原样输出时不改变文件的换行风格。
package linescan

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// CommentMarker 注释起始字符，其后直到行尾的内容都会被忽略。
const CommentMarker = "#"

// ReadLines 读取 r 的全部内容并按行切分，每行保留原始的行尾。
//
// 最后一行没有换行符时也会原样返回；空输入返回 nil。
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// StripComment 删除第一个 "#" 及其后的内容。
func StripComment(line string) string {
	if idx := strings.Index(line, CommentMarker); idx >= 0 {
		return line[:idx]
	}

	return line
}

// Fields 剥离注释后按空白切分；空行或纯注释行返回 nil。
func Fields(line string) []string {
	return strings.Fields(StripComment(line))
}
