package netgen

import "os"

// FailureMessage 失败产物的内容，不是任何语言的合法源码。
const FailureMessage = "There was an error parsing the network files"

// WriteFailureArtifact 用 [FailureMessage] 覆盖 path。
func WriteFailureArtifact(path string) error {
	return os.WriteFile(path, []byte(FailureMessage), 0o644) //nolint:gosec // generated source is world-readable
}
