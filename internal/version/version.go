// Package version 提供版本信息与 version 子命令。
package version

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 可执行文件名称。
const AppRawName = "netgen"

// Version 由构建时 -ldflags "-X" 注入，为空时读取模块构建信息。
var Version = ""

// GetVersion 返回版本字符串。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

// Command version 子命令。
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s\n", AppRawName, GetVersion())

		return err
	},
}
