// Package generate 提供 generate 命令：由物种定义与模板生成网络源文件。
package generate

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/command"
	"github.com/lwmacct/261015-go-pkg-netgen/pkg/netgen"
)

// Command 生成命令
var Command = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Usage:       "展开网络模板中的 @@KEYWORD@@ 标记",
		Description: "支持的关键字: " + strings.Join(netgen.Keywords(), ", "),
		Action:      action,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "network-template",
				Aliases: []string{"t"},
				Value:   command.Defaults.Network.Template,
				Usage:   "网络模板文件路径（必需）",
			},
			&cli.StringFlag{
				Name:    "network-output",
				Aliases: []string{"o"},
				Value:   command.Defaults.Network.Output,
				Usage:   "生成的源文件路径（必需）",
			},
			&cli.StringFlag{
				Name:    "network-species",
				Aliases: []string{"s"},
				Value:   command.Defaults.Network.Species,
				Usage:   "物种定义文件路径（必需），找不到时在模板目录下查找",
			},
			&cli.BoolFlag{
				Name:  "network-strict",
				Value: command.Defaults.Network.Strict,
				Usage: "未知标记关键字视为错误",
			},
		}, command.LogFlags()...),
	}
}
