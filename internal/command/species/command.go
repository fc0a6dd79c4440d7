// Package species 提供 species 命令：查看与校验物种定义文件。
package species

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/command"
)

func pathFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "network-species",
			Aliases: []string{"s"},
			Value:   command.Defaults.Network.Species,
			Usage:   "物种定义文件路径",
		},
		&cli.StringFlag{
			Name:    "network-template",
			Aliases: []string{"t"},
			Value:   command.Defaults.Network.Template,
			Usage:   "网络模板文件路径，用于查找相对的物种文件",
		},
	}
}

// Command 物种命令
var Command = newCommand()

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "species",
		Usage: "查看与校验物种定义",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "按注册顺序输出物种",
				Flags: append(append([]cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   formatTable,
						Usage:   "输出格式: table|yaml|json",
					},
				}, pathFlags()...), command.LogFlags()...),
				Action: listAction,
			},
			{
				Name:   "check",
				Usage:  "校验物种定义并报告全部错误",
				Flags:  append(append([]cli.Flag{}, pathFlags()...), command.LogFlags()...),
				Action: checkAction,
			},
		},
	}
}
