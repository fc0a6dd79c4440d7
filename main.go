package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/command/generate"
	"github.com/lwmacct/261015-go-pkg-netgen/internal/command/species"
	"github.com/lwmacct/261015-go-pkg-netgen/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "反应网络源文件生成工具",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			generate.Command,
			species.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
