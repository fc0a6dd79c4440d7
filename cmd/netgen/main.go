package main

import (
	"context"
	"fmt"
	"os"

	app "github.com/lwmacct/261015-go-pkg-netgen/internal/command/generate"
)

func main() {
	// cli.Exit 错误已由 urfave/cli 输出并以对应退出码结束进程，这里只处理其余错误
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
