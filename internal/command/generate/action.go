package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/command"
	"github.com/lwmacct/261015-go-pkg-netgen/internal/config"
	"github.com/lwmacct/261015-go-pkg-netgen/pkg/netgen"
)

// ErrUsage 缺少必需的路径参数。
var ErrUsage = errors.New("invalid calling sequence")

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return cli.Exit(err.Error(), command.ExitUsage)
	}

	logger, err := command.SetupLogger(command.ErrWriter(cmd), cfg.Log)
	if err != nil {
		return cli.Exit(err.Error(), command.ExitUsage)
	}

	return exitError(run(ctx, cfg.Network, logger))
}

// run 校验参数后执行生成，不处理退出码。
func run(ctx context.Context, cfg config.NetworkConfig, logger *slog.Logger) error {
	if err := checkRequired(cfg); err != nil {
		return err
	}

	gen := netgen.NewGenerator(
		netgen.WithStrict(cfg.Strict),
		netgen.WithLogger(logger),
	)

	return gen.Run(ctx, netgen.Paths{
		Template: cfg.Template,
		Species:  cfg.Species,
		Output:   cfg.Output,
	})
}

func checkRequired(cfg config.NetworkConfig) error {
	var missing []string
	if cfg.Template == "" {
		missing = append(missing, "--network-template (-t)")
	}
	if cfg.Output == "" {
		missing = append(missing, "--network-output (-o)")
	}
	if cfg.Species == "" {
		missing = append(missing, "--network-species (-s)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrUsage, strings.Join(missing, ", "))
	}

	return nil
}

// exitError 将生成错误映射为进程退出码。
func exitError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUsage), errors.Is(err, netgen.ErrMissingFile):
		return cli.Exit(err.Error(), command.ExitUsage)
	default:
		return cli.Exit(err.Error(), command.ExitFailure)
	}
}
