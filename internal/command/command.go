// Package command 提供各子命令共享的默认配置与日志初始化。
package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/config"
	"github.com/lwmacct/261015-go-pkg-netgen/pkg/cfgm"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// NewLogger 按日志配置创建 slog.Logger。
func NewLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}

// SetupLogger 创建日志记录器并设为 slog 默认值。
func SetupLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	logger, err := NewLogger(w, cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return logger, nil
}

// 退出码。
const (
	ExitFailure = 1 // 物种定义校验失败等生成错误
	ExitUsage   = 2 // 缺少必需参数或输入文件
)

// LogFlags 返回所有子命令共用的日志 flags。
func LogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别: debug|info|warn|error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Value: Defaults.Log.Format,
			Usage: "日志格式: text|json",
		},
	}
}

// Writer 返回命令的标准输出，未设置时为 os.Stdout。
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// ErrWriter 返回命令的错误输出，未设置时为 os.Stderr。
func ErrWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}

// LoadConfig 加载配置：默认值 → 应用配置文件 → NETGEN_ 环境变量 → CLI flags。
//
// 只搜索 [cfgm.AppPaths] 给出的应用专属路径，构建目录下其他程序的 config.yaml 不会被读取。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	return cfgm.LoadCmd(cmd, config.DefaultConfig(), "",
		cfgm.WithConfigPaths(cfgm.AppPaths(config.AppName)...),
		cfgm.WithEnvPrefix(config.EnvPrefix),
	)
}
