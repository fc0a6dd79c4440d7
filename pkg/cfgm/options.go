package cfgm

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	appName             string // 应用名称，用于生成默认配置路径
	cmd                 *cli.Command
	configPaths         []string
	baseDir             string // 相对路径的解析基准，空表示当前工作目录
	envPrefix           string
	noTemplateExpansion bool
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，显式设置的 flags 覆盖其他来源（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithBaseDir 设置相对配置路径的解析基准，绝对路径不受影响。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
	}
}

// WithEnvPrefix 启用环境变量覆盖。
//
// 变量名为前缀加大写的配置 key，"." 与 "-" 转为 "_"。
// 例如前缀 "NETGEN_" 时，network.template → NETGEN_NETWORK_TEMPLATE。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutTemplateExpansion 关闭配置文件中 ${...} 的展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}
