package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/pkg/templexp"
)

// AppPaths 返回应用专属的配置文件路径，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//
// 在任意项目目录中运行的工具应只使用这些路径，避免误读其他程序的 config.yaml。
func AppPaths(appName string) []string {
	if appName == "" {
		return nil
	}

	paths := []string{"." + appName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}

	return append(paths, "/etc/"+appName+"/config.yaml")
}

// DefaultPaths 返回默认配置文件的搜索顺序：[AppPaths] 之后追加
// config.yaml 与 config/config.yaml 两个通用路径。
func DefaultPaths(appName ...string) []string {
	var paths []string
	if len(appName) > 0 {
		paths = AppPaths(appName[0])
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap, err := structToMap(defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("cfgm: encode defaults: %w", err)
	}

	if err := loadFirstFile(configMap, o); err != nil {
		return nil, err
	}

	keys := collectConfigKeys(reflect.TypeOf(defaultConfig))

	if o.envPrefix != "" {
		for envKey, path := range generateEnvBindings(o.envPrefix, keys) {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, path, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", path)
			}
		}
	}

	if o.cmd != nil {
		for path, typ := range keys {
			flag := strings.ReplaceAll(path, ".", "-")
			if o.cmd.IsSet(flag) {
				setCLIFlagValue(o.cmd, configMap, path, flag, typ)
			}
		}
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("cfgm: failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的 CLI 便捷版本：注入 [WithCommand]，appName 非空时注入 [WithAppName]。
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "netgen",
//	    cfgm.WithEnvPrefix("NETGEN_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return Load(defaultConfig, append(base, opts...)...)
}

// loadFirstFile 合并搜索路径中第一个可读取的配置文件。
func loadFirstFile(configMap map[string]any, o *options) error {
	for _, path := range o.configPaths {
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if !o.noTemplateExpansion {
			expanded, err := templexp.ExpandTemplate(string(content))
			if err != nil {
				return fmt.Errorf("cfgm: expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return fmt.Errorf("cfgm: parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path)

		return nil
	}

	slog.Debug("No config file found, using defaults")

	return nil
}

// generateEnvBindings 生成 环境变量名 → 配置 key 的映射。
//
// 示例 (前缀 "NETGEN_")：
//   - network.template → NETGEN_NETWORK_TEMPLATE
//   - log.level → NETGEN_LOG_LEVEL
func generateEnvBindings(prefix string, keys map[string]reflect.Type) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// setCLIFlagValue 按字段类型读取 CLI 值并写入配置 map，不支持的类型被忽略。
func setCLIFlagValue(cmd *cli.Command, config map[string]any, path, flag string, typ reflect.Type) {
	if typ == durationType {
		setByPath(config, path, cmd.Duration(flag))

		return
	}

	switch typ.Kind() {
	case reflect.String:
		setByPath(config, path, cmd.String(flag))
	case reflect.Bool:
		setByPath(config, path, cmd.Bool(flag))
	case reflect.Int:
		setByPath(config, path, cmd.Int(flag))
	case reflect.Int64:
		setByPath(config, path, cmd.Int64(flag))
	case reflect.Float64:
		setByPath(config, path, cmd.Float64(flag))
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			setByPath(config, path, cmd.StringSlice(flag))
		}
	default:
	}
}

var durationType = reflect.TypeFor[time.Duration]()
