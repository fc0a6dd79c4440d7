package species

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/261015-go-pkg-netgen/internal/command"
	"github.com/lwmacct/261015-go-pkg-netgen/pkg/netgen"
	"github.com/lwmacct/261015-go-pkg-netgen/pkg/species"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// load 加载配置并解析物种文件；校验失败时仍返回已构建的注册表。
func load(cmd *cli.Command) (*species.Registry, string, error) {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return nil, "", cli.Exit(err.Error(), command.ExitUsage)
	}
	if _, err := command.SetupLogger(command.ErrWriter(cmd), cfg.Log); err != nil {
		return nil, "", cli.Exit(err.Error(), command.ExitUsage)
	}
	if cfg.Network.Species == "" {
		return nil, "", cli.Exit("missing --network-species (-s)", command.ExitUsage)
	}

	path, err := netgen.ResolveSpeciesPath(cfg.Network.Species, cfg.Network.Template)
	if err != nil {
		return nil, "", cli.Exit(err.Error(), command.ExitUsage)
	}

	reg, err := species.BuildFile(path)

	return reg, path, err
}

func listAction(_ context.Context, cmd *cli.Command) error {
	reg, _, err := load(cmd)

	var vErr *species.ValidationError
	if err != nil && !errors.As(err, &vErr) {
		return err
	}

	if werr := writeRegistry(command.Writer(cmd), reg, cmd.String("format")); werr != nil {
		return cli.Exit(werr.Error(), command.ExitUsage)
	}
	if vErr != nil {
		return cli.Exit(vErr.Error(), command.ExitFailure)
	}

	return nil
}

func checkAction(_ context.Context, cmd *cli.Command) error {
	reg, path, err := load(cmd)

	var vErr *species.ValidationError
	if err != nil && !errors.As(err, &vErr) {
		return err
	}

	w := command.Writer(cmd)
	if vErr != nil {
		for _, d := range vErr.Diagnostics {
			_, _ = fmt.Fprintf(w, "%s: %v\n", path, d)
		}

		return cli.Exit(fmt.Sprintf("%s: %d error(s)", path, len(vErr.Diagnostics)), command.ExitFailure)
	}

	_, err = fmt.Fprintf(w, "%s: ok, %d species\n", path, reg.Len())

	return err
}

// writeRegistry 按 format 输出注册表。
func writeRegistry(w io.Writer, reg *species.Registry, format string) error {
	switch format {
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "INDEX\tNAME\tSHORT\tA\tZ")
		for i, s := range reg.All() {
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, s.Name, s.ShortName, s.A, s.Z)
		}

		return tw.Flush()
	case formatYAML:
		enc := yamlv3.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reg); err != nil {
			return err
		}

		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(reg.Records())
	default:
		return fmt.Errorf("unknown format %q, want table|yaml|json", format)
	}
}
