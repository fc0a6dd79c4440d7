package netgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lwmacct/261015-go-pkg-netgen/pkg/species"
)

// Paths 一次生成涉及的三个文件。
type Paths struct {
	Template string
	Species  string
	Output   string
}

// Generator 串联物种解析、模板渲染与输出写入。
type Generator struct {
	renderer *Renderer
	logger   *slog.Logger
	open     func(path string) (io.ReadCloser, error)
}

// NewGenerator 创建生成器，选项同时作用于内部的 [Renderer]。
func NewGenerator(opts ...Option) *Generator {
	r := NewRenderer(opts...)

	return &Generator{renderer: r, logger: r.opts.logger, open: openFile}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path) //nolint:gosec // path is supplied by the build system
}

// ResolveSpeciesPath 返回可打开的物种文件路径。
//
// 先尝试 path 本身；失败且 path 为相对路径时，再尝试模板所在目录下的同名路径。
func ResolveSpeciesPath(path, templatePath string) (string, error) {
	tried := []string{path}

	err := statFile(path)
	if err == nil {
		return path, nil
	}
	if filepath.IsAbs(path) {
		return "", &MissingFileError{Role: "species", Tried: tried, Err: err}
	}

	fallback := filepath.Join(filepath.Dir(templatePath), path)
	tried = append(tried, fallback)
	if err = statFile(fallback); err != nil {
		return "", &MissingFileError{Role: "species", Tried: tried, Err: err}
	}

	return fallback, nil
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	return nil
}

// Run 执行一次完整生成。
//
// 任一阶段失败时，Output 被替换为失败产物，返回的 error 满足
// errors.Is(err, ErrGenerationFailed)，并可继续匹配具体原因。
func (g *Generator) Run(ctx context.Context, p Paths) error {
	g.logger.Info("Creating network source", "output", p.Output)

	out, stage, err := g.generate(ctx, p)
	if err != nil {
		return g.fail(p.Output, stage, err)
	}

	if err := os.WriteFile(p.Output, out, 0o644); err != nil { //nolint:gosec // generated source is world-readable
		return fmt.Errorf("netgen: write output: %w", err)
	}
	g.logger.Info("Network source written", "output", p.Output, "bytes", len(out))

	return nil
}

func (g *Generator) generate(ctx context.Context, p Paths) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "setup", err
	}

	speciesPath, err := ResolveSpeciesPath(p.Species, p.Template)
	if err != nil {
		return nil, "species lookup", err
	}
	if speciesPath != p.Species {
		g.logger.Warn("Species file not found, using fallback", "path", p.Species, "fallback", speciesPath)
	}

	g.logger.Info("Working on species file", "path", speciesPath)
	reg, err := g.buildRegistry(speciesPath)
	if err != nil {
		if errors.Is(err, ErrMissingFile) {
			return nil, "species lookup", err
		}
		var vErr *species.ValidationError
		if errors.As(err, &vErr) {
			for _, d := range vErr.Diagnostics {
				g.logger.Error("Invalid species definition", "file", speciesPath, "error", d)
			}
		}

		return nil, "species parsing", err
	}
	g.logger.Debug("Species registry built", "count", reg.Len())

	if err := ctx.Err(); err != nil {
		return nil, "species parsing", err
	}

	tmpl, err := ReadTemplateFile(p.Template)
	if err != nil {
		return nil, "template read", err
	}

	var buf bytes.Buffer
	if err := g.renderer.Render(&buf, tmpl, reg); err != nil {
		return nil, "render", err
	}

	return buf.Bytes(), "", nil
}

// buildRegistry 打开并解析物种文件；存在但无法打开（权限、被删除）时同样返回 *MissingFileError。
func (g *Generator) buildRegistry(path string) (*species.Registry, error) {
	f, err := g.open(path)
	if err != nil {
		return nil, &MissingFileError{Role: "species", Tried: []string{path}, Err: err}
	}
	defer func() { _ = f.Close() }()

	return species.Build(f)
}

func (g *Generator) fail(output, stage string, cause error) error {
	genErr := &GenerationError{Stage: stage, Output: output, Err: cause}
	if err := WriteFailureArtifact(output); err != nil {
		g.logger.Error("Failed to write failure artifact", "output", output, "error", err)

		return errors.Join(genErr, fmt.Errorf("netgen: write failure artifact: %w", err))
	}
	g.logger.Error("Generation failed", "stage", stage, "output", output)

	return genErr
}
