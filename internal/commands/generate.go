package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okra-platform/rustgen/internal/codegen"
	_ "github.com/okra-platform/rustgen/internal/codegen/rustlang"
	"github.com/okra-platform/rustgen/internal/config"
	"github.com/okra-platform/rustgen/internal/ingest"
	"github.com/rs/zerolog"
)

// GenerateResult describes one generation run
type GenerateResult struct {
	SchemaPath string
	OutputPath string
	Bytes      int
	// Unchanged is set when the output already had the generated contents
	Unchanged bool
}

// GenerateCommand turns the configured schema into a Rust source file
type GenerateCommand struct {
	cfg        *config.Config
	projectDir string
	loaders    *ingest.Registry
	generators *codegen.Registry
	logger     zerolog.Logger
}

// NewGenerateCommand creates a generate command for the project rooted at
// projectDir
func NewGenerateCommand(cfg *config.Config, projectDir string, logger zerolog.Logger) *GenerateCommand {
	return &GenerateCommand{
		cfg:        cfg,
		projectDir: projectDir,
		loaders:    ingest.DefaultRegistry,
		generators: codegen.DefaultRegistry,
		logger:     logger,
	}
}

// Generate loads the project config and writes the generated module
func (c *Controller) Generate(ctx context.Context) error {
	cfg, projectDir, err := c.loadConfig()
	if err != nil {
		return err
	}

	result, err := NewGenerateCommand(cfg, projectDir, c.Logger).Run(ctx)
	if err != nil {
		return err
	}

	if result.Unchanged {
		c.Logger.Info().Str("output", result.OutputPath).Msg("output is up to date")
		return nil
	}
	c.Logger.Info().
		Str("schema", result.SchemaPath).
		Str("output", result.OutputPath).
		Int("bytes", result.Bytes).
		Msg("generated rust module")
	return nil
}

func (c *Controller) loadConfig() (*config.Config, string, error) {
	if c.Flags.ConfigPath != "" {
		cfg, err := config.LoadFromPath(c.Flags.ConfigPath)
		if err != nil {
			return nil, "", err
		}
		abs, err := filepath.Abs(c.Flags.ConfigPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(abs), nil
	}
	return config.Load()
}

// Run performs a single generation
func (gc *GenerateCommand) Run(ctx context.Context) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schemaPath := config.Resolve(gc.projectDir, gc.cfg.Schema)
	outputPath := config.Resolve(gc.projectDir, gc.cfg.Output.Path)
	result := &GenerateResult{SchemaPath: schemaPath, OutputPath: outputPath}

	s, err := gc.loaders.LoadFile(schemaPath)
	if err != nil {
		return nil, err
	}
	gc.logger.Debug().
		Str("schema", schemaPath).
		Int("types", len(s.Types)).
		Int("enums", len(s.Enums)).
		Int("services", len(s.Services)).
		Msg("loaded schema")

	if gc.cfg.SchemaVersion != "" {
		if err := s.CheckVersion(gc.cfg.SchemaVersion); err != nil {
			return nil, fmt.Errorf("%s: %w", schemaPath, err)
		}
	}

	generator, err := gc.generators.Get(gc.cfg.Language, codegen.Options{
		ModuleName:      gc.cfg.Output.Module,
		Derives:         gc.cfg.Output.Derives,
		IncludeComments: !gc.cfg.Output.NoComments,
		Logger:          gc.logger,
	})
	if err != nil {
		return nil, err
	}

	code, err := generator.Generate(s)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s code: %w", generator.Language(), err)
	}
	result.Bytes = len(code)

	if existing, err := os.ReadFile(outputPath); err == nil && bytes.Equal(existing, code) {
		result.Unchanged = true
		return result, nil
	}

	if err := writeFileAtomic(outputPath, code); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return result, nil
}

// writeFileAtomic replaces path through a temp file in the same directory
// so watchers never observe a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
