package commands

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/okra-platform/rustgen/internal/config"
	"github.com/rs/zerolog"
)

//go:embed templates/*
var templatesFS embed.FS

const starterSchema = "schema.rgen.gql"

// InitOptions are the answers collected by the init form
type InitOptions struct {
	ProjectName string
	// Format is the config file extension: json, toml or yaml
	Format string
}

// FileSystem is the subset of os used by the init command
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// InitCommand writes a rustgen config and a starter schema into a directory
type InitCommand struct {
	dir         string
	filesystem  FileSystem
	templatesFS fs.FS
	logger      zerolog.Logger
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

// NewInitCommand creates an init command targeting dir
func NewInitCommand(dir string, logger zerolog.Logger) *InitCommand {
	return &InitCommand{
		dir:         dir,
		filesystem:  &osFileSystem{},
		templatesFS: templatesFS,
		logger:      logger,
	}
}

// Init scaffolds a project in the current directory
func (c *Controller) Init(ctx context.Context) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	return NewInitCommand(dir, c.Logger).Run(ctx)
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	for _, name := range config.FileNames {
		path := filepath.Join(ic.dir, name)
		if _, err := ic.filesystem.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", config.ErrConfigExists, path)
		}
	}

	var options *InitOptions
	var err error

	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := config.Default(options.ProjectName)
	configPath := filepath.Join(ic.dir, "rustgen."+options.Format)
	data, err := cfg.Encode(configPath)
	if err != nil {
		return err
	}
	if err := ic.filesystem.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	ic.logger.Info().Str("path", configPath).Msg("wrote config")

	schemaPath := config.Resolve(ic.dir, cfg.Schema)
	if _, err := ic.filesystem.Stat(schemaPath); err == nil {
		ic.logger.Info().Str("path", schemaPath).Msg("keeping existing schema")
		return nil
	}

	if err := ic.writeStarterSchema(schemaPath, cfg.Output.Module); err != nil {
		return fmt.Errorf("failed to write starter schema: %w", err)
	}
	ic.logger.Info().Str("path", schemaPath).Msg("wrote starter schema")
	return nil
}

func (ic *InitCommand) writeStarterSchema(path, namespace string) error {
	data, err := fs.ReadFile(ic.templatesFS, "templates/"+starterSchema)
	if err != nil {
		return err
	}
	data = []byte(strings.ReplaceAll(string(data), "{{namespace}}", namespace))

	if err := ic.filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ic.filesystem.WriteFile(path, data, 0644)
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	projectName := filepath.Base(ic.dir)
	format := "json"

	form := ic.createInitForm(&projectName, &format)

	if len(opts) > 0 {
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return &InitOptions{
		ProjectName: projectName,
		Format:      format,
	}, nil
}

func (ic *InitCommand) createInitForm(projectName *string, format *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used to derive the generated Rust module name").
				Value(projectName).
				Validate(validateProjectName),

			huh.NewSelect[string]().
				Title("Config format").
				Description("Format of the rustgen config file").
				Options(
					huh.NewOption("JSON", "json"),
					huh.NewOption("TOML", "toml"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(format),
		),
	)
}

func validateProjectName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("project name cannot be empty")
	}
	return nil
}
