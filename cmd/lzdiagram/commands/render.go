package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ankek/terraform-provider-landingzone/internal/config"
	"github.com/ankek/terraform-provider-landingzone/internal/generator"
)

type renderFlags struct {
	configPath string
	envFile    string
	cloud      string
	outputPath string
	dpi        float64
	title      string
}

// Render returns the command that writes a diagram to disk.
func Render() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a landing zone architecture diagram",
		Long: `Render one of the compiled-in landing zone diagrams to an image file.

Settings are resolved in this order, later sources winning:
  - built-in defaults (gcp, 300 DPI, <cloud>-landing-zone-architecture.png)
  - the HCL config file given with --config
  - command-line flags
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to HCL configuration file")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "Path to .env file exposed to the config as env.* (requires --config)")
	cmd.Flags().StringVar(&flags.cloud, "cloud", "", "Catalog to render: gcp, aws or azure (default: gcp)")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file (default: <cloud>-landing-zone-architecture.png)")
	cmd.Flags().Float64Var(&flags.dpi, "dpi", config.DefaultDPI, "Output resolution in dots per inch")
	cmd.Flags().StringVar(&flags.title, "title", "", "Override the diagram title")

	return cmd
}

func runRender(cmd *cobra.Command, flags renderFlags) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.configPath, flags.envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags only override the file when set explicitly
	if cmd.Flags().Changed("cloud") {
		cfg.Cloud = flags.cloud
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = flags.outputPath
	}
	if cmd.Flags().Changed("dpi") {
		cfg.DPI = flags.dpi
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = flags.title
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := generator.New(generator.WithLogger(logger))
	result, err := gen.Generate(cmd.Context(), cfg.DiagramConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	if !isTerminal(out) {
		green.DisableColor()
	}
	green.Fprintf(out, "%s Landing Zone architecture diagram saved as '%s'\n",
		strings.ToUpper(result.Cloud), result.OutputPath)

	return nil
}

// isTerminal reports whether w is a terminal file descriptor
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
