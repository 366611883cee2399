package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/collage-maker/internal/collage"
	"github.com/kozaktomas/collage-maker/internal/config"
	"github.com/kozaktomas/collage-maker/internal/fontres"
	"github.com/kozaktomas/collage-maker/internal/imagefit"
	"github.com/kozaktomas/collage-maker/internal/layout"
)

// Text size of the info panel, matching the fixed size of the original
// tool's info box.
const panelTextSize = 16

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build collage pages from a folder of images",
	Long: `Build arranges every image in a folder into printable collage pages.
Images are placed in directory order, up to --pics-per-page per page, each
rotated to the page orientation, scaled to its grid cell and stamped with
its capture date.

Example:
  collage-maker build --folder vacation --pics-per-page 20 --info-box`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("folder", "f", "images", "Folder containing the images")
	buildCmd.Flags().Int("width", 5100, "Width of collage page in pixels")
	buildCmd.Flags().Int("height", 6600, "Height of collage page in pixels")
	buildCmd.Flags().IntP("pics-per-page", "p", 30, "Amount of pictures per collage page")
	buildCmd.Flags().BoolP("border", "b", true, "Draw a border around each image")
	buildCmd.Flags().IntP("border-thickness", "t", 4, "Border thickness in pixels")
	buildCmd.Flags().StringP("border-color", "c", "255,255,255", "Border color (R,G,B)")
	buildCmd.Flags().IntP("padding", "P", 6, "Padding between images in pixels")
	buildCmd.Flags().StringP("align", "a", "left", "Alignment of images in each cell: left, center, right")
	buildCmd.Flags().StringP("font", "F", "", "Font file for captions (empty = OS default)")
	buildCmd.Flags().IntP("text-size", "s", 32, "Size of the caption text")
	buildCmd.Flags().Float64P("text-opacity", "o", 1.0, "Opacity of the caption text (0 to 1)")
	buildCmd.Flags().StringP("date-format", "d", "%m-%d", "Date format for image captions (strftime style)")
	buildCmd.Flags().StringP("prefix", "x", "collage", "Filename prefix for collage pages")
	buildCmd.Flags().StringP("bg-color", "g", "255,255,255", "Background color of the page (R,G,B)")
	buildCmd.Flags().BoolP("info-box", "i", false, "Draw an info box with date and parameters")
	buildCmd.Flags().BoolP("verbose", "v", true, "Per-image processing output")
	buildCmd.Flags().String("out-dir", ".", "Directory for finished pages")
	buildCmd.Flags().Int("workers", 1, "Number of pages to build in parallel")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	folder := mustGetString(cmd, "folder")
	workers := mustGetInt(cmd, "workers")

	// Font problems would recur on every page, so resolve before any work.
	fontPath, err := fontres.Resolve(cfg.Font)
	if err != nil {
		return fmt.Errorf("failed to resolve caption font: %w", err)
	}
	fnt, err := fontres.Load(fontPath)
	if err != nil {
		return fmt.Errorf("failed to load caption font: %w", err)
	}
	faces := func() collage.TextFaces {
		return collage.TextFaces{
			Caption: fontres.Face(fnt, cfg.TextSize),
			Panel:   fontres.Face(fnt, panelTextSize),
		}
	}

	sources, err := imagefit.LoadDirectory(folder, cfg.Verbose)
	if err != nil {
		return err
	}

	builder := collage.NewBuilder(cfg, faces)
	fmt.Printf("Run %s: %d images from %s\n", builder.RunID(), len(sources), folder)

	fmt.Println("Generating collages...")
	result := builder.BuildAll(sources, collage.BuildOptions{Workers: workers})
	fmt.Println("Collage generation complete.")
	fmt.Printf("Total time taken: %.2f seconds\n", result.Elapsed.Seconds())

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors: %d\n", len(result.Errors))
		for _, err := range result.Errors {
			fmt.Printf("  - %v\n", err)
		}
		return fmt.Errorf("%d of %d collage pages failed", len(result.Errors), len(result.Pages)+len(result.Errors))
	}

	return nil
}

// buildConfig layers the command-line flags over the environment-aware
// defaults: defaults.yaml, then COLLAGE_* variables, then explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Load()
	fl := cmd.Flags()

	if fl.Changed("width") {
		cfg.Width = mustGetInt(cmd, "width")
	}
	if fl.Changed("height") {
		cfg.Height = mustGetInt(cmd, "height")
	}
	if fl.Changed("pics-per-page") {
		cfg.PicsPerPage = mustGetInt(cmd, "pics-per-page")
	}
	if fl.Changed("padding") {
		cfg.Padding = mustGetInt(cmd, "padding")
	}
	if fl.Changed("border") {
		cfg.Border = mustGetBool(cmd, "border")
	}
	if fl.Changed("border-thickness") {
		cfg.BorderThickness = mustGetInt(cmd, "border-thickness")
	}
	if fl.Changed("border-color") {
		c, err := config.ParseRGB(mustGetString(cmd, "border-color"))
		if err != nil {
			return nil, err
		}
		cfg.BorderColor = c
	}
	if fl.Changed("align") {
		align, err := layout.ParseAlign(mustGetString(cmd, "align"))
		if err != nil {
			return nil, err
		}
		cfg.Align = align
	}
	if fl.Changed("font") {
		cfg.Font = mustGetString(cmd, "font")
	}
	if fl.Changed("text-size") {
		cfg.TextSize = float64(mustGetInt(cmd, "text-size"))
	}
	if fl.Changed("text-opacity") {
		opacity := mustGetFloat64(cmd, "text-opacity")
		if opacity < 0 || opacity > 1 {
			return nil, errors.New("--text-opacity must be between 0 and 1")
		}
		cfg.TextOpacity = opacity
	}
	if fl.Changed("date-format") {
		cfg.DateFormat = mustGetString(cmd, "date-format")
	}
	if fl.Changed("prefix") {
		cfg.Prefix = mustGetString(cmd, "prefix")
	}
	if fl.Changed("bg-color") {
		c, err := config.ParseRGB(mustGetString(cmd, "bg-color"))
		if err != nil {
			return nil, err
		}
		cfg.Background = c
	}
	if fl.Changed("info-box") {
		cfg.InfoBox = mustGetBool(cmd, "info-box")
	}
	if fl.Changed("verbose") {
		cfg.Verbose = mustGetBool(cmd, "verbose")
	}
	if fl.Changed("out-dir") {
		cfg.OutDir = mustGetString(cmd, "out-dir")
	}

	return cfg, nil
}
