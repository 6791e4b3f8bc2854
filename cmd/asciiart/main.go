package main

import (
	"fmt"
	"os"

	asciiart "github.com/ad4mjulie/ascii-art"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	formatText = "text"
	formatPNG  = "png"
)

var (
	width      int
	chars      string
	outputPath string
	colored    bool
	format     string
	fontPath   string
	fit        bool
	configFile string
	outDir     string
)

var (
	statusOK  = color.New(color.FgGreen)
	statusErr = color.New(color.FgRed)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asciiart IMAGE",
		Short: "convert an image into terminal ASCII art",
		Long: "asciiart converts a raster image into brightness-mapped character\n" +
			"art, optionally colorized with 24-bit ANSI escapes, prints it to the\n" +
			"terminal and saves a copy under the output directory.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().IntVarP(&width, "width", "w", 100, "output width in characters")
	rootCmd.Flags().StringVarP(&chars, "chars", "c", asciiart.DefaultCharset,
		"character set ordered from darkest to lightest")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"extra path to save the output to")
	rootCmd.Flags().BoolVar(&colored, "color", false,
		"colorize output using ANSI 24-bit escape codes")
	rootCmd.Flags().StringVar(&format, "format", formatText,
		"saved output format: text|png")
	rootCmd.Flags().StringVar(&fontPath, "font", "",
		"TTF font for png output (built-in bitmap face when empty)")
	rootCmd.Flags().BoolVar(&fit, "fit", false,
		"size the output to the terminal width")
	rootCmd.Flags().StringVar(&configFile, "config", "", "yaml defaults file")
	rootCmd.Flags().StringVar(&outDir, "out-dir", asciiart.DefaultOutputDir,
		"directory for auto-saved output")

	if err := rootCmd.Execute(); err != nil {
		statusErr.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if configFile != "" {
		cfg, err := asciiart.LoadConfig(configFile)
		if err != nil {
			return err
		}
		// Explicit flags win over config file values
		if !cmd.Flags().Changed("width") {
			width = cfg.Width
		}
		if !cmd.Flags().Changed("chars") {
			chars = cfg.Chars
		}
		if !cmd.Flags().Changed("color") {
			colored = cfg.Color
		}
		if !cmd.Flags().Changed("format") {
			format = cfg.Format
		}
		if !cmd.Flags().Changed("font") {
			fontPath = cfg.Font
		}
		if !cmd.Flags().Changed("out-dir") && cfg.OutputDir != "" {
			outDir = cfg.OutputDir
		}
	}

	if fit {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("--fit requires stdout to be a terminal")
		}
		cols, _, err := term.GetSize(fd)
		if err != nil {
			return fmt.Errorf("failed to query terminal size: %w", err)
		}
		width = cols
	}

	if format != formatText && format != formatPNG {
		return fmt.Errorf("invalid format %q, expected text or png", format)
	}

	gradient, err := asciiart.NewGradient(chars)
	if err != nil {
		return err
	}

	var codec asciiart.Codec = asciiart.FileCodec{}
	img, err := codec.Decode(imagePath)
	if err != nil {
		return err
	}

	art, err := asciiart.Render(img, asciiart.Options{
		Width:    width,
		Gradient: gradient,
		Color:    colored,
	})
	if err != nil {
		return err
	}

	// Terminal emission happens before any save so a failing sink cannot
	// take the displayed art with it.
	if colored {
		fmt.Print(art.ANSI())
	} else {
		fmt.Print(art.Text())
	}

	sink, err := buildSink()
	if err != nil {
		return err
	}

	saved, err := asciiart.SaveAuto(art, sink, outDir, imagePath)
	if err != nil {
		return err
	}
	statusOK.Fprintf(os.Stderr, "\nASCII art saved to: %s\n", saved)

	if outputPath != "" {
		if err := sink.Write(art, outputPath); err != nil {
			return err
		}
		statusOK.Fprintf(os.Stderr, "ASCII art saved to: %s\n", outputPath)
	}

	return nil
}

// buildSink selects the persistence variant: plain text rows or a PNG
// re-render of the glyph grid.
func buildSink() (asciiart.Sink, error) {
	if format == formatText {
		return asciiart.TextSink{}, nil
	}

	renderer := asciiart.NewRasterRenderer()
	if fontPath != "" {
		var err error
		renderer, err = asciiart.NewRasterRendererTTF(fontPath)
		if err != nil {
			return nil, err
		}
	}
	return asciiart.RasterSink{Renderer: renderer, Colored: colored}, nil
}
