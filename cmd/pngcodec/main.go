// Command pngcodec inspects and decodes PNG images through the codec
// registry.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cocosip/go-png-codec/codec"
	_ "github.com/cocosip/go-png-codec/png"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCommand := &cobra.Command{
		Use:           "pngcodec",
		Short:         "Inspect and decode PNG images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var maxWidth, maxHeight int
	rootCommand.PersistentFlags().IntVar(&maxWidth, "max-width", 0, "reject images wider than this")
	rootCommand.PersistentFlags().IntVar(&maxHeight, "max-height", 0, "reject images taller than this")

	infoCommand := &cobra.Command{
		Use:   "info <file>",
		Short: "Print image dimensions and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := decodeFile(args[0], maxWidth, maxHeight)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %dx%d, %d-bit, %d component(s)\n",
				args[0], res.Width, res.Height, res.BitDepth, res.Components)
			if res.HorizontalDPI > 0 {
				fmt.Printf("resolution: %.1f x %.1f dpi\n", res.HorizontalDPI, res.VerticalDPI)
			}
			for key, value := range res.Texts {
				fmt.Printf("%s: %s\n", key, value)
			}
			return nil
		},
	}
	rootCommand.AddCommand(infoCommand)

	var output string
	decodeCommand := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode an image to a binary PPM file",
		Long:  "Decode an image and write its pixels as a binary PPM (P6). The alpha channel is discarded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := decodeFile(args[0], maxWidth, maxHeight)
			if err != nil {
				return err
			}
			if err := writePPM(output, res); err != nil {
				return err
			}
			log.Info().Str("output", output).
				Int("width", res.Width).Int("height", res.Height).
				Msg("decoded")
			return nil
		},
	}
	decodeCommand.Flags().StringVarP(&output, "output", "o", "out.ppm", "output file")
	rootCommand.AddCommand(decodeCommand)

	if err := rootCommand.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

// decodeFile sniffs the file's format against the registry and decodes it.
func decodeFile(path string, maxWidth, maxHeight int) (*codec.DecodeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	prefix, err := r.Peek(8)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := codec.Detect(prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: unrecognized image format", path)
	}
	return c.Decode(r, codec.DecodeParams{MaxWidth: maxWidth, MaxHeight: maxHeight})
}

// writePPM writes the pixel data as a binary PPM, dropping alpha.
func writePPM(path string, res *codec.DecodeResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P6\n%d %d\n255\n", res.Width, res.Height)
	for i := 0; i < len(res.PixelData); i += 4 {
		w.Write(res.PixelData[i : i+3])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
