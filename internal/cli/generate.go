package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soypat/eurorack"
	"github.com/soypat/eurorack/internal/dialog"
	"github.com/soypat/eurorack/internal/logger"
	"github.com/soypat/eurorack/render"
)

type generateOptions struct {
	input       eurorack.Input
	output      string
	formats     []string
	dpi         int
	width       int
	interactive bool
}

func defaultGenerateOptions() *generateOptions {
	return &generateOptions{
		input:   eurorack.Input{Type: "Faceplate"},
		formats: []string{render.KiCad.String()},
	}
}

// bindOutput registers the flags deciding where and how results are written.
func (o *generateOptions) bindOutput(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "output path without extension (default <type>_<hp>hp)")
	f.StringSliceVarP(&o.formats, "format", "f", o.formats, "output formats: "+formatList())
	f.IntVar(&o.dpi, "dpi", 0, "png preview resolution")
	f.IntVar(&o.width, "width", 0, "png preview width in pixels, 0 keeps the rasterized size")
}

func generateCmd() *cobra.Command {
	opts := defaultGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one board outline",
		Example: "  ephelper generate --type Faceplate --hp 12 --rad 2 --mh-w 1 --pcb-mh -f kicad,svg\n" +
			"  ephelper generate -i --hp 8",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
	f := cmd.Flags()
	// Numbers are taken as text: values that do not parse read as zero.
	f.StringVar(&opts.input.Type, "type", opts.input.Type, "board type: Faceplate or PCB")
	f.StringVar(&opts.input.HP, "hp", "", "module width in HP")
	f.StringVar(&opts.input.Rad, "rad", "", "corner radius in mm")
	f.StringVar(&opts.input.MHW, "mh-w", "", "extra faceplate mounting hole length in mm")
	f.BoolVar(&opts.input.PCBMounts, "pcb-mh", false, "include rear PCB mounting holes")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "edit the parameters in a dialog before generating")
	opts.bindOutput(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	log := logger.L()
	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}
	in := opts.input
	if opts.interactive {
		var ok bool
		in, ok, err = dialog.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), in)
		if err != nil {
			return fmt.Errorf("dialog: %w", err)
		}
		if !ok {
			log.Info("dialog.cancelled")
			return nil
		}
	}

	base := opts.output
	if base == "" {
		base = defaultBase(in)
	}
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	paths, err := writeModule(log, base, in, formats, render.Options{
		PNG: render.PNGOptions{DPI: opts.dpi, Width: opts.width},
	})
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return err
}

// writeModule generates in and writes it to base plus each format extension.
// It returns the paths written.
func writeModule(log *slog.Logger, base string, in eurorack.Input, formats []render.Format, opts render.Options) ([]string, error) {
	req := eurorack.ParseRequest(in)
	log.Info("generate.start",
		"kind", req.Kind.String(),
		"hp", req.HP,
		"radius", req.Radius,
		"slot", req.SlotLength,
		"pcb_mh", req.PCBMounts,
	)
	var doc eurorack.Document
	design := eurorack.Generate(&doc, req)
	log.Info("generate.done",
		"width", design.Size.X,
		"height", design.Size.Y,
		"shapes", len(doc.Shapes),
		"footprints", len(doc.Footprints),
	)
	for i, c := range design.Clearances() {
		if c < 0 {
			log.Warn("mount.breakout", "hole", i, "clearance_mm", c)
		} else {
			log.Debug("mount.clearance", "hole", i, "clearance_mm", c)
		}
	}

	var paths []string
	for _, f := range formats {
		path := base + f.Ext()
		if err := render.Create(path, f, &doc, opts); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug("render.write", "format", f.String(), "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func parseFormats(names []string) ([]render.Format, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no output format given (expected %s)", formatList())
	}
	var formats []render.Format
	seen := map[render.Format]bool{}
	for _, name := range names {
		f, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			formats = append(formats, f)
		}
		seen[f] = true
	}
	return formats, nil
}

func formatList() string {
	var names []string
	for _, f := range render.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}

// defaultBase names output after the board kind and width, e.g. faceplate_12hp.
func defaultBase(in eurorack.Input) string {
	hp := strings.Map(func(r rune) rune {
		if r == '.' || r == '-' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return r
		}
		return '_'
	}, strings.TrimSpace(in.HP))
	if hp == "" {
		hp = "0"
	}
	return fmt.Sprintf("%s_%shp", strings.ToLower(eurorack.ParseKind(in.Type).String()), hp)
}
