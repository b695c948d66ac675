package rectcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/rects/lib/geo"
	"oss.terrastruct.com/rects/lib/log"
	"oss.terrastruct.com/rects/lib/shape"
	"oss.terrastruct.com/rects/lib/version"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.Named(log.WithDefault(ctx), "rects")
	// These should be kept up-to-date with help()
	formatFlag := ms.Opts.String("RECTS_FORMAT", "format", "f", "text", "output format. Options: 'text' or 'json'")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	format, err := getOutputFormat(*formatFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	log.Debug(ctx, "running subcommand", slog.F("subcommand", ms.Opts.Flags.Arg(0)), slog.F("format", format))

	switch ms.Opts.Flags.Arg(0) {
	case "info":
		return infoCmd(ctx, ms, format)
	case "picture":
		return pictureCmd(ctx, ms, format)
	case "fit":
		return fitCmd(ctx, ms, format)
	case "batch":
		return batchCmd(ctx, ms, format)
	case "version":
		if len(ms.Opts.Flags.Args()) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", ms.Opts.Flags.Arg(0))
	}
}

func parseShape(ctx context.Context, s string) (shape.Shape, error) {
	sh, err := shape.Parse(s)
	if err != nil {
		return nil, err
	}
	log.Debug(ctx, "parsed shape", slog.F("input", s), slog.F("shape", sh.String()))
	return sh, nil
}

func writeInfo(w io.Writer, indent string, s shape.Shape) {
	fmt.Fprintf(w, "%sarea: %s\n", indent, geo.FormatNumber(s.GetArea()))
	fmt.Fprintf(w, "%sperimeter: %s\n", indent, geo.FormatNumber(s.GetPerimeter()))
	fmt.Fprintf(w, "%sdiagonal: %s\n", indent, geo.FormatNumber(s.GetDiagonal()))
}

func writeJSON(ms *xmain.State, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = ms.Stdout.Write(b)
	return err
}
