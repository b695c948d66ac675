package rectcli

import (
	"context"
	"fmt"
	"sort"

	"cdr.dev/slog"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/rects/lib/log"
	"oss.terrastruct.com/rects/lib/shape"
)

// batchFile is the input of the batch subcommand. JSON documents decode as well since
// JSON is valid YAML.
type batchFile struct {
	Shapes map[string]shape.SerializedShape `yaml:"shapes"`
	Fits   []batchFit                       `yaml:"fits"`
}

type batchFit struct {
	Outer string `yaml:"outer"`
	Inner string `yaml:"inner"`
}

type namedShape struct {
	Name  string                `json:"name"`
	Shape shape.SerializedShape `json:"shape"`

	s shape.Shape
}

type fitResult struct {
	Outer  string `json:"outer"`
	Inner  string `json:"inner"`
	Amount int    `json:"amount"`
}

type batchResult struct {
	Shapes []namedShape `json:"shapes"`
	Fits   []fitResult  `json:"fits"`
}

func batchCmd(ctx context.Context, ms *xmain.State, format outputFormat) (err error) {
	defer xdefer.Errorf(&err, "failed to run batch")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 1 {
		return xmain.UsageErrorf("batch must be passed exactly one input file")
	}
	inputPath := args[0]
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}

	var bf batchFile
	err = yaml.Unmarshal(input, &bf)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	res, evalErr := evalBatch(ctx, &bf)
	if format == JSON {
		err = writeJSON(ms, res)
	} else {
		writeBatch(ms, res)
	}
	if err != nil {
		return err
	}

	if evalErr != nil {
		errs := multierr.Errors(evalErr)
		for _, err := range errs {
			ms.Log.Warn.Printf("%v", err)
		}
		return xmain.ExitErrorf(1, "%d batch entries failed", len(errs))
	}
	return nil
}

// evalBatch builds every shape and counts every fit. Entries that fail are left out of
// the result and their errors are combined.
func evalBatch(ctx context.Context, bf *batchFile) (*batchResult, error) {
	res := &batchResult{
		Shapes: []namedShape{},
		Fits:   []fitResult{},
	}
	var err error

	names := lo.Keys(bf.Shapes)
	sort.Strings(names)

	shapes := make(map[string]shape.Shape, len(names))
	for _, name := range names {
		s, err2 := shape.Deserialize(bf.Shapes[name])
		if err2 != nil {
			err = multierr.Append(err, fmt.Errorf("shape %q: %w", name, err2))
			continue
		}
		log.Debug(ctx, "batch shape", slog.F("name", name), slog.F("shape", s.String()))
		shapes[name] = s
		res.Shapes = append(res.Shapes, namedShape{
			Name:  name,
			Shape: shape.Serialize(s),
			s:     s,
		})
	}

	for _, f := range bf.Fits {
		n, err2 := evalFit(shapes, f)
		if err2 != nil {
			err = multierr.Append(err, fmt.Errorf("fit %q in %q: %w", f.Inner, f.Outer, err2))
			continue
		}
		res.Fits = append(res.Fits, fitResult{
			Outer:  f.Outer,
			Inner:  f.Inner,
			Amount: n,
		})
	}

	return res, err
}

func evalFit(shapes map[string]shape.Shape, f batchFit) (int, error) {
	outer, ok := shapes[f.Outer]
	if !ok {
		return 0, fmt.Errorf("no shape named %q", f.Outer)
	}
	inner, ok := shapes[f.Inner]
	if !ok {
		return 0, fmt.Errorf("no shape named %q", f.Inner)
	}
	return outer.GetAmountInside(inner)
}

func writeBatch(ms *xmain.State, res *batchResult) {
	for _, ns := range res.Shapes {
		fmt.Fprintf(ms.Stdout, "%s: %s\n", ns.Name, ns.s)
		writeInfo(ms.Stdout, "  ", ns.s)
	}
	for _, f := range res.Fits {
		fmt.Fprintf(ms.Stdout, "%s in %s: %d\n", f.Inner, f.Outer, f.Amount)
	}
}
