package rectcli

import (
	"context"
	"fmt"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/rects/lib/shape"
)

type pictureOutput struct {
	Shape   shape.SerializedShape `json:"shape"`
	Picture string                `json:"picture"`
}

type fitOutput struct {
	Outer  shape.SerializedShape `json:"outer"`
	Inner  shape.SerializedShape `json:"inner"`
	Amount int                   `json:"amount"`
}

func infoCmd(ctx context.Context, ms *xmain.State, format outputFormat) (err error) {
	defer xdefer.Errorf(&err, "failed to describe shape")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 1 {
		return xmain.UsageErrorf("info must be passed exactly one shape, e.g. rectangle:10x4")
	}
	s, err := parseShape(ctx, args[0])
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	if format == JSON {
		return writeJSON(ms, shape.Serialize(s))
	}
	fmt.Fprintln(ms.Stdout, s)
	writeInfo(ms.Stdout, "", s)
	return nil
}

func pictureCmd(ctx context.Context, ms *xmain.State, format outputFormat) (err error) {
	defer xdefer.Errorf(&err, "failed to draw shape")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 1 {
		return xmain.UsageErrorf("picture must be passed exactly one shape, e.g. square:3")
	}
	s, err := parseShape(ctx, args[0])
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	if format == JSON {
		return writeJSON(ms, pictureOutput{
			Shape:   shape.Serialize(s),
			Picture: s.GetPicture(),
		})
	}
	_, err = fmt.Fprint(ms.Stdout, s.GetPicture())
	return err
}

func fitCmd(ctx context.Context, ms *xmain.State, format outputFormat) (err error) {
	defer xdefer.Errorf(&err, "failed to fit shapes")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 2 {
		return xmain.UsageErrorf("fit must be passed an outer and an inner shape, e.g. rectangle:10x4 square:3")
	}
	outer, err := parseShape(ctx, args[0])
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	inner, err := parseShape(ctx, args[1])
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	n, err := outer.GetAmountInside(inner)
	if err != nil {
		return err
	}

	if format == JSON {
		return writeJSON(ms, fitOutput{
			Outer:  shape.Serialize(outer),
			Inner:  shape.Serialize(inner),
			Amount: n,
		})
	}
	fmt.Fprintln(ms.Stdout, n)
	return nil
}
