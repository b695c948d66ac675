package rectcli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/rects/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--format=text] info <shape>
  %[1]s picture <shape>
  %[1]s fit <outer> <inner>
  %[1]s batch file.yaml

%[1]s measures rectangles and squares.
A shape is written as rectangle:WxH or square:S, e.g. rectangle:10x4 or square:3.

Use - to have %[1]s batch read from stdin.

Flags:
%[3]s

Subcommands:
  %[1]s info <shape> - Prints the area, perimeter and diagonal of a shape
  %[1]s picture <shape> - Draws a shape with asterisks. Shapes with a side of 50 or more are not drawn
  %[1]s fit <outer> <inner> - Counts how many inner shapes fit in the outer shape without rotating them
  %[1]s batch file.yaml - Evaluates the named shapes and fits in a YAML or JSON file
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
