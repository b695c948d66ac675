package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/rects/rectcli"
)

func main() {
	xmain.Main(rectcli.Run)
}
