//go:build !ebiten && !gl

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "shaderquad needs a graphics host build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/shaderquad` or `-tags gl` for the x/mobile GL host.")
	os.Exit(2)
}
