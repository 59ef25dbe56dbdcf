//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The powder window needs the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Run `go run -tags ebiten ./cmd/powder`, or use ./cmd/powder-term in a terminal.")
	os.Exit(2)
}
