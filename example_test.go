package dcc_test

import (
	"fmt"

	"github.com/clktmr/dcc"
)

func Example() {
	dcc.Println("Hello, world!")
	dcc.Printf("%d bytes free\n", 1024)

	fmt.Fprintf(dcc.Writer{}, "status %#08x\n", 0x2000_0000)
}
