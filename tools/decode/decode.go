// Package decode implements the decode command of dccgo.
package decode

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/clktmr/dcc/decode"
)

const usageString = `Convert a raw DCC capture to text.

Usage: %s [flags] [file]

Reads 32-bit words from file, or stdin if omitted, and writes the low byte of
each word to stdout.

`

var (
	flags = flag.NewFlagSet("decode", flag.ExitOnError)

	order   = flags.String("order", "le", "byte order of the capture: le | be")
	charset = flags.String("charset", "", "IANA charset of the target's output")
	outfile = flags.String("o", "", "write to file instead of stdout")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "decode")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() > 1 {
		flags.Usage()
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if flags.NArg() == 1 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		out = f
	}

	dropped, err := Decode(out, in, *order, *charset)
	if dropped > 0 {
		log.Printf("decode: skipped %d words not sent by dcc", dropped)
	}
	if err != nil {
		log.Fatalln("decode:", err)
	}
}

// Decode writes the text of the word capture in to out. It returns the number
// of skipped words.
func Decode(out io.Writer, in io.Reader, order, charset string) (dropped int, err error) {
	byteOrder, err := decode.ParseOrder(order)
	if err != nil {
		return 0, err
	}
	words := decode.NewReader(in, byteOrder)
	text, err := decode.Text(words, charset)
	if err != nil {
		return 0, err
	}
	_, err = io.Copy(out, text)
	return words.Dropped, err
}
