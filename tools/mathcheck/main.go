package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kpfaulkner/gfxmaths/vectors"
	log "github.com/sirupsen/logrus"
)

// run returns the process exit code: 0 when every vector passes, 1 on any
// failure, 2 for usage or input errors.
func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("mathcheck", flag.ContinueOnError)
	fs.SetOutput(out)
	infile := fs.String("i", "", "input vectors file")
	verbose := fs.Bool("v", false, "log every vector, not just failures")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *infile == "" {
		fmt.Fprintf(out, "input vectors file must be specified\n")
		return 2
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	f, err := os.Open(*infile)
	if err != nil {
		log.Errorf("Error opening file: %v", err)
		return 2
	}
	defer f.Close()

	vs, err := vectors.Parse(f)
	if err != nil {
		log.Errorf("Error parsing %s: %v", *infile, err)
		return 2
	}

	start := time.Now()
	summary := vectors.Run(vs)
	fmt.Fprintf(out, "checked %d vectors in %d us\n", len(vs), time.Since(start).Microseconds())
	fmt.Fprintf(out, "passed %d failed %d\n", summary.Passed, summary.Failed)

	if !summary.OK() {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
