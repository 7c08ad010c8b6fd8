// Command mila runs MiLa scripts: mila [options] [script] [args...].
// With no script it drops into an interactive REPL.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	mila "github.com/milalang/mila"
)

func main() {
	var showVersion bool
	var showInfo bool
	var searchPath string
	flag.BoolVar(&showVersion, "version", false, "print the engine version and exit")
	flag.BoolVar(&showVersion, "v", false, "print the engine version and exit")
	flag.BoolVar(&showInfo, "info", false, "print build info and exit")
	flag.StringVar(&searchPath, "I", ".", "colon-separated library search path for load()/run()")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[options] [script] [args...]")
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(mila.Version)
		return
	}
	if showInfo {
		fmt.Printf("mila %s\nsearch path: %s\n", mila.Version, searchPath)
		return
	}

	args := flag.Args()
	var scriptArgs []string
	if len(args) > 0 {
		scriptArgs = args[1:]
	}
	it := mila.New(mila.Options{
		SearchPath: strings.Split(searchPath, ":"),
		Args:       scriptArgs,
	})

	if len(args) == 0 {
		it.Repl(os.Stdin, os.Stdout)
		return
	}

	if _, err := it.EvalPath(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, "mila:", err)
		os.Exit(1)
	}
}
