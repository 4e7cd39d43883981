// hilite highlights fenced code blocks in an HTML document.
//
// It reads the document named on the command line,
// replaces every <pre><code>...</code></pre> block
// that names a supported language in its class attribute
// with syntax-highlighted markup,
// and writes the result to stdout.
// Blocks it cannot highlight pass through unchanged.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/hilite/internal/highlight"
	"go.abhg.dev/hilite/internal/langs"
	"go.abhg.dev/hilite/internal/rewrite"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("hilite: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	src, err := os.ReadFile(opts.File)
	if err != nil {
		return errtrace.Wrap(err)
	}

	registry := langs.Default()
	rewriter := rewrite.Rewriter{
		Registry: registry,
		Engine:   &highlight.Highlighter{Registry: registry},
	}
	if opts.Debug {
		rewriter.DebugLog = cmd.log
	}

	// The rewritten document is the only stdout output;
	// no trailing newline beyond what the document carries.
	_, err = io.WriteString(cmd.Stdout, rewriter.Rewrite(string(src)))
	return errtrace.Wrap(err)
}
