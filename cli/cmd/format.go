package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nufmt/nufmt/internal/format"
)

// ErrWouldReformat is the sentinel wrapped into the error runFiles/runStdin
// return under --check when formatting found files that aren't formatted,
// but hit no actual errors. main distinguishes this from every other error
// to choose between exit code 1 (would reformat) and 2 (a real failure).
var ErrWouldReformat = errors.New("nufmt: files would be reformatted")

// fileResult is what each worker in runFiles reports back for one path.
type fileResult struct {
	path      string
	changed   bool
	formatted string
	err       error
}

// runFiles formats every path in args across a worker pool bounded by
// GOMAXPROCS, writing results back to disk unless --check was given. Each
// goroutine only touches its own path and its own results slot; the
// errgroup's context is what lets an already-queued goroutine notice a
// sibling failed and skip starting its own work.
func runFiles(args []string) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	results := make([]fileResult, len(args))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r := formatOnePath(path)
			results[i] = r
			return r.err
		})
	}
	_ = g.Wait()

	anyChanged := false
	for _, r := range results {
		if r.err != nil {
			log.WithField("file", r.path).Error(r.err)
			return fmt.Errorf("nufmt: failed on %d file(s)", countErrs(results))
		}
		if !r.changed {
			continue
		}
		anyChanged = true
		if checkFlag {
			printDiff(r.path)
			continue
		}
		if err := os.WriteFile(r.path, []byte(r.formatted), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", r.path, err)
		}
		log.WithField("file", r.path).Info("formatted")
	}

	if checkFlag && anyChanged {
		return fmt.Errorf("nufmt: some files are not formatted: %w", ErrWouldReformat)
	}
	return nil
}

func countErrs(results []fileResult) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	return n
}

// formatOnePath reads, resolves config for, and formats a single file. It
// never writes; runFiles decides what to do with the result so the whole
// pass can report a summary before touching disk.
func formatOnePath(path string) fileResult {
	original, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	cfg, err := resolveConfig(filepath.Dir(path))
	if err != nil {
		return fileResult{path: path, err: err}
	}

	formatted, err := format.Source(string(original), cfg)
	if err != nil {
		return fileResult{path: path, err: fmt.Errorf("%s: %w", path, err)}
	}

	return fileResult{
		path:      path,
		changed:   formatted != string(original),
		formatted: formatted,
	}
}

// printDiff re-reads path and renders a unified-style diff of what nufmt
// would change, colorized unless --color says otherwise.
func printDiff(path string) {
	original, err := os.ReadFile(path)
	if err != nil {
		return
	}
	cfg, err := resolveConfig(filepath.Dir(path))
	if err != nil {
		return
	}
	formatted, err := format.Source(string(original), cfg)
	if err != nil {
		return
	}

	fmt.Printf("--- %s\n", path)
	writeDiff(os.Stdout, string(original), formatted)
}

// writeDiff renders a line-level diff between before and after. It's built
// on go-diff's line-mode helpers, which turn each line into a synthetic
// rune so the usual Myers diff works at line granularity instead of byte
// granularity.
func writeDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	useColor := colorEnabled(w)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			writeDiffLines(w, "+", d.Text, useColor, color.FgGreen)
		case diffmatchpatch.DiffDelete:
			writeDiffLines(w, "-", d.Text, useColor, color.FgRed)
		}
	}
}

func writeDiffLines(w io.Writer, prefix, text string, useColor bool, attr color.Attribute) {
	c := color.New(attr)
	for _, line := range splitLinesKeepEmpty(text) {
		if line == "" {
			continue
		}
		out := prefix + " " + line
		if useColor {
			c.Fprintln(w, out)
		} else {
			fmt.Fprintln(w, out)
		}
	}
}

func splitLinesKeepEmpty(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// runStdin formats stdin and writes the result to stdout, or diffs it
// against stdin under --check.
func runStdin(cmd *cobra.Command) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(".")
	if err != nil {
		return err
	}

	formatted, err := format.Source(string(raw), cfg)
	if err != nil {
		return err
	}

	if checkFlag {
		if formatted == string(raw) {
			return nil
		}
		writeDiff(cmd.OutOrStdout(), string(raw), formatted)
		return fmt.Errorf("nufmt: stdin is not formatted: %w", ErrWouldReformat)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), formatted)
	return err
}
