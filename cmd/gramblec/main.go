/*
Gramblec compiles a gramble grammar-DSL manifest into a rule catalog.

It reads a TOML compile manifest naming the grammar source files, compiles
them with internal/compile, and reports diagnostics to stderr. Compilation
errors abort with a non-zero exit code; warnings are reported but do not
fail the run.

Usage:

	gramblec [flags]

The flags are:

	-v, --version
		Give the current version of gramblec and then exit.

	-m, --manifest FILE
		Use the provided TOML compile manifest. Defaults to "gramble.toml"
		in the current working directory.

	-s, --start ID
		Override the start rule id recorded by the manifest's top-level
		file instead of using whatever "+start" command it declares.

	--from-md
		Treat every manifest source path as a Markdown document and
		extract its grammar source from fenced "gramble" code blocks,
		rather than reading the file as raw grammar text.

	--dump-catalog
		After a successful compile, print a deterministic textual dump of
		the assembled rule catalog to stdout. Nothing is printed when the
		compile reported errors.

	--watch
		After the initial compile, watch every source file named by the
		manifest and re-run the full compile (never incremental) whenever
		one changes, printing a fresh diagnostic report each time.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"

	"github.com/oakmoth/gramble/internal/compile"
	"github.com/oakmoth/gramble/internal/diag"
	"github.com/oakmoth/gramble/internal/manifest"
	"github.com/oakmoth/gramble/internal/markdown"
	"github.com/oakmoth/gramble/internal/version"
)

const (
	// ExitSuccess indicates a successful compile with no errors.
	ExitSuccess = iota

	// ExitCompileError indicates the compile ran but reported errors.
	ExitCompileError

	// ExitInitError indicates an unsuccessful run due to a problem loading
	// the manifest or its source files, before compilation could start.
	ExitInitError
)

var (
	returnCode    int     = ExitSuccess
	flagVersion   *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	manifestFile  *string = pflag.StringP("manifest", "m", "gramble.toml", "The TOML compile manifest naming the grammar source files")
	startOverride *string = pflag.StringP("start", "s", "", "Override the start rule id instead of using the manifest's +start command")
	fromMd        *bool   = pflag.Bool("from-md", false, "Treat manifest source paths as Markdown, extracting grammar from fenced \"gramble\" code blocks")
	dumpCatalog   *bool   = pflag.Bool("dump-catalog", false, "Print a textual dump of the assembled catalog to stdout after a successful compile")
	watch         *bool   = pflag.Bool("watch", false, "Watch the manifest's source files and recompile on change")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	mf, err := manifest.Load(*manifestFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if !runOnce(mf) {
		returnCode = ExitCompileError
	}

	if *watch {
		if err := watchAndRecompile(mf); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}
}

// loadSources reads every file the manifest names into the file-alias →
// source-text mapping internal/compile.Run expects. When --from-md is set,
// each file is treated as Markdown and its grammar source is extracted
// from fenced "gramble" code blocks via internal/markdown, mirroring the
// teacher's fishiScanner / GetFishiFromMarkdown.
func loadSources(mf manifest.Manifest) (map[string]string, error) {
	sources := make(map[string]string, len(mf.Files))
	for alias, path := range mf.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		text := string(data)
		if *fromMd {
			text = markdown.ExtractGramble(data)
		}
		sources[alias] = text
	}
	return sources, nil
}

// runOnce loads sources, compiles, and reports diagnostics to stderr. It
// returns false if the compile reported any error-severity diagnostic.
func runOnce(mf manifest.Manifest) bool {
	sources, err := loadSources(mf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return false
	}

	sink := diag.NewConsoleSink(os.Stderr)
	result := compile.Run(sources, sink)

	if *startOverride != "" {
		result.Catalog.Start = *startOverride
	}

	fmt.Fprintln(os.Stderr, sink.Summary())

	if *dumpCatalog && !sink.HasErrors() {
		result.Catalog.Dump(os.Stdout)
	}

	return !sink.HasErrors()
}

// watchAndRecompile watches every source file the manifest names and
// triggers a fresh, full compile.Run (never an incremental one, per
// SPEC_FULL's Non-goals) on each write or create event.
func watchAndRecompile(mf manifest.Manifest) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, path := range mf.Files {
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watching %q: %w", path, err)
		}
	}

	fmt.Fprintln(os.Stderr, "watching for changes...")
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "change detected in %s, recompiling\n", event.Name)
			runOnce(mf)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "ERROR: watch: %s\n", err.Error())
		}
	}
}
