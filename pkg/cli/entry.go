package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/minijava/internal/analyzer"
	"github.com/funvibe/minijava/internal/cache"
	"github.com/funvibe/minijava/internal/config"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/parser"
	"github.com/funvibe/minijava/internal/pipeline"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// useColor decides whether diagnostics get ANSI colors: the project file
// can force it off, NO_COLOR always wins, and piped output stays plain.
func useColor(project *config.Project) bool {
	switch project.Color {
	case "never":
		return false
	case "always":
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func printDiagnostic(err *diagnostics.DiagnosticError, color bool) {
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[1m%s:%d:%d:\x1b[0m \x1b[31m%s\x1b[0m %s\n",
			err.File, err.Token.Line, err.Token.Column, err.Code, err.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "- %s\n", err.Error())
}

// collectSources expands the command line arguments into source files:
// a directory contributes every source file directly inside it.
func collectSources(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			entries, err := os.ReadDir(arg)
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if !entry.IsDir() && isSourceFile(entry.Name()) {
					files = append(files, filepath.Join(arg, entry.Name()))
				}
			}
		} else {
			files = append(files, arg)
		}
	}
	sort.Strings(files)
	return files, nil
}

// checkFile runs the full pipeline over one file and returns its
// diagnostics. The cache is consulted first when enabled.
func checkFile(path string, store *cache.Cache) ([]*diagnostics.DiagnosticError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	if store != nil {
		if diags, ok := store.Get(absPath, string(source)); ok {
			return diags, nil
		}
	}

	initialContext := pipeline.NewContext(absPath, string(source))
	processingPipeline := pipeline.New(
		&parser.Processor{},
		&analyzer.Processor{},
	)
	finalContext := processingPipeline.Run(initialContext)

	if store != nil {
		if err := store.Put(absPath, string(source), finalContext.Errors); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %s\n", err)
		}
	}
	return finalContext.Errors, nil
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}
	if os.Args[1] != "-help" && os.Args[1] != "--help" && os.Args[1] != "help" {
		return false
	}

	fmt.Printf("Usage: %s check <file|dir> [file2...]\n\n", filepath.Base(os.Args[0]))
	fmt.Println("Flags:")
	fmt.Println("  --no-cache   skip the diagnostics cache for this run")
	fmt.Println()
	fmt.Printf("Project settings are read from %s next to the first source file.\n",
		config.ProjectFileName)
	return true
}

func handleCheck() bool {
	if len(os.Args) < 2 || os.Args[1] != "check" {
		return false
	}

	if len(os.Args) == 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s check <file|dir> [file2...]\n", os.Args[0])
		os.Exit(1)
	}

	noCache := false
	for _, arg := range os.Args[2:] {
		if arg == "--no-cache" {
			noCache = true
		}
	}

	files, err := collectSources(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No source files found")
		return true
	}

	project, err := config.LoadProject(filepath.Dir(files[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	var store *cache.Cache
	if project.Cache && !noCache {
		store, err = cache.Open(project.CacheDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache disabled: %s\n", err)
		} else {
			defer store.Close()
		}
	}

	color := useColor(project)
	total := 0
	for _, file := range files {
		diags, err := checkFile(file, store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		for _, d := range diags {
			if project.MaxErrors > 0 && total >= project.MaxErrors {
				fmt.Fprintf(os.Stderr, "Too many errors, stopping\n")
				os.Exit(1)
			}
			printDiagnostic(d, color)
			total++
		}
	}

	if total > 0 {
		os.Exit(1)
	}
	return true
}

// Run is the entry point of the command line tool.
func Run() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleCheck() {
		return
	}

	// Bare invocation with file arguments behaves like "check".
	if len(os.Args) >= 2 && !strings.HasPrefix(os.Args[1], "-") {
		os.Args = append([]string{os.Args[0], "check"}, os.Args[1:]...)
		if handleCheck() {
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Usage: %s check <file|dir> [file2...]\n", os.Args[0])
	os.Exit(1)
}
