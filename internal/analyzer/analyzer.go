// Package analyzer performs semantic analysis on the AST: class table
// construction, name binding and type checking. Every pass collects
// diagnostics and keeps walking; nothing here aborts on the first error.
package analyzer

import (
	"fmt"
	"sort"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
)

// Analyzer runs the semantic passes over one compilation unit against a
// shared class table. The table may be shared across units; the passes
// only attach write-once links, so independent Analyzers do not step on
// each other.
type Analyzer struct {
	classes *symbols.Table
}

// New creates an Analyzer with a given class table.
func New(classes *symbols.Table) *Analyzer {
	return &Analyzer{classes: classes}
}

// Classes exposes the class table to later phases.
func (a *Analyzer) Classes() *symbols.Table { return a.classes }

// Analyze runs declarations, binding and type checking over program and
// returns all diagnostics sorted by position. A program that was already
// annotated is left untouched: re-running the annotator must not change
// resolved types or duplicate diagnostics.
func (a *Analyzer) Analyze(program *ast.Program) []*diagnostics.DiagnosticError {
	if program == nil || program.Annotated {
		return nil
	}

	w := newWalker(a.classes, program.File)

	w.declareClasses(program)
	w.linkHierarchy(program)

	b := &binder{walker: w}
	program.Accept(b)

	c := newChecker(w)
	program.Accept(c)

	program.Annotated = true
	return w.getErrors()
}

// walker is the shared state of the semantic passes: the class table
// and the collected diagnostics.
type walker struct {
	classes  *symbols.Table
	file     string
	errorSet map[string]*diagnostics.DiagnosticError // Key: "line:col:code" for deduplication
}

func newWalker(classes *symbols.Table, file string) *walker {
	return &walker{
		classes:  classes,
		file:     file,
		errorSet: make(map[string]*diagnostics.DiagnosticError),
	}
}

// addError adds an error to the walker, deduplicating by position and code.
func (w *walker) addError(err *diagnostics.DiagnosticError) {
	if err.File == "" && w.file != "" {
		err.File = w.file
	}
	key := fmt.Sprintf("%d:%d:%s", err.Token.Line, err.Token.Column, err.Code)
	w.errorSet[key] = err
}

// getErrors returns all unique errors as a slice, sorted by position.
func (w *walker) getErrors() []*diagnostics.DiagnosticError {
	result := make([]*diagnostics.DiagnosticError, 0, len(w.errorSet))
	for _, err := range w.errorSet {
		result = append(result, err)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Token.Line != result[j].Token.Line {
			return result[i].Token.Line < result[j].Token.Line
		}
		if result[i].Token.Column != result[j].Token.Column {
			return result[i].Token.Column < result[j].Token.Column
		}
		return result[i].Code < result[j].Code
	})

	return result
}
