// Command glox runs Lox programs.
//
// With a script path it executes the file and exits 0 on success, 65 after a
// syntax error, 70 after a runtime error. With no arguments it opens a REPL
// that evaluates one line at a time and keeps its globals across lines. More
// than one argument prints usage and exits 64.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	lox "github.com/StellaZare/lox-interpreter"
)

const (
	appName     = "glox"
	historyFile = ".glox_history"
	prompt      = "> "

	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:           appName + " [script]",
	Short:         "glox is a tree-walking Lox interpreter",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			exitCode = runPrompt()
		case 1:
			exitCode = runFile(args[0])
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s [script]\n", appName)
			exitCode = exitUsage
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// diag is the driver-owned diagnostic sink. The engine reports through it;
// the flags that decide exit codes live here, not in the engine.
type diag struct {
	w        io.Writer
	hadError bool
	tint     *color.Color // nil for plain output (file mode)
}

func (d *diag) Report(line int, where, message string) {
	d.hadError = true
	d.print(lox.Diagnostic(line, where, message))
}

func (d *diag) print(msg string) {
	if d.tint != nil {
		d.tint.Fprintln(d.w, msg)
		return
	}
	fmt.Fprintln(d.w, msg)
}

// runFile executes a script and maps its outcome to an exit code.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	return run(string(src), os.Stdout, &diag{w: os.Stderr})
}

// run is the whole file-mode pipeline behind the I/O seam: lex, parse, bail
// at 65 on any static diagnostic, interpret, map a runtime failure to 70.
func run(src string, stdout io.Writer, d *diag) int {
	toks := lox.NewLexer(src, d).Scan()
	stmts := lox.NewParser(toks, d).Parse()
	if d.hadError {
		return exitData
	}
	if rerr := lox.NewInterpreter(stdout).Interpret(stmts); rerr != nil {
		d.print(rerr.Error())
		return exitRuntime
	}
	return 0
}

// evalLine evaluates one REPL line as a whole program. The syntax-error flag
// resets per line, and a runtime error is rendered without ending the
// session; ip keeps its globals across calls.
func evalLine(ip *lox.Interpreter, d *diag, line string) {
	d.hadError = false
	toks := lox.NewLexer(line, d).Scan()
	stmts := lox.NewParser(toks, d).Parse()
	if d.hadError {
		return
	}
	if rerr := ip.Interpret(stmts); rerr != nil {
		d.print(rerr.Error())
	}
}

// runPrompt is the interactive loop around evalLine.
func runPrompt() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	d := &diag{w: color.Error, tint: color.New(color.FgRed)}
	ip := lox.NewInterpreter(os.Stdout)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		evalLine(ip, d, line)
	}
}
