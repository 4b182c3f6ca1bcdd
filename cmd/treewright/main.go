package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/config"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/prettyprinter"
	"github.com/treewright/treewright/pkg/analysis"
)

var cfg = &config.Config{Color: "auto"}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	loadConfig()
	setupColor()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "parse":
		handleParse(os.Args[2:])
	case "callables":
		handleCallables(os.Args[2:])
	case "reads":
		handleReads(os.Args[2:])
	case "help", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %[1]s <command> [arguments]

Commands:
  parse <file>             print the attributed tree of a source file
  callables <file>         list the callables of every class
  reads <file> <variable>  show which statements read a variable
`, filepath.Base(os.Args[0]))
}

func loadConfig() {
	path, err := config.FindConfig(".")
	if err != nil || path == "" {
		return
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
		return
	}
	cfg = loaded
}

// setupColor honors the config, the NO_COLOR convention
// (https://no-color.org/) and whether stdout is a terminal.
func setupColor() {
	switch cfg.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		if os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
			return
		}
		isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		color.NoColor = !isTTY
	}
}

func parseFile(path string) *analysis.Result {
	if !analysis.IsSourceFile(path) {
		fmt.Fprintf(os.Stderr, "Not a source file: %s\n", path)
		os.Exit(2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return analysis.Parse(path, string(data))
}

func reportErrors(errs []*diagnostics.DiagnosticError) {
	red := color.New(color.FgRed)
	max := len(errs)
	if cfg.MaxErrors > 0 && cfg.MaxErrors < max {
		max = cfg.MaxErrors
	}
	for _, err := range errs[:max] {
		red.Fprintln(os.Stderr, err.Error())
	}
	if max < len(errs) {
		fmt.Fprintf(os.Stderr, "... and %d more\n", len(errs)-max)
	}
}

func handleParse(args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	res := parseFile(args[0])
	reportErrors(res.Errors)
	if res.Unit != nil {
		fmt.Print(prettyprinter.NewTreePrinter().Print(res.Unit))
	}
	if !res.Ok() {
		os.Exit(1)
	}
}

func handleCallables(args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	res := parseFile(args[0])
	reportErrors(res.Errors)
	if res.Unit == nil {
		os.Exit(1)
	}

	bold := color.New(color.Bold)
	for _, cd := range res.Unit.Classes {
		bold.Printf("%s\n", cd.Name.Value)
		if cd.Body == nil {
			continue
		}
		bodyCursor := analysis.CursorAt(res.Unit, cd.Body)
		hasStatic, hasInstance := false, false
		for _, stmt := range cd.Body.Statements {
			switch m := stmt.(type) {
			case *ast.MethodDeclaration:
				printCallable(analysis.CallableOf(analysis.CursorAt(res.Unit, m)).MustValue())
			case *ast.Block:
				if m.Static {
					hasStatic = true
				} else {
					hasInstance = true
				}
			}
		}
		if hasStatic {
			printCallable(analysis.StaticInitializerOf(bodyCursor).MustValue())
		}
		if hasInstance {
			printCallable(analysis.InstanceInitializerOf(bodyCursor).MustValue())
		}
	}
}

func printCallable(c analysis.Callable) {
	fmt.Printf("  %s %s(", c.ReturnType(), c.Name())
	for i, p := range c.Parameters() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%s %s", p.Type(), p.Name())
	}
	fmt.Println(")")
}

func handleReads(args []string) {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	res := parseFile(args[0])
	reportErrors(res.Errors)
	if res.Unit == nil {
		os.Exit(1)
	}

	name := args[1]
	v := analysis.VariableNamed(res.Unit, name)
	if v == nil {
		fmt.Fprintf(os.Stderr, "No variable named %s in %s\n", name, args[0])
		os.Exit(1)
	}

	green := color.New(color.FgGreen)
	fmt.Printf("reads of %s:\n", v)
	for _, cd := range res.Unit.Classes {
		if cd.Body == nil {
			continue
		}
		for _, stmt := range cd.Body.Statements {
			md, ok := stmt.(*ast.MethodDeclaration)
			if !ok || md.Body == nil {
				continue
			}
			for _, s := range md.Body.Statements {
				if analysis.Reads(s, v) {
					tok := s.GetToken()
					green.Printf("  %s: line %d\n", md.Name.Value, tok.Line)
				}
			}
		}
	}
}
