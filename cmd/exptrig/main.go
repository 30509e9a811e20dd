package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/exptrig/internal/config"
	"github.com/funvibe/exptrig/internal/prec"
	"github.com/funvibe/exptrig/pkg/builtin"
	"github.com/funvibe/exptrig/pkg/engine"
	"github.com/funvibe/exptrig/pkg/expr"
)

// Catalog inspection and evaluation tool for the transcendental definitions.
//
//	exptrig list                list every definition with its capabilities
//	exptrig show <Name>         rules, derivative and examples of one entry
//	exptrig eval <Name> <arg>   numeric evaluation, -digits controls precision

func useColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func bold(s string) string {
	if !useColor() {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

func dim(s string) string {
	if !useColor() {
		return s
	}
	return "\x1b[2m" + s + "\x1b[0m"
}

func printUsage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s list\n", prog)
	fmt.Fprintf(os.Stderr, "  %s show <Name>\n", prog)
	fmt.Fprintf(os.Stderr, "  %s eval <Name> [<arg>] [-digits N]\n", prog)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	reg := builtin.Standard()

	switch os.Args[1] {
	case "list":
		handleList(reg)
	case "show":
		handleShow(reg)
	case "eval":
		handleEval(reg)
	case "help", "-help", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func handleList(reg *engine.Registry) {
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		caps := make([]string, 0, 3)
		if len(def.Rules) > 0 {
			caps = append(caps, fmt.Sprintf("%d rules", len(def.Rules)))
		}
		if def.Numeric != nil {
			caps = append(caps, "numeric")
		}
		if def.Bridge != nil {
			caps = append(caps, "bridge")
		}
		fmt.Printf("%-14s %s\n", bold(name), dim(strings.Join(caps, ", ")))
	}
}

func handleShow(reg *engine.Registry) {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s show <Name>\n", os.Args[0])
		os.Exit(1)
	}
	name := os.Args[2]
	def, ok := reg.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "No definition for %q\n", name)
		os.Exit(1)
	}
	fmt.Println(bold(def.Name))
	attrs := make([]string, len(def.Attributes))
	for i, a := range def.Attributes {
		attrs[i] = string(a)
	}
	fmt.Printf("  attributes: %s\n", strings.Join(attrs, ", "))
	fmt.Printf("  rules: %d\n", len(def.Rules))
	if def.Derivative != nil {
		fmt.Println("  derivative: registered")
	}
	if def.DomainFallback != nil {
		fmt.Printf("  on domain failure: %s\n", def.DomainFallback.Inspect())
	}
	for _, ex := range def.Examples {
		fmt.Printf("  %s %s %s\n", ex.In, dim("=>"), ex.Out)
	}
}

func handleEval(reg *engine.Registry) {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s eval <Name> [<arg>] [-digits N]\n", os.Args[0])
		os.Exit(1)
	}
	name := os.Args[2]
	digits := config.DefaultDigits
	var argText string
	rest := os.Args[3:]
	for i := 0; i < len(rest); i++ {
		if rest[i] == "-digits" || rest[i] == "--digits" {
			if i+1 >= len(rest) {
				fmt.Fprintln(os.Stderr, "-digits needs a value")
				os.Exit(1)
			}
			d, err := strconv.Atoi(rest[i+1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Bad digit count %q\n", rest[i+1])
				os.Exit(1)
			}
			digits = d
			i++
			continue
		}
		argText = rest[i]
	}

	def, ok := reg.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "No definition for %q\n", name)
		os.Exit(1)
	}

	var target expr.Expr = expr.NewSymbol(name)
	if argText != "" {
		arg, err := parseNumber(argText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad argument %q: %v\n", argText, err)
			os.Exit(1)
		}
		target = expr.NewCall(name, arg)
	} else if !isConstant(def) {
		fmt.Fprintf(os.Stderr, "%s needs an argument\n", name)
		os.Exit(1)
	}

	ctx := prec.NewContext()
	out, err := reg.N(ctx, target, digits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out.Inspect())
}

func isConstant(def *engine.Definition) bool {
	for _, a := range def.Attributes {
		if a == engine.ConstantAttr {
			return true
		}
	}
	return false
}

// parseNumber accepts integers, rationals (p/q) and decimal reals.
func parseNumber(s string) (expr.Expr, error) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return expr.NewBigInt(i), nil
	}
	if strings.Contains(s, "/") {
		if r, ok := new(big.Rat).SetString(s); ok {
			return expr.NewRational(r), nil
		}
		return nil, fmt.Errorf("not a rational")
	}
	if f, _, err := big.ParseFloat(s, 10, 64, big.ToNearestEven); err == nil {
		return expr.NewRealFromFloat(f), nil
	}
	return nil, fmt.Errorf("not a number")
}
