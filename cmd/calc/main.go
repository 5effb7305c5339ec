package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/graeme-hill/intcalc-go/lib"
)

var (
	errorLabel = color.New(color.FgRed)
	inputLabel = color.New(color.FgYellow)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	if len(args) == 0 {
		logger.Print("argument is not provided.")
		return 1
	}

	err := lib.EvalAll(args, func(res lib.Result) {
		fmt.Fprintf(stdout, "%d ", res.Value)
	})
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout)
	return 0
}

func reportError(w io.Writer, err error) {
	kind := "Error"
	var fault lib.Fault
	if errors.As(err, &fault) {
		kind = fault.Kind().String()
	}

	msg := err.Error()
	input := ""
	var batchErr *lib.BatchError
	if errors.As(err, &batchErr) {
		msg = batchErr.Err.Error()
		input = batchErr.Input
	}

	fmt.Fprint(w, "\n[")
	errorLabel.Fprint(w, "Error")
	fmt.Fprintf(w, "] %s: %s\ninput: ", kind, msg)
	inputLabel.Fprint(w, input)
	fmt.Fprintln(w)
}
