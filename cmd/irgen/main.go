package main

import (
	"fmt"
	"io"
	"os"

	"bsort/internal/driver"
	"bsort/internal/pipeline"
	"bsort/internal/utils"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

func main() {
	log := funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{})

	if err := run(os.Args[1:], log); err != nil {
		log.Error(err, "irgen failed")
		os.Exit(1)
	}
}

func run(args []string, log logr.Logger) (err error) {
	module, err := pipeline.ProcessProgram(driver.Sample, "int", log)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if len(args) > 0 {
		f, cerr := os.Create(args[0])
		if cerr != nil {
			return utils.MakeErrorTrace(cerr, "create output")
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = utils.MakeErrorTrace(cerr, "close output")
			}
		}()
		out = f
	}
	if _, err = module.WriteTo(out); err != nil {
		return utils.MakeErrorTrace(err, "write module")
	}
	return nil
}
