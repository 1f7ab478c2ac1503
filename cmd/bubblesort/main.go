package main

import (
	"fmt"
	"os"

	"bsort/internal/driver"

	"github.com/go-logr/logr/funcr"
)

func main() {
	log := funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{})

	if err := driver.New(os.Stdout, log).Run(); err != nil {
		log.Error(err, "bubblesort failed")
		os.Exit(1)
	}
}
