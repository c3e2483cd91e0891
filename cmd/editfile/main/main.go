package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/editfile/cmd/editfile"
	"github.com/arthur-debert/editfile/pkg/style"
)

func main() {
	rootCmd := editfile.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, editfile.ErrCheckFailed) {
			s := style.New(os.Stderr, style.ColorAuto)
			fmt.Fprintln(os.Stderr, s.Error(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
