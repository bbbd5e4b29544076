package main

import (
	"bufio"
	"fmt"
	"os"

	"cloudeng.io/errors"
	"github.com/spf13/cobra"
	"github.com/zoejohnston/gzoe"
)

func main() {
	root := &cobra.Command{
		Use:           "gzoe",
		Short:         "compress stdin to a gzip member on stdout",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(os.Stdin, os.Stdout)
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gzoe:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File) error {
	bufOut := bufio.NewWriter(out)
	enc := gzoe.NewEncoder(in, bufOut)

	errs := &errors.M{}
	errs.Append(enc.Run())
	errs.Append(bufOut.Flush())
	return errs.Err()
}
