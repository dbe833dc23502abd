// 19 Oct 2026

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/rna3d/pkg/cli"
)

func main() {
	err := cli.RootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rna3d:", err)
	}
	os.Exit(cli.ExitCode(err))
}
