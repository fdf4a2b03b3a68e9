package main

import (
	"fmt"
	"os"

	_ "github.com/keshon/slashy/internal/command/calc"
	_ "github.com/keshon/slashy/internal/command/core"
	_ "github.com/keshon/slashy/internal/command/roll"
	_ "github.com/keshon/slashy/internal/command/stats"

	"github.com/keshon/slashy/internal/cli"
	"github.com/keshon/slashy/pkg/cmd"
)

func main() {
	if err := cli.NewRootCmd(cmd.DefaultRegistry).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
