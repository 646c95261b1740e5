// Command dutree is an interactive terminal disk-usage visualizer: point
// it at a directory and it renders a squarified treemap of what's taking
// up space, letting you navigate into subfolders and delete what you
// find.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/r3ap3r2004/dutree/internal/app"
	"github.com/r3ap3r2004/dutree/internal/scan"
	"github.com/r3ap3r2004/dutree/internal/sched"
	"github.com/r3ap3r2004/dutree/internal/term"
)

func main() {
	root := &cobra.Command{
		Use:   "dutree [path]",
		Short: "Interactive terminal disk-usage visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return run(path)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(path string) error {
	basePath, err := scan.StatBasePath(path)
	if err != nil {
		return app.NewStartupError(err)
	}

	terminal, err := term.Open()
	if err != nil {
		return err
	}
	defer terminal.Close()

	a := app.New(basePath)
	width, height := terminal.Size()
	a.HandleResize(width, height)

	defer func() {
		if r := recover(); r != nil {
			terminal.Close()
			fmt.Fprintf(os.Stderr, "fatal: %v\n", r)
			os.Exit(2)
		}
	}()

	scheduler := sched.New(terminal.Screen, basePath)
	scheduler.Run(context.Background(), a, func() {
		a.Render(terminal.Screen)
	})

	return nil
}
