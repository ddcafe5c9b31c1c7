// Command ubjcat decodes a UBJSON-encoded value and prints its JSON-shaped
// dump.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/onogu/ubjson"
)

func red(s string) string {
	c := color.New(color.FgHiRed)
	c.EnableColor()
	return c.SprintFunc()(s)
}

func yellow(s string) string {
	c := color.New(color.FgHiYellow)
	c.EnableColor()
	return c.SprintFunc()(s)
}

func policyFromContext(c *cli.Context) ubjson.Policy {
	pol := ubjson.DefaultPolicy()
	if v := c.Int("max-depth"); v > 0 {
		pol.MaxValueDepth = v
	}
	if v := c.Int64("max-string-size"); v > 0 {
		pol.MaxStringSize = v
	}
	if v := c.Int64("max-binary-size"); v > 0 {
		pol.MaxBinarySize = v
	}
	return pol
}

func catAction(c *cli.Context) error {
	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("ubjcat: %v", err)))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	reader := ubjson.NewReader(in, policyFromContext(c))
	v, err := reader.ReadNext()
	if err != nil {
		fmt.Fprintln(os.Stderr, red(fmt.Sprintf("ubjcat: %v", err)))
		os.Exit(1)
	}

	fmt.Println(v.Dump(c.Bool("pretty")))
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "ubjcat"
	app.Usage = "decode a UBJSON value and print its JSON-shaped dump"
	app.ArgsUsage = "[file]"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "pretty",
			Usage: "indent the dump one tab per nesting level",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Usage: "override Policy.MaxValueDepth",
		},
		cli.Int64Flag{
			Name:  "max-string-size",
			Usage: "override Policy.MaxStringSize, in bytes",
		},
		cli.Int64Flag{
			Name:  "max-binary-size",
			Usage: "override Policy.MaxBinarySize, in bytes",
		},
	}
	app.Action = catAction

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, red(fmt.Sprintf("ubjcat: %v", err)))
		os.Exit(1)
	}
}
