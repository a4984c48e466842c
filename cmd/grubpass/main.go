// grubpass derives a GRUB-compatible PBKDF2 password hash from an
// interactively entered password and prints it as a single token on
// stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/grubpass/internal/buildinfo"
	"github.com/dmitrijs2005/grubpass/internal/cli"
	"github.com/dmitrijs2005/grubpass/internal/config"
	"github.com/dmitrijs2005/grubpass/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	for _, arg := range args {
		switch arg {
		case "-h", "-help", "--help":
			usage(os.Stdout)
			return 0
		case "-V", "-version", "--version":
			buildinfo.PrintBuildData(os.Stdout)
			return 0
		}
	}

	log := logging.NewStderrLogger()
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error(ctx, "invalid configuration", "error", err)
		usage(os.Stderr)
		return 1
	}

	app := cli.NewApp(cfg, log)
	if err := app.Run(ctx); err != nil {
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: grubpass [OPTIONS]

Options:
      --iteration-count=N   number of PBKDF2 iterations (default 10000)
      --buflen=N            length of generated hash in bytes (default 64)
      --saltlen=N           length of salt in bytes (default 64)
  -c, --config=FILE         read settings from a JSON file
  -h, --help                print this message and exit
  -V, --version             print version information and exit
`)
}
