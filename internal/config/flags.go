package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/grubpass/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-iteration-count N   number of PBKDF2 iterations
//	-buflen N            length of generated hash in bytes
//	-saltlen N           length of salt in bytes
//
// The function filters os.Args to only include the flags it owns, using
// flagx.FilterArgs, so that -c/-config and -help/-version handled
// elsewhere do not trip the FlagSet.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-iteration-count", "--iteration-count",
		"-buflen", "--buflen",
		"-saltlen", "--saltlen",
	})

	fs := flag.NewFlagSet("grubpass", flag.ContinueOnError)

	fs.Uint64Var(&cfg.IterationCount, "iteration-count", cfg.IterationCount, "number of PBKDF2 iterations")
	fs.IntVar(&cfg.BufLen, "buflen", cfg.BufLen, "length of generated hash in bytes")
	fs.IntVar(&cfg.SaltLen, "saltlen", cfg.SaltLen, "length of salt in bytes")

	return fs.Parse(args)
}
