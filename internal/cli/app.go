package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/grubpass/internal/config"
	"github.com/dmitrijs2005/grubpass/internal/entropy"
	"github.com/dmitrijs2005/grubpass/internal/kdf"
	"github.com/dmitrijs2005/grubpass/internal/logging"
	"github.com/dmitrijs2005/grubpass/internal/prompt"
	"github.com/dmitrijs2005/grubpass/internal/secbuf"
)

// App holds the pipeline collaborators for one run.
type App struct {
	config    *config.Config
	log       logging.Logger
	in        *prompt.Reader
	out       io.Writer
	primitive kdf.Primitive
}

// NewApp builds an App bound to the process's stdin/stdout, with
// prompts and diagnostics on stderr.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	return &App{
		config:    cfg,
		log:       log,
		in:        prompt.New(os.Stdin, os.Stderr),
		out:       os.Stdout,
		primitive: kdf.SHA512{},
	}
}

// Run drives the pipeline: secret acquisition, salt sourcing,
// derivation and token emission. On success exactly one token line is
// written to the output stream; on failure nothing is.
func (a *App) Run(ctx context.Context) error {
	secret, err := a.in.ReadConfirmed("Enter password: ", "Reenter password: ")
	if err != nil {
		a.log.Error(ctx, "password input failed", "error", err)
		return err
	}
	defer secret.Destroy()

	if msg := entropy.Advisory(); msg != "" {
		a.log.Warn(ctx, msg)
	}

	salt, err := entropy.NewSalt(a.config.SaltLen)
	if err != nil {
		a.log.Error(ctx, "salt generation failed", "error", err)
		return err
	}
	defer salt.Destroy()

	derived, err := a.primitive.Derive(secret.Bytes(), salt.Bytes(), a.config.IterationCount, a.config.BufLen)
	// The secret has no use past the derivation call, success or not.
	secret.Destroy()
	if err != nil {
		a.log.Error(ctx, "key derivation failed", "error", err)
		return err
	}
	key := secbuf.Adopt(derived)
	defer key.Destroy()

	saltHex := secbuf.Adopt(kdf.Hexify(salt.Bytes()))
	defer saltHex.Destroy()
	keyHex := secbuf.Adopt(kdf.Hexify(key.Bytes()))
	defer keyHex.Destroy()

	if _, err := fmt.Fprintf(a.out, "%s.%d.%s.%s\n",
		kdf.TokenPrefix, a.config.IterationCount, saltHex.Bytes(), keyHex.Bytes()); err != nil {
		a.log.Error(ctx, "writing credential token failed", "error", err)
		return err
	}
	return nil
}
