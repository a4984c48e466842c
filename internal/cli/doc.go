// Package cli wires the grubpass derivation pipeline: interactive
// secret acquisition with confirmation, salt generation, PBKDF2
// invocation and canonical token output.
//
// The pipeline is strictly sequential and single-shot. Every sensitive
// buffer (secret, confirmation, salt, derived key, their hex forms) is
// zeroed before release on every exit path, success or failure. On
// failure nothing is written to stdout; a one-line diagnostic goes to
// the logger and the caller maps the error to a non-zero exit status.
package cli
