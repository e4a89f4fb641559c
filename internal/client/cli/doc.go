// Package cli provides the interactive LangGPT command-line client.
//
// It wires configuration, the local session store and the API client into a
// small REPL. Typical flow: log in, optionally store your own model key with
// setkey, then translate and browse history.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
