// Package cli provides the interactive JobHunt command-line client.
//
// It wires configuration, storage and the account, catalog and profile
// stores behind a line-oriented REPL. The REPL holds no state of its own:
// every command calls a store and prints what the store returns.
//
// Commands:
//   - register / login / logout / whoami
//   - jobs [search=.. category=.. exp=.. worktype=.. sort=..]
//   - filter category|exp|worktype <value>
//   - show / save / apply <id>, saved, applications
//   - post, profile, counts, theme [dark|light|toggle]
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
