// Package cli provides the interactive expense tracker command-line client.
//
// It wires configuration, local storage, the REST client and the sync
// controller, then runs a REPL. The REPL never renders on its own: it
// subscribes to controller snapshots and prints category and expense lists
// when they change, and prints each notification when it is shown.
//
// Commands:
//   - register, login, logout
//   - categories, addcategory, delcategory <id>
//   - expenses, addexpense, delexpense <id>
//   - summary <yyyy-mm>, total <yyyy-mm>
//   - export <file.csv|file.xlsx|s3://bucket/key>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
