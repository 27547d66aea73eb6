package main

import (
	"dotsync/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// dotsync is an interactive front end to an external dotfiles tool (yadm by default):
//   - Ensures the dotfiles directory, the backup directory and the local repository exist
//   - Links every file of the dotfiles directory into the home directory, skipping files
//     marked for another platform (_mac, _linux) and backing up anything in the way
//   - Offers a numbered menu to add, commit and push, pull, show status and hard-reset
//   - Records links and backups in a JSON state file
//
// Error handling strategy:
//   - Warnings (missing directories, invalid menu input, backups) are logged and the run continues
//   - Any failing filesystem operation or tool invocation is fatal: it is logged with the
//     failing operation and the process exits with a non-zero status
func main() {
	cmd.Execute()
}
