// Package cmd implements the CLI application to simulate investment plans.
package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the tims application.
// The main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&searchCmd{},
	&historyCmd{},
	&topicCmd{},
	&assistCmd{},
}
