package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata a controller is mounted with.
type ControllerBind struct {
	Use     string
	Short   string
	Long    string
	Example string
	Aliases []string
	Args    cobra.PositionalArgs
}

// Controller is a CLI entry point mounted as a Cobra subcommand.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, args []string) error
}
