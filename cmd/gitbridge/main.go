package main

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/internal/application"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitbridge",
		Short: "Move repositories between GitHub accounts",
		Long: `Copy, move, delete and browse repositories across several GitHub accounts,
each identified by a stored personal access token.

Accounts live in ~/.gitbridge/config.json (or $GITBRIDGE_CONFIG), or in the
system keyring when secret_backend is "keyring" in the settings file.

Usage modes:
  gitbridge <subcommand>    Run one operation and exit
  gitbridge gui             Open the interactive interface`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, controllers []entities.Controller) {
	for _, controller := range controllers {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:     bind.Use,
			Short:   bind.Short,
			Long:    bind.Long,
			Example: bind.Example,
			Aliases: bind.Aliases,
			Args:    bind.Args,
			RunE:    ctrl.Execute,
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

// exitCode maps an error returned by a subcommand to the process exit code.
func exitCode(err error) int {
	var exitErr *application.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return application.ExitFailure
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext, err := injectAppContext()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+entities.RedactCredentials(err.Error()))
		os.Exit(application.ExitFailure)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext.GetControllers())

	if err = cobraRoot.Execute(); err != nil {
		var exitErr *application.ExitError
		if !errors.As(err, &exitErr) {
			// outcomes are already printed, only argument errors are left
			_, _ = fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		}
		os.Exit(exitCode(err))
	}
}
