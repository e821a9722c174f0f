package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/internal/application"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// AddAccountController handles the "add-account" subcommand.
type AddAccountController struct {
	handler application.Handler
}

// NewAddAccountController creates a new AddAccountController.
func NewAddAccountController(handler application.Handler) *AddAccountController {
	return &AddAccountController{handler: handler}
}

func (it *AddAccountController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "add-account <name> <token>",
		Short: "Store a named account token",
		Long: `Store a personal access token under a name used by the other commands.

The token may also be written as ${ENV_VAR} or as the path to a file holding
it; both are resolved each time the account is used.`,
		Example: "  gitbridge add-account work ghp_xxxxxxxxxxxx\n  gitbridge add-account ci '${GITHUB_TOKEN}'",
		Args:    cobra.ExactArgs(2), //nolint:mnd // name and token
	}
}

func (it *AddAccountController) AddFlags(_ *cobra.Command) {}

func (it *AddAccountController) Execute(cmd *cobra.Command, args []string) error {
	return report(cmd, it.handler.Dispatch(context.Background(), application.Request{
		Operation: application.OperationAddAccount,
		Name:      args[0],
		Token:     args[1],
	}))
}

// RemoveAccountController handles the "remove-account" subcommand.
type RemoveAccountController struct {
	handler application.Handler
}

// NewRemoveAccountController creates a new RemoveAccountController.
func NewRemoveAccountController(handler application.Handler) *RemoveAccountController {
	return &RemoveAccountController{handler: handler}
}

func (it *RemoveAccountController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "remove-account <name>",
		Short: "Forget a stored account",
		Args:  cobra.ExactArgs(1),
	}
}

func (it *RemoveAccountController) AddFlags(_ *cobra.Command) {}

func (it *RemoveAccountController) Execute(cmd *cobra.Command, args []string) error {
	return report(cmd, it.handler.Dispatch(context.Background(), application.Request{
		Operation: application.OperationRemoveAccount,
		Name:      args[0],
	}))
}

// ListAccountsController handles the "list-accounts" subcommand.
type ListAccountsController struct {
	handler application.Handler
}

// NewListAccountsController creates a new ListAccountsController.
func NewListAccountsController(handler application.Handler) *ListAccountsController {
	return &ListAccountsController{handler: handler}
}

func (it *ListAccountsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list-accounts",
		Short: "List stored accounts with masked tokens",
		Args:  cobra.NoArgs,
	}
}

func (it *ListAccountsController) AddFlags(_ *cobra.Command) {}

func (it *ListAccountsController) Execute(cmd *cobra.Command, _ []string) error {
	return report(cmd, it.handler.Dispatch(context.Background(), application.Request{
		Operation: application.OperationListAccounts,
	}))
}
