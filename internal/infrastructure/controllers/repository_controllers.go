package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/internal/application"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// ListReposController handles the "list-repos" subcommand.
type ListReposController struct {
	handler application.Handler
}

// NewListReposController creates a new ListReposController.
func NewListReposController(handler application.Handler) *ListReposController {
	return &ListReposController{handler: handler}
}

func (it *ListReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list-repos",
		Short: "List repositories of every account, or of one",
		Long: `List the repositories visible to each stored account.

An account that cannot be listed is reported next to the others and makes
the command exit with a non-zero code.`,
		Args: cobra.NoArgs,
	}
}

func (it *ListReposController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Only list this account")
}

func (it *ListReposController) Execute(cmd *cobra.Command, _ []string) error {
	account, _ := cmd.Flags().GetString("account")
	return report(cmd, it.handler.Dispatch(context.Background(), application.Request{
		Operation: application.OperationListRepositories,
		Account:   account,
	}))
}

// transferController handles "copy-repo" and "move-repo", which share
// arguments and flags.
type transferController struct {
	handler   application.Handler
	operation application.Operation
	bind      entities.ControllerBind
}

func (it *transferController) GetBind() entities.ControllerBind {
	return it.bind
}

func (it *transferController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("source", "s", "", "Account the repository is read from")
	cmd.Flags().StringP("dest", "d", "", "Account the repository is written to")
	cmd.Flags().StringP("branch", "b", "", "Only transfer this branch")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("dest")
}

func (it *transferController) Execute(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	dest, _ := cmd.Flags().GetString("dest")
	branch, _ := cmd.Flags().GetString("branch")

	return report(cmd, it.handler.Dispatch(context.Background(), application.Request{
		Operation:   it.operation,
		Repository:  args[0],
		Branch:      branch,
		Source:      source,
		Destination: dest,
	}))
}

// CopyRepoController handles the "copy-repo" subcommand.
type CopyRepoController struct {
	transferController
}

// NewCopyRepoController creates a new CopyRepoController.
func NewCopyRepoController(handler application.Handler) *CopyRepoController {
	return &CopyRepoController{transferController{
		handler:   handler,
		operation: application.OperationCopy,
		bind: entities.ControllerBind{
			Use:   "copy-repo <owner/repo|repo>",
			Short: "Copy a repository with its branches and tags to another account",
			Long: `Copy a repository from the source account to the destination account.

The destination repository is created when missing, mirroring the source
visibility and description. A bare repository name is looked up in the
source account.`,
			Example: "  gitbridge copy-repo alice/demo --source personal --dest work\n" +
				"  gitbridge copy-repo demo -s personal -d work --branch main",
			Args: cobra.ExactArgs(1),
		},
	}}
}

// MoveRepoController handles the "move-repo" subcommand.
type MoveRepoController struct {
	transferController
}

// NewMoveRepoController creates a new MoveRepoController.
func NewMoveRepoController(handler application.Handler) *MoveRepoController {
	return &MoveRepoController{transferController{
		handler:   handler,
		operation: application.OperationMove,
		bind: entities.ControllerBind{
			Use:   "move-repo <owner/repo|repo>",
			Short: "Copy a repository to another account, then delete the source",
			Long: `Copy a repository like copy-repo and, only when the copy fully succeeded,
delete it from the source account.

With --branch only that branch and its tags are copied, but the whole source
repository is still deleted, including every other branch.

Exit code 2 means the copy succeeded but the source could not be deleted.`,
			Example: "  gitbridge move-repo alice/demo --source personal --dest work",
			Args:    cobra.ExactArgs(1),
		},
	}}
}

// DeleteRepoController handles the "delete-repo" subcommand.
type DeleteRepoController struct {
	handler  application.Handler
	prompter Prompter
}

// NewDeleteRepoController creates a new DeleteRepoController.
func NewDeleteRepoController(handler application.Handler, prompter Prompter) *DeleteRepoController {
	return &DeleteRepoController{handler: handler, prompter: prompter}
}

func (it *DeleteRepoController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "delete-repo <owner/repo|repo>",
		Short: "Delete a repository (cannot be undone)",
		Long: `Delete a repository from an account.

Without --force or --yes the command asks for confirmation on the terminal,
and refuses to run when there is no terminal to ask on.`,
		Example: "  gitbridge delete-repo alice/demo --account personal\n" +
			"  gitbridge delete-repo demo -a personal --yes",
		Args: cobra.ExactArgs(1),
	}
}

func (it *DeleteRepoController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Account owning the repository")
	cmd.Flags().BoolP("force", "f", false, "Delete without asking")
	cmd.Flags().BoolP("yes", "y", false, "Answer yes to the confirmation")
	_ = cmd.MarkFlagRequired("account")
}

func (it *DeleteRepoController) Execute(cmd *cobra.Command, args []string) error {
	account, _ := cmd.Flags().GetString("account")
	force, _ := cmd.Flags().GetBool("force")
	yes, _ := cmd.Flags().GetBool("yes")

	confirmed := force || yes
	if !confirmed {
		answer, err := it.prompter.Confirm(
			"Delete " + args[0] + " from account " + account + "? This cannot be undone.",
		)
		if err == nil && !answer {
			return report(cmd, application.Cancelled("Deletion"))
		}
		// without a terminal the request goes through unconfirmed and is refused
		confirmed = err == nil
	}

	outcome := it.handler.Dispatch(context.Background(), application.Request{
		Operation:  application.OperationDelete,
		Repository: args[0],
		Account:    account,
		Confirmed:  confirmed,
	})
	if outcome.NeedsConfirmation {
		outcome.Message += " (use --yes or --force)"
	}
	return report(cmd, outcome)
}

// ViewRepoController handles the "view-repo" subcommand.
type ViewRepoController struct {
	handler application.Handler
}

// NewViewRepoController creates a new ViewRepoController.
func NewViewRepoController(handler application.Handler) *ViewRepoController {
	return &ViewRepoController{handler: handler}
}

func (it *ViewRepoController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "view-repo <owner/repo|repo>",
		Short:   "List a repository directory or print a file",
		Example: "  gitbridge view-repo alice/demo --account personal --path docs/README.md",
		Args:    cobra.ExactArgs(1),
	}
}

func (it *ViewRepoController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Account used to read the repository")
	cmd.Flags().StringP("path", "p", "", "Directory or file inside the repository")
	cmd.Flags().StringP("branch", "b", "", "Branch to read instead of the default one")
	_ = cmd.MarkFlagRequired("account")
}

func (it *ViewRepoController) Execute(cmd *cobra.Command, args []string) error {
	account, _ := cmd.Flags().GetString("account")
	path, _ := cmd.Flags().GetString("path")
	branch, _ := cmd.Flags().GetString("branch")

	return report(cmd, it.handler.Dispatch(context.Background(), application.Request{
		Operation:  application.OperationView,
		Repository: args[0],
		Account:    account,
		Path:       path,
		Branch:     branch,
	}))
}
