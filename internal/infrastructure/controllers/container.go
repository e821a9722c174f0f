package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		NewTerminalPrompter,
		NewAddAccountController,
		NewRemoveAccountController,
		NewListAccountsController,
		NewListReposController,
		NewCopyRepoController,
		NewDeleteRepoController,
		NewMoveRepoController,
		NewViewRepoController,
		NewGUIController,
		NewControllers,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	addAccountController *AddAccountController,
	removeAccountController *RemoveAccountController,
	listAccountsController *ListAccountsController,
	listReposController *ListReposController,
	copyRepoController *CopyRepoController,
	deleteRepoController *DeleteRepoController,
	moveRepoController *MoveRepoController,
	viewRepoController *ViewRepoController,
	guiController *GUIController,
) *[]entities.Controller {
	return &[]entities.Controller{
		addAccountController,
		removeAccountController,
		listAccountsController,
		listReposController,
		copyRepoController,
		deleteRepoController,
		moveRepoController,
		viewRepoController,
		guiController,
	}
}
