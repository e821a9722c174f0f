package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// Move is the interface for moving a repository between accounts.
type Move interface {
	Execute(ctx context.Context, input CopyInput) entities.OperationResult
}

// MoveCommand copies a repository and, only when the copy fully succeeded,
// deletes the source.
type MoveCommand struct {
	copyCommand   Copy
	deleteCommand Delete
}

// NewMoveCommand creates a new MoveCommand.
func NewMoveCommand(copyCommand Copy, deleteCommand Delete) *MoveCommand {
	return &MoveCommand{copyCommand: copyCommand, deleteCommand: deleteCommand}
}

// Execute returns the copy result untouched when the copy fails. When the
// source cannot be deleted afterwards the result is partial.
func (it *MoveCommand) Execute(ctx context.Context, input CopyInput) entities.OperationResult {
	copyResult := it.copyCommand.Execute(ctx, input)
	if !copyResult.Success {
		return copyResult
	}

	if input.Reference.Branch != "" {
		logger.Warnf(
			"Only branch %q was copied; deleting %s removes every other branch of the source",
			input.Reference.Branch, input.Reference.FullName(),
		)
	}
	deleteResult := it.deleteCommand.Execute(ctx, DeleteInput{
		Reference: input.Reference,
		Account:   input.Source,
		Confirmed: true,
	})
	if !deleteResult.Success {
		logger.Warnf("Move of %s is partial: %s", input.Reference, deleteResult.Message)
		return entities.PartiallyFailed(
			deleteResult.Step,
			deleteResult.Err,
			fmt.Sprintf("the copy to %q succeeded but the source was not deleted", input.Destination),
		)
	}

	logger.Infof("Moved %s from %q to %q", input.Reference.FullName(), input.Source, input.Destination)
	return entities.Succeeded(
		"Moved %s from %q to %q", input.Reference.FullName(), input.Source, input.Destination,
	)
}
