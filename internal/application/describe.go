package application

import (
	"errors"
	"fmt"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// describe turns a failure into the text shown to the user. Only this layer
// decides how errors read; the layers below return typed errors.
func describe(err error) string {
	if err == nil {
		return ""
	}

	var (
		authErr      *entities.AuthError
		notFoundErr  *entities.NotFoundError
		duplicateErr *entities.DuplicateAccountError
		existsErr    *entities.AlreadyExistsError
		gitErr       *entities.GitCommandError
		confirmErr   *entities.ConfirmationRequiredError
		rateErr      *entities.RateLimitError
		configErr    *entities.ConfigError
		sameErr      *entities.SameRepositoryError
	)

	var text string
	switch {
	case errors.As(err, &authErr):
		text = authErr.Error() + "; check the token scopes or add the account again with a new token"
	case errors.As(err, &notFoundErr):
		text = notFoundErr.Error()
		if notFoundErr.Kind == "account" {
			text += "; add it with add-account"
		}
	case errors.As(err, &duplicateErr):
		text = duplicateErr.Error() + "; remove it first to replace the token"
	case errors.As(err, &existsErr):
		text = existsErr.Error()
	case errors.As(err, &gitErr):
		text = gitErr.Error()
	case errors.As(err, &confirmErr):
		text = confirmErr.Error()
	case errors.As(err, &sameErr):
		text = sameErr.Error() + "; the destination account must belong to another user"
	case errors.As(err, &rateErr):
		text = rateErr.Error() + "; try again later"
	case errors.As(err, &configErr):
		text = fmt.Sprintf("invalid configuration in %s: %v", configErr.Path, configErr.Err)
	case errors.Is(err, entities.ErrInvalidReference):
		text = err.Error()
	default:
		text = err.Error()
	}
	return entities.RedactCredentials(text)
}

// fromResult converts a synchronizer result into an Outcome.
func fromResult(result entities.OperationResult) Outcome {
	if result.Success {
		return Outcome{Status: StatusSuccess, Message: result.Message}
	}
	if result.Partial {
		return Outcome{Status: StatusPartial, Message: entities.RedactCredentials(result.Message)}
	}

	var confirmErr *entities.ConfirmationRequiredError
	if errors.As(result.Err, &confirmErr) {
		return Outcome{Status: StatusFailure, Message: describe(confirmErr), NeedsConfirmation: true}
	}

	message := entities.RedactCredentials(result.Message)
	if result.Err != nil {
		message = describe(result.Err)
		if result.Step != "" {
			message = fmt.Sprintf("%s failed: %s", result.Step, message)
		}
	}
	return Outcome{Status: StatusFailure, Message: message}
}
