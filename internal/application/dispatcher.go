package application

import (
	"context"
	"fmt"
	"path"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/commands"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// Operation names a request. The values match the CLI subcommands.
type Operation string

const (
	OperationAddAccount       Operation = "add-account"
	OperationRemoveAccount    Operation = "remove-account"
	OperationListAccounts     Operation = "list-accounts"
	OperationListRepositories Operation = "list-repos"
	OperationCopy             Operation = "copy-repo"
	OperationDelete           Operation = "delete-repo"
	OperationMove             Operation = "move-repo"
	OperationView             Operation = "view-repo"
)

// Request is one user action with its raw parameters, as typed on the
// command line or in the terminal UI. Only the fields the operation uses are
// read.
type Request struct {
	Operation   Operation
	Name        string
	Token       string
	Repository  string
	Branch      string
	Source      string
	Destination string
	Account     string
	Path        string
	Confirmed   bool
}

// Handler executes requests. Both user surfaces depend on it and nothing else.
type Handler interface {
	Dispatch(ctx context.Context, request Request) Outcome
}

// Dispatcher is the Handler backed by the domain commands.
type Dispatcher struct {
	addAccount       commands.AddAccount
	removeAccount    commands.RemoveAccount
	listAccounts     commands.ListAccounts
	listRepositories commands.ListRepositories
	copyRepository   commands.Copy
	deleteRepository commands.Delete
	moveRepository   commands.Move
	browse           commands.Browse
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	addAccount commands.AddAccount,
	removeAccount commands.RemoveAccount,
	listAccounts commands.ListAccounts,
	listRepositories commands.ListRepositories,
	copyRepository commands.Copy,
	deleteRepository commands.Delete,
	moveRepository commands.Move,
	browse commands.Browse,
) *Dispatcher {
	return &Dispatcher{
		addAccount:       addAccount,
		removeAccount:    removeAccount,
		listAccounts:     listAccounts,
		listRepositories: listRepositories,
		copyRepository:   copyRepository,
		deleteRepository: deleteRepository,
		moveRepository:   moveRepository,
		browse:           browse,
	}
}

// Dispatch validates the request, runs the matching command and describes
// the result.
func (it *Dispatcher) Dispatch(ctx context.Context, request Request) Outcome {
	logger.Debugf("Dispatching %s", request.Operation)

	switch request.Operation {
	case OperationAddAccount:
		return it.dispatchAddAccount(request)
	case OperationRemoveAccount:
		return it.dispatchRemoveAccount(request)
	case OperationListAccounts:
		return it.dispatchListAccounts()
	case OperationListRepositories:
		return it.dispatchListRepositories(ctx, request)
	case OperationCopy, OperationMove:
		return it.dispatchTransfer(ctx, request)
	case OperationDelete:
		return it.dispatchDelete(ctx, request)
	case OperationView:
		return it.dispatchView(ctx, request)
	default:
		return failure(fmt.Sprintf("unknown operation %q", request.Operation))
	}
}

func (it *Dispatcher) dispatchAddAccount(request Request) Outcome {
	if missing := missingFields(map[string]string{"name": request.Name, "token": request.Token}); missing != "" {
		return failure(missing)
	}
	if err := it.addAccount.Execute(request.Name, request.Token); err != nil {
		return failure(describe(err))
	}
	return success(fmt.Sprintf("Account %q added", strings.TrimSpace(request.Name)))
}

func (it *Dispatcher) dispatchRemoveAccount(request Request) Outcome {
	if missing := missingFields(map[string]string{"name": request.Name}); missing != "" {
		return failure(missing)
	}
	if err := it.removeAccount.Execute(request.Name); err != nil {
		return failure(describe(err))
	}
	return success(fmt.Sprintf("Account %q removed", request.Name))
}

func (it *Dispatcher) dispatchListAccounts() Outcome {
	accounts, err := it.listAccounts.Execute()
	if err != nil {
		return failure(describe(err))
	}
	if len(accounts) == 0 {
		return success("No accounts configured")
	}

	lines := make([]string, 0, len(accounts))
	for _, account := range accounts {
		lines = append(lines, fmt.Sprintf("%s\t%s", account.Name, account.MaskedToken))
	}
	outcome := success(fmt.Sprintf("%d account(s)", len(accounts)))
	outcome.Lines = lines
	return outcome
}

// dispatchListRepositories prints every account that could be listed and
// fails when at least one could not.
func (it *Dispatcher) dispatchListRepositories(ctx context.Context, request Request) Outcome {
	listings, err := it.listRepositories.Execute(ctx, request.Account)
	if err != nil {
		return failure(describe(err))
	}
	if len(listings) == 0 {
		return success("No accounts configured")
	}

	var lines []string
	failed := 0
	for _, listing := range listings {
		if listing.Err != nil {
			failed++
			lines = append(lines, fmt.Sprintf("Account %s: error: %s", listing.Account, describe(listing.Err)))
			continue
		}
		lines = append(lines, fmt.Sprintf("Account %s (%d repositories):", listing.Account, len(listing.Repositories)))
		for _, repo := range listing.Repositories {
			lines = append(lines, "  "+repo.Organization+"/"+repo.Name)
		}
	}

	outcome := success(fmt.Sprintf("Listed %d account(s)", len(listings)))
	if failed > 0 {
		outcome = failure(fmt.Sprintf("%d of %d account(s) could not be listed", failed, len(listings)))
	}
	outcome.Lines = lines
	return outcome
}

func (it *Dispatcher) dispatchTransfer(ctx context.Context, request Request) Outcome {
	missing := missingFields(map[string]string{
		"repository":  request.Repository,
		"source":      request.Source,
		"destination": request.Destination,
	})
	if missing != "" {
		return failure(missing)
	}

	ref, err := entities.ParseRepositoryReference(request.Repository, request.Branch)
	if err != nil {
		return failure(describe(err))
	}
	input := commands.CopyInput{Reference: ref, Source: request.Source, Destination: request.Destination}

	if request.Operation == OperationMove {
		return fromResult(it.moveRepository.Execute(ctx, input))
	}
	return fromResult(it.copyRepository.Execute(ctx, input))
}

func (it *Dispatcher) dispatchDelete(ctx context.Context, request Request) Outcome {
	missing := missingFields(map[string]string{"repository": request.Repository, "account": request.Account})
	if missing != "" {
		return failure(missing)
	}

	ref, err := entities.ParseRepositoryReference(request.Repository, "")
	if err != nil {
		return failure(describe(err))
	}

	return fromResult(it.deleteRepository.Execute(ctx, commands.DeleteInput{
		Reference: ref,
		Account:   request.Account,
		Confirmed: request.Confirmed,
	}))
}

// dispatchView lists a directory (sub-directories end with "/") or prints a
// file line by line.
func (it *Dispatcher) dispatchView(ctx context.Context, request Request) Outcome {
	missing := missingFields(map[string]string{"repository": request.Repository, "account": request.Account})
	if missing != "" {
		return failure(missing)
	}

	ref, err := entities.ParseRepositoryReference(request.Repository, request.Branch)
	if err != nil {
		return failure(describe(err))
	}

	contents, err := it.browse.Execute(ctx, commands.BrowseInput{
		Reference: ref,
		Account:   request.Account,
		Path:      request.Path,
	})
	if err != nil {
		return failure(describe(err))
	}

	location := ref.FullName()
	if contents.Path != "" {
		location += "/" + contents.Path
	}

	if contents.IsFile {
		outcome := success(location)
		outcome.Lines = strings.Split(strings.TrimRight(contents.Content, "\n"), "\n")
		return outcome
	}

	lines := make([]string, 0, len(contents.Entries))
	for _, entry := range contents.Entries {
		name := path.Base(entry.Path)
		if entry.IsDir {
			name += "/"
		}
		lines = append(lines, name)
	}
	outcome := success(fmt.Sprintf("%s (%d entries)", location, len(lines)))
	outcome.Lines = lines
	return outcome
}

func success(message string) Outcome {
	return Outcome{Status: StatusSuccess, Message: message}
}

func failure(message string) Outcome {
	return Outcome{Status: StatusFailure, Message: message}
}

// missingFields names the empty required parameters in a stable order, or
// returns "" when all are present.
func missingFields(fields map[string]string) string {
	var missing []string
	for _, name := range []string{"name", "token", "repository", "source", "destination", "account"} {
		value, required := fields[name]
		if required && strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return "missing required parameter(s): " + strings.Join(missing, ", ")
}
