package tui

import (
	"github.com/rios0rios0/gitbridge/internal/application"
)

// field is one text input of a tab, bound to a Request parameter.
type field struct {
	label       string
	placeholder string
	secret      bool
	assign      func(request *application.Request, value string)
}

// tab is one screen of the UI. Every tab submits the same requests as the
// matching CLI subcommand.
type tab struct {
	title     string
	operation application.Operation
	fields    []field
	// confirm is the question asked before submitting, empty for safe tabs.
	confirm func(request application.Request) string
}

var (
	nameField = field{label: "Account name", placeholder: "work",
		assign: func(r *application.Request, v string) { r.Name = v }}
	tokenField = field{label: "Token", placeholder: "ghp_... or ${ENV_VAR}", secret: true,
		assign: func(r *application.Request, v string) { r.Token = v }}
	repositoryField = field{label: "Repository", placeholder: "owner/repo or repo",
		assign: func(r *application.Request, v string) { r.Repository = v }}
	sourceField = field{label: "Source account", placeholder: "personal",
		assign: func(r *application.Request, v string) { r.Source = v }}
	destinationField = field{label: "Destination account", placeholder: "work",
		assign: func(r *application.Request, v string) { r.Destination = v }}
	accountField = field{label: "Account", placeholder: "personal",
		assign: func(r *application.Request, v string) { r.Account = v }}
	branchField = field{label: "Branch (optional)", placeholder: "all branches",
		assign: func(r *application.Request, v string) { r.Branch = v }}
	pathField = field{label: "Path (optional)", placeholder: "repository root",
		assign: func(r *application.Request, v string) { r.Path = v }}
)

func defaultTabs() []tab {
	return []tab{
		{title: "Accounts", operation: application.OperationListAccounts},
		{title: "Add Account", operation: application.OperationAddAccount, fields: []field{nameField, tokenField}},
		{
			title: "Remove Account", operation: application.OperationRemoveAccount,
			fields: []field{nameField},
			confirm: func(r application.Request) string {
				return "Remove account " + r.Name + " and its stored token?"
			},
		},
		{title: "List Repos", operation: application.OperationListRepositories, fields: []field{
			{label: "Account (optional)", placeholder: "all accounts",
				assign: func(r *application.Request, v string) { r.Account = v }},
		}},
		{
			title: "Copy Repo", operation: application.OperationCopy,
			fields: []field{repositoryField, sourceField, destinationField, branchField},
		},
		{
			title: "Delete Repo", operation: application.OperationDelete,
			fields: []field{repositoryField, accountField},
			confirm: func(r application.Request) string {
				return "Delete " + r.Repository + " from account " + r.Account + "? This cannot be undone."
			},
		},
		{
			title: "Move Repo", operation: application.OperationMove,
			fields: []field{repositoryField, sourceField, destinationField, branchField},
			confirm: func(r application.Request) string {
				return "Move " + r.Repository + " to " + r.Destination + "? The source in " +
					r.Source + " is deleted after a successful copy."
			},
		},
		{
			title: "View Repo", operation: application.OperationView,
			fields: []field{repositoryField, accountField, pathField, branchField},
		},
	}
}
