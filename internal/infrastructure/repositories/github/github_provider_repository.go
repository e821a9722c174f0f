package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

const (
	providerName     = "github"
	perPage          = 100
	defaultCloneHost = "github.com"
	contentTypeDir   = "dir"
)

// Options tunes the GitHub client. The zero value targets github.com with no
// client-side timeout.
type Options struct {
	// APIURL is the REST API base, e.g. https://ghe.example.com/api/v3/.
	APIURL string
	// Timeout bounds every HTTP request.
	Timeout time.Duration
	// HTTPClient replaces the default client when set. Timeout is then ignored.
	HTTPClient *http.Client
}

// GitHubProviderRepository implements repositories.ProviderRepository for GitHub.
type GitHubProviderRepository struct {
	token     string
	client    *gh.Client
	cloneHost string
	login     string
}

// NewGitHubProviderRepository creates a GitHub provider authenticated with token.
func NewGitHubProviderRepository(token string, opts Options) repositories.ProviderRepository {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	client := gh.NewClient(httpClient).WithAuthToken(token)
	cloneHost := defaultCloneHost

	if opts.APIURL != "" {
		baseURL, err := url.Parse(opts.APIURL)
		if err != nil {
			logger.Warnf("Ignoring invalid GitHub API URL %q: %v", opts.APIURL, err)
		} else {
			if !strings.HasSuffix(baseURL.Path, "/") {
				baseURL.Path += "/"
			}
			client.BaseURL = baseURL
			cloneHost = strings.TrimPrefix(baseURL.Host, "api.")
		}
	}

	return &GitHubProviderRepository{
		token:     token,
		client:    client,
		cloneHost: cloneHost,
	}
}

func (p *GitHubProviderRepository) Name() string { return providerName }

// AuthenticatedUser returns the login owning the token. The first successful
// lookup is cached for the lifetime of the instance.
func (p *GitHubProviderRepository) AuthenticatedUser(ctx context.Context) (string, error) {
	if p.login != "" {
		return p.login, nil
	}

	user, _, err := p.client.Users.Get(ctx, "")
	if err != nil {
		return "", translateError(err, "user", "authenticated user")
	}

	p.login = user.GetLogin()
	return p.login, nil
}

// ListRepositories lists every repository of the authenticated user.
func (p *GitHubProviderRepository) ListRepositories(
	ctx context.Context,
) ([]entities.RemoteRepository, error) {
	var allRepos []entities.RemoteRepository
	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		repos, resp, err := p.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, translateError(err, "repositories", "authenticated user")
		}

		for _, r := range repos {
			allRepos = append(allRepos, toRemoteRepository(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

func (p *GitHubProviderRepository) GetRepository(
	ctx context.Context,
	owner, name string,
) (*entities.RepositoryDetails, error) {
	repo, _, err := p.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, translateError(err, "repository", owner+"/"+name)
	}

	return &entities.RepositoryDetails{
		Repository:  toRemoteRepository(repo),
		Description: repo.GetDescription(),
		Private:     repo.GetPrivate(),
	}, nil
}

// RepositoryExists reports false on 404 and fails on every other error so an
// invalid token is not mistaken for a missing repository.
func (p *GitHubProviderRepository) RepositoryExists(
	ctx context.Context,
	owner, name string,
) (bool, error) {
	_, err := p.GetRepository(ctx, owner, name)
	if err == nil {
		return true, nil
	}

	var notFound *entities.NotFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

func (p *GitHubProviderRepository) CreateRepository(
	ctx context.Context,
	spec entities.RepositorySpec,
) (entities.RepositoryReference, error) {
	repo, _, err := p.client.Repositories.Create(ctx, "", &gh.Repository{
		Name:        gh.String(spec.Name),
		Description: gh.String(spec.Description),
		Private:     gh.Bool(spec.Private),
	})
	if err != nil {
		if isNameTaken(err) {
			return entities.RepositoryReference{}, &entities.AlreadyExistsError{
				Owner: p.login,
				Name:  spec.Name,
			}
		}
		return entities.RepositoryReference{}, translateError(err, "repository", spec.Name)
	}

	return entities.RepositoryReference{
		Owner: repo.GetOwner().GetLogin(),
		Name:  repo.GetName(),
	}, nil
}

func (p *GitHubProviderRepository) DeleteRepository(ctx context.Context, owner, name string) error {
	if _, err := p.client.Repositories.Delete(ctx, owner, name); err != nil {
		return translateError(err, "repository", owner+"/"+name)
	}
	return nil
}

func (p *GitHubProviderRepository) BrowseContents(
	ctx context.Context,
	ref entities.RepositoryReference,
	path string,
) (*entities.Contents, error) {
	path = strings.Trim(path, "/")
	fileContent, dirContent, _, err := p.client.Repositories.GetContents(
		ctx, ref.Owner, ref.Name, path,
		&gh.RepositoryContentGetOptions{Ref: ref.Branch},
	)
	if err != nil {
		target := ref.FullName()
		if path != "" {
			target += "/" + path
		}
		return nil, translateError(err, "path", target)
	}

	if fileContent != nil {
		content, decodeErr := fileContent.GetContent()
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode file content: %w", decodeErr)
		}
		return &entities.Contents{Path: path, IsFile: true, Content: content}, nil
	}

	entries := make([]entities.File, 0, len(dirContent))
	for _, entry := range dirContent {
		entries = append(entries, entities.File{
			Path:     entry.GetPath(),
			ObjectID: entry.GetSHA(),
			IsDir:    entry.GetType() == contentTypeDir,
		})
	}
	return &entities.Contents{Path: path, Entries: entries}, nil
}

func (p *GitHubProviderRepository) CloneURL(ref entities.RepositoryReference) string {
	return fmt.Sprintf(
		"https://x-access-token:%s@%s/%s/%s.git",
		p.token, p.cloneHost, ref.Owner, ref.Name,
	)
}

func toRemoteRepository(r *gh.Repository) entities.RemoteRepository {
	defaultBranch := "main"
	if r.DefaultBranch != nil {
		defaultBranch = *r.DefaultBranch
	}
	return entities.RemoteRepository{
		ID:            strconv.FormatInt(r.GetID(), 10),
		Name:          r.GetName(),
		Organization:  r.GetOwner().GetLogin(),
		DefaultBranch: "refs/heads/" + defaultBranch,
		RemoteURL:     r.GetCloneURL(),
		SSHURL:        r.GetSSHURL(),
		ProviderName:  providerName,
	}
}

// translateError maps go-github failures onto the domain error types.
func translateError(err error, kind, name string) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &entities.RateLimitError{ResetAt: rateErr.Rate.Reset.Time}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Time{}
		if abuseErr.RetryAfter != nil {
			resetAt = time.Now().Add(*abuseErr.RetryAfter)
		}
		return &entities.RateLimitError{ResetAt: resetAt}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized:
			return &entities.AuthError{Reason: "token is invalid or expired"}
		case http.StatusForbidden:
			return &entities.AuthError{Reason: "token lacks the required permission: " + respErr.Message}
		case http.StatusNotFound:
			return &entities.NotFoundError{Kind: kind, Name: name}
		case http.StatusTooManyRequests:
			return &entities.RateLimitError{}
		}
	}

	return fmt.Errorf("github request for %s %q failed: %w", kind, name, err)
}

func isNameTaken(err error) bool {
	var respErr *gh.ErrorResponse
	if !errors.As(err, &respErr) || respErr.Response == nil {
		return false
	}
	if respErr.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	for _, e := range respErr.Errors {
		if strings.Contains(e.Message, "already exists") {
			return true
		}
	}
	return strings.Contains(respErr.Message, "already exists")
}
