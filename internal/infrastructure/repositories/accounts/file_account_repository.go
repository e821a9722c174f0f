package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// accountsFile is the on-disk layout: {"accounts": {"<name>": "<token>"}}.
type accountsFile struct {
	Accounts map[string]string `json:"accounts"`
}

// FileAccountRepository keeps accounts in a single JSON file. Every mutation
// rewrites the whole file through a temporary file and an atomic rename.
type FileAccountRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileAccountRepository creates a store backed by the file at path. The
// file does not need to exist yet.
func NewFileAccountRepository(path string) repositories.AccountRepository {
	return &FileAccountRepository{path: path}
}

func (r *FileAccountRepository) Save(account entities.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return err
	}
	if _, exists := data.Accounts[account.Name]; exists {
		return &entities.DuplicateAccountError{Name: account.Name}
	}

	data.Accounts[account.Name] = account.Token
	if err = r.store(data); err != nil {
		return err
	}

	logger.Debugf("Saved account %q to %s", account.Name, r.path)
	return nil
}

// Get returns the account with its token resolved: ${ENV} references are
// expanded and token file paths are read.
func (r *FileAccountRepository) Get(name string) (entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return entities.Account{}, err
	}
	token, exists := data.Accounts[name]
	if !exists {
		return entities.Account{}, &entities.NotFoundError{Kind: "account", Name: name}
	}

	return entities.Account{Name: name, Token: entities.ResolveToken(token)}, nil
}

func (r *FileAccountRepository) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return err
	}
	if _, exists := data.Accounts[name]; !exists {
		return &entities.NotFoundError{Kind: "account", Name: name}
	}

	delete(data.Accounts, name)
	if err = r.store(data); err != nil {
		return err
	}

	logger.Debugf("Removed account %q from %s", name, r.path)
	return nil
}

// List masks the stored value, so an ${ENV} reference is masked as written.
func (r *FileAccountRepository) List() ([]entities.MaskedAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(data.Accounts))
	for name := range data.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	masked := make([]entities.MaskedAccount, 0, len(names))
	for _, name := range names {
		account := entities.Account{Name: name, Token: data.Accounts[name]}
		masked = append(masked, account.Masked())
	}
	return masked, nil
}

// load reads the file. A missing file is an empty store, invalid JSON is a
// configuration error.
func (r *FileAccountRepository) load() (*accountsFile, error) {
	content, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &accountsFile{Accounts: map[string]string{}}, nil
	}
	if err != nil {
		return nil, &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to read accounts file: %w", err)}
	}

	var data accountsFile
	if err = json.Unmarshal(content, &data); err != nil {
		return nil, &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to parse accounts file: %w", err)}
	}
	if data.Accounts == nil {
		data.Accounts = map[string]string{}
	}
	return &data, nil
}

func (r *FileAccountRepository) store(data *accountsFile) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err = os.MkdirAll(dir, dirMode); err != nil {
		return &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to create config directory: %w", err)}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to create temporary file: %w", err)}
	}
	tmpPath := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpPath)
	}()

	if _, err = tmp.Write(append(content, '\n')); err != nil {
		_ = tmp.Close()
		return &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to write accounts: %w", err)}
	}
	if err = tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to set file mode: %w", err)}
	}
	if err = tmp.Close(); err != nil {
		return &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to write accounts: %w", err)}
	}
	if err = os.Rename(tmpPath, r.path); err != nil {
		return &entities.ConfigError{Path: r.path, Err: fmt.Errorf("failed to replace accounts file: %w", err)}
	}
	return nil
}
