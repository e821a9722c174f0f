package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

const (
	keyringService = "gitbridge"
	// indexKey holds the JSON list of account names, since keychains cannot
	// be enumerated portably.
	indexKey       = "__accounts__"
	keyringTimeout = 5 * time.Second
)

// KeyringError is a keychain call that failed or timed out.
type KeyringError struct {
	Operation string
	Err       error
}

func (e *KeyringError) Error() string {
	return fmt.Sprintf("keyring %s failed: %v", e.Operation, e.Err)
}

func (e *KeyringError) Unwrap() error {
	return e.Err
}

// KeyringAccountRepository keeps every token in the OS keychain under the
// "gitbridge" service, one entry per account.
type KeyringAccountRepository struct {
	mu      sync.Mutex
	get     func(service, user string) (string, error)
	timeout time.Duration
}

func NewKeyringAccountRepository() repositories.AccountRepository {
	return &KeyringAccountRepository{get: keyring.Get, timeout: keyringTimeout}
}

func (r *KeyringAccountRepository) Save(account entities.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.readIndex()
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == account.Name {
			return &entities.DuplicateAccountError{Name: account.Name}
		}
	}

	if err = withTimeout("set", r.timeout, func() error {
		return keyring.Set(keyringService, accountKey(account.Name), account.Token)
	}); err != nil {
		return err
	}

	if err = r.writeIndex(append(names, account.Name)); err != nil {
		// keep the keychain consistent with the index
		_ = keyring.Delete(keyringService, accountKey(account.Name))
		return err
	}

	logger.Debugf("Saved account %q to the keyring", account.Name)
	return nil
}

func (r *KeyringAccountRepository) Get(name string) (entities.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.read(accountKey(name))
	if errors.Is(err, keyring.ErrNotFound) {
		return entities.Account{}, &entities.NotFoundError{Kind: "account", Name: name}
	}
	if err != nil {
		return entities.Account{}, err
	}

	return entities.Account{Name: name, Token: entities.ResolveToken(token)}, nil
}

func (r *KeyringAccountRepository) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.readIndex()
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) == len(names) {
		return &entities.NotFoundError{Kind: "account", Name: name}
	}

	err = withTimeout("delete", r.timeout, func() error {
		return keyring.Delete(keyringService, accountKey(name))
	})
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}

	if err = r.writeIndex(remaining); err != nil {
		return err
	}

	logger.Debugf("Removed account %q from the keyring", name)
	return nil
}

func (r *KeyringAccountRepository) List() ([]entities.MaskedAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	masked := make([]entities.MaskedAccount, 0, len(names))
	for _, name := range names {
		token, getErr := r.read(accountKey(name))
		if getErr != nil {
			logger.Warnf("Account %q is indexed but has no keyring entry: %v", name, getErr)
		}
		masked = append(masked, entities.Account{Name: name, Token: token}.Masked())
	}
	return masked, nil
}

func (r *KeyringAccountRepository) readIndex() ([]string, error) {
	raw, err := r.read(indexKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	if err = json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, &KeyringError{Operation: "read index", Err: err}
	}
	return names, nil
}

func (r *KeyringAccountRepository) writeIndex(names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return &KeyringError{Operation: "write index", Err: err}
	}
	return withTimeout("set", r.timeout, func() error {
		return keyring.Set(keyringService, indexKey, string(raw))
	})
}

// read fetches one keychain entry within the repository timeout.
func (r *KeyringAccountRepository) read(key string) (string, error) {
	var value string
	err := withTimeout("get", r.timeout, func() error {
		var getErr error
		value, getErr = r.get(keyringService, key)
		return getErr
	})
	return value, err
}

func accountKey(name string) string {
	return "account:" + name
}

// withTimeout bounds a keychain call, which may block on a locked keychain
// or an unresponsive secret service.
func withTimeout(operation string, timeout time.Duration, call func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- call()
	}()

	select {
	case err := <-errCh:
		if err == nil {
			return nil
		}
		if errors.Is(err, keyring.ErrNotFound) {
			return err
		}
		return &KeyringError{Operation: operation, Err: err}
	case <-ctx.Done():
		return &KeyringError{Operation: operation, Err: ctx.Err()}
	}
}
