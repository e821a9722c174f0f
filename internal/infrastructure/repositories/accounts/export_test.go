package accounts

import (
	"time"

	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// NewKeyringAccountRepositoryWithReader reads entries through get and bounds
// every keychain call by timeout.
func NewKeyringAccountRepositoryWithReader(
	get func(service, user string) (string, error),
	timeout time.Duration,
) repositories.AccountRepository {
	return &KeyringAccountRepository{get: get, timeout: timeout}
}
