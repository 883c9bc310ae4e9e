package ports

import "context"

// SecretStore holds profile passwords keyed by references such as
// bonita://dev/password. Get wraps domain.ErrSecretNotFound when the key has
// no value; Delete of a missing key is not an error.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
