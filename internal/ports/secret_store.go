package ports

import "context"

// SecretStore keeps credentials addressed by secret references such as
// tsops://token. Get on an unknown key returns an error wrapping
// domain.ErrSecretNotFound.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
