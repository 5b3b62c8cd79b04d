package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/bnema/gimme-omni/internal/ports"
)

var ErrSecretRefRequired = errors.New("secret reference is required")

// CredentialService keeps the backend API token in the secret store.
type CredentialService struct {
	store     ports.SecretStore
	secretRef string
}

func NewCredentialService(store ports.SecretStore, secretRef string) *CredentialService {
	return &CredentialService{store: store, secretRef: strings.TrimSpace(secretRef)}
}

func (s *CredentialService) SetToken(ctx context.Context, token string) error {
	if s.secretRef == "" {
		return ErrSecretRefRequired
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}

	if err := s.store.Put(ctx, s.secretRef, token); err != nil {
		return fmt.Errorf("store api token: %w", err)
	}

	return nil
}

func (s *CredentialService) RemoveToken(ctx context.Context) error {
	if s.secretRef == "" {
		return ErrSecretRefRequired
	}

	if err := s.store.Delete(ctx, s.secretRef); err != nil {
		return fmt.Errorf("delete api token: %w", err)
	}

	return nil
}

// Token returns the stored API token, or "" when none has been set.
func (s *CredentialService) Token(ctx context.Context) (string, error) {
	if s.secretRef == "" {
		return "", nil
	}

	token, err := s.store.Get(ctx, s.secretRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load api token: %w", err)
	}

	return strings.TrimSpace(token), nil
}
