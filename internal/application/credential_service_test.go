package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/bnema/gimme-omni/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenRef = "tsops://token"

func TestCredentialServiceSetTokenTrimsValue(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Put(mock.Anything, tokenRef, "s3cret").Return(nil).Once()

	service := NewCredentialService(store, tokenRef)
	require.NoError(t, service.SetToken(context.Background(), "  s3cret\n"))
}

func TestCredentialServiceTokenReturnsStoredValue(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mock.Anything, tokenRef).Return("s3cret\n", nil).Once()

	token, err := NewCredentialService(store, tokenRef).Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", token)
}

func TestCredentialServiceTokenMissingIsEmpty(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mock.Anything, tokenRef).
		Return("", fmt.Errorf("secret %q: %w", tokenRef, domain.ErrSecretNotFound)).
		Once()

	token, err := NewCredentialService(store, tokenRef).Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestCredentialServiceRemoveToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Delete(mock.Anything, tokenRef).Return(nil).Once()

	require.NoError(t, NewCredentialService(store, tokenRef).RemoveToken(context.Background()))
}

func TestCredentialServiceRejectsEmptyToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)

	err := NewCredentialService(store, tokenRef).SetToken(context.Background(), "   ")
	assert.ErrorContains(t, err, "token is empty")
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestCredentialServiceWithoutSecretRef(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store, " ")

	token, err := service.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)

	require.ErrorIs(t, service.SetToken(context.Background(), "x"), ErrSecretRefRequired)
	require.ErrorIs(t, service.RemoveToken(context.Background()), ErrSecretRefRequired)
}

func TestCredentialServiceWrapsStoreErrors(t *testing.T) {
	boom := errors.New("gpg agent unavailable")
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mock.Anything, tokenRef).Return("", boom).Once()
	store.EXPECT().Put(mock.Anything, tokenRef, "x").Return(boom).Once()
	store.EXPECT().Delete(mock.Anything, tokenRef).Return(boom).Once()
	service := NewCredentialService(store, tokenRef)

	_, err := service.Token(context.Background())
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "load api token")

	err = service.SetToken(context.Background(), "x")
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "store api token")

	err = service.RemoveToken(context.Background())
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "delete api token")
}
