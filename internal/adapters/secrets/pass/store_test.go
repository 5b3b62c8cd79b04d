package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", "gimme-omni/tsops/token"}, args)
			assert.Equal(t, "bearer-123\n", input)
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), "tsops://token", "bearer-123"))
	assert.True(t, called)
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "gimme-omni/tsops/token"}, args)
			assert.Empty(t, input)
			return "bearer-123\r\nuser: achulock\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "tsops://token")
	require.NoError(t, err)
	assert.Equal(t, "bearer-123", value)
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: gimme-omni/tsops/token is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "tsops://token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteUsesPassRemove(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "gimme-omni/tsops/token"}, args)
			return "", "", nil
		},
	}

	require.NoError(t, store.Delete(context.Background(), "tsops://token"))
}

func TestStoreDeleteMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: gimme-omni/tsops/token is not in the password store.", errors.New("exit status 1")
		},
	}

	err := store.Delete(context.Background(), "tsops://token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "tsops://token")
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "gimme-omni/tsops/token")
	assert.ErrorContains(t, err, "No secret key")
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreRejectsInvalidReferenceWithoutRunningPass(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			t.Fatal("pass must not run for an invalid reference")
			return "", "", nil
		},
	}

	assert.Error(t, store.Put(context.Background(), "", "x"))
}
