package chain

import (
	"context"
	"errors"
	"testing"

	passstore "github.com/bnema/bonita-cli/internal/adapters/secrets/pass"
	"github.com/bnema/bonita-cli/internal/domain"
	portmocks "github.com/bnema/bonita-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const devKey = "bonita://dev/password"

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	return NewStore(primary, fallback), primary, fallback
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockSecretStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, devKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), devKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, devKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, devKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), devKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, devKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, devKey).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), devKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreGetKeepsNotFoundWhenNeitherBackendHasKey(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, devKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, devKey).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), devKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Put(mock.Anything, devKey, "bpm").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, devKey, "bpm").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), devKey, "bpm"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Put(mock.Anything, devKey, "bpm").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), devKey, "bpm"))
}

func TestStoreDeleteRemovesFromBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, devKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, devKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), devKey))
}

func TestStoreDeleteToleratesUnavailablePrimary(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, devKey).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, devKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), devKey))
}

func TestStoreDeleteReportsPrimaryFailure(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, devKey).Return(errors.New("gpg locked")).Once()
	fallback.EXPECT().Delete(mock.Anything, devKey).Return(nil).Once()

	err := store.Delete(context.Background(), devKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "gpg locked")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, devKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), devKey)
	require.ErrorIs(t, err, context.Canceled)
}
