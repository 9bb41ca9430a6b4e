package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cos-wallet/mylog"
	"github.com/coschain/cos-wallet/prompt/mock"
	"github.com/coschain/cos-wallet/unlock"
	"github.com/coschain/cos-wallet/wallet"
	"github.com/coschain/cos-wallet/wallet/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callbacks struct {
	success int
	closed  int
}

func (c *callbacks) open(coord *unlock.Coordinator, backend Unlocker) (*Prompt, error) {
	return Open(coord, backend, func() { c.success++ }, func() { c.closed++ })
}

func newCoordinator(backend unlock.Locker) *unlock.Coordinator {
	return unlock.NewCoordinator(backend, EventBus.New(), mylog.Discard())
}

func TestUnlockEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	gomock.InOrder(
		backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "acct-1", "wrong").Return(wallet.ErrWrongPassword),
		backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "acct-1", "right").Return(nil),
	)
	coord := newCoordinator(backend)
	ctx := context.Background()

	pending := coord.RequestUnlock("acct-1")
	assert.True(t, coord.IsUnlockModalOpen())
	assert.Equal(t, "acct-1", coord.AccountIDToUnlock())

	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", p.AccountID())

	assert.Equal(t, wallet.ErrWrongPassword, p.Submit(ctx, "wrong"))
	assert.Equal(t, wallet.ErrWrongPassword, p.Err())
	assert.True(t, coord.IsUnlockModalOpen())
	assert.Equal(t, "acct-1", coord.AccountIDToUnlock())
	assert.False(t, p.Finished())
	assert.Equal(t, 0, cb.success)

	require.NoError(t, p.Submit(ctx, "right"))
	assert.Equal(t, unlock.Idle, coord.State())
	assert.Equal(t, "", coord.AccountIDToUnlock())
	assert.NoError(t, p.Err())
	assert.Equal(t, 1, cb.success)
	assert.Equal(t, 0, cb.closed)
	assert.NoError(t, pending.Wait(ctx))

	// nothing fires after the prompt finished
	p.Close()
	assert.Equal(t, ErrPromptClosed, p.Submit(ctx, "right"))
	assert.Equal(t, 1, cb.success)
	assert.Equal(t, 0, cb.closed)
}

func TestOpenWithoutSession(t *testing.T) {
	_, err := Open(newCoordinator(nil), nil, nil, nil)
	assert.Equal(t, ErrNoSession, err)
}

func TestClose(t *testing.T) {
	coord := newCoordinator(nil)
	pending := coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, nil)
	require.NoError(t, err)

	p.Close()
	p.Close()
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, 0, cb.success)
	assert.Equal(t, unlock.Idle, coord.State())
	assert.Equal(t, unlock.ErrUnlockCancelled, pending.Err())
	assert.True(t, p.Finished())
}

func TestCloseLeavesNewerSession(t *testing.T) {
	coord := newCoordinator(nil)
	coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, nil)
	require.NoError(t, err)

	coord.Cancel()
	coord.RequestUnlock("b")
	p.Close()
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, "b", coord.AccountIDToUnlock())
}

func TestLateUnlockAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	started := make(chan struct{})
	release := make(chan struct{})
	backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "a", "secret").DoAndReturn(
		func(ctx context.Context, id, password string) error {
			close(started)
			<-release
			return nil
		})
	backend.EXPECT().LockAccountSourceOrAccount(gomock.Any(), "a").Return(nil)

	coord := newCoordinator(backend)
	first := coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)

	result := make(chan error, 1)
	go func() { result <- p.Submit(context.Background(), "secret") }()
	<-started
	coord.Cancel()
	second := coord.RequestUnlock("b")
	close(release)

	assert.Equal(t, ErrStaleSession, <-result)
	assert.Equal(t, 0, cb.success)
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, "b", coord.AccountIDToUnlock())
	assert.Equal(t, unlock.ErrUnlockCancelled, first.Err())
	assert.NoError(t, second.Err())
}

func TestCloseWhileSubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	started := make(chan struct{})
	release := make(chan struct{})
	backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "a", "secret").DoAndReturn(
		func(ctx context.Context, id, password string) error {
			close(started)
			<-release
			return nil
		})
	backend.EXPECT().LockAccountSourceOrAccount(gomock.Any(), "a").Return(nil)

	coord := newCoordinator(backend)
	coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)

	result := make(chan error, 1)
	go func() { result <- p.Submit(context.Background(), "secret") }()
	<-started
	assert.Equal(t, ErrSubmitInFlight, p.Submit(context.Background(), "secret"))
	p.Close()
	close(release)

	assert.Equal(t, ErrStaleSession, <-result)
	assert.Equal(t, 0, cb.success)
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, unlock.Idle, coord.State())
}

func TestSubmitAfterDismiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// no backend call is expected
	backend := mock_wallet.NewMockBackend(ctrl)

	coord := newCoordinator(backend)
	pending := coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)
	assert.False(t, p.Dismissed())

	coord.HideUnlockModal()
	assert.True(t, p.Dismissed())
	assert.Equal(t, ErrStaleSession, p.Submit(context.Background(), "secret"))
	assert.True(t, p.Finished())
	assert.Equal(t, 0, cb.success)
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, unlock.ErrUnlockCancelled, pending.Err())

	p.Close()
	assert.Equal(t, ErrPromptClosed, p.Submit(context.Background(), "secret"))
	assert.Equal(t, 1, cb.closed)
}

func TestSubmitAfterNewerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)

	coord := newCoordinator(backend)
	coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)

	coord.Cancel()
	coord.RequestUnlock("a")
	assert.Equal(t, ErrStaleSession, p.Submit(context.Background(), "secret"))
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, "a", coord.AccountIDToUnlock())
}

func TestRunStopsAfterDismiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	reader := mock_prompt.NewMockPasswordReader(ctrl)

	coord := newCoordinator(backend)
	coord.RequestUnlock("a")
	gomock.InOrder(
		reader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("bad"), nil),
		backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "a", "bad").DoAndReturn(
			func(ctx context.Context, id, password string) error {
				coord.HideUnlockModal()
				return wallet.ErrWrongPassword
			}),
	)
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)

	var out bytes.Buffer
	assert.Equal(t, ErrStaleSession, p.Run(context.Background(), reader, &out, 0))
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, 0, cb.success)
	assert.Equal(t, 1, strings.Count(out.String(), "Enter passphrase"))
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	reader := mock_prompt.NewMockPasswordReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("bad"), nil),
		backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "a", "bad").Return(wallet.ErrWrongPassword),
		reader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("good\n"), nil),
		backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "a", "good").Return(nil),
	)

	coord := newCoordinator(backend)
	pending := coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, p.Run(context.Background(), reader, &out, 3))
	assert.Contains(t, out.String(), "Enter passphrase for a > ")
	assert.Contains(t, out.String(), "error: wrong password")
	assert.Contains(t, out.String(), "unlock account a success")
	assert.Equal(t, 1, cb.success)
	assert.NoError(t, pending.Err())
}

func TestRunGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	reader := mock_prompt.NewMockPasswordReader(ctrl)
	reader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("bad"), nil).Times(2)
	backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "a", "bad").Return(wallet.ErrWrongPassword).Times(2)

	coord := newCoordinator(backend)
	pending := coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, backend)
	require.NoError(t, err)

	assert.Equal(t, wallet.ErrWrongPassword, p.Run(context.Background(), reader, &bytes.Buffer{}, 2))
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, unlock.Idle, coord.State())
	assert.Equal(t, unlock.ErrUnlockCancelled, pending.Err())
}

func TestRunReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reader := mock_prompt.NewMockPasswordReader(ctrl)
	eof := errors.New("EOF")
	reader.EXPECT().ReadPassword(gomock.Any()).Return(nil, eof)

	coord := newCoordinator(nil)
	coord.RequestUnlock("a")
	cb := &callbacks{}
	p, err := cb.open(coord, nil)
	require.NoError(t, err)

	assert.Equal(t, eof, p.Run(context.Background(), reader, &bytes.Buffer{}, 0))
	assert.Equal(t, 1, cb.closed)
	assert.Equal(t, unlock.Idle, coord.State())
}

func TestHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	reader := mock_prompt.NewMockPasswordReader(ctrl)
	reader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("123456"), nil)
	backend.EXPECT().UnlockAccountSourceOrAccount(gomock.Any(), "acct-1", "123456").Return(nil)

	bus := EventBus.New()
	coord := unlock.NewCoordinator(backend, bus, mylog.Discard())
	var out bytes.Buffer
	host := NewHost(coord, backend, reader, &out, 3, mylog.Discard())
	require.NoError(t, host.Attach(bus))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, coord.RequestUnlock("acct-1").Wait(ctx))
	host.Wait()
	require.NoError(t, host.Detach())

	assert.Equal(t, unlock.Idle, coord.State())
	assert.Contains(t, out.String(), "unlock account acct-1 success")

	// no prompt once detached
	coord.RequestUnlock("acct-2")
	host.Wait()
	assert.Equal(t, "acct-2", coord.AccountIDToUnlock())
}
