package unlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cos-wallet/common/constants"
	"github.com/coschain/cos-wallet/mylog"
	"github.com/coschain/cos-wallet/wallet/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sessions []Session
	toasts   []Toast
}

func newTestCoordinator(t *testing.T, locker Locker) (*Coordinator, *recorder) {
	bus := EventBus.New()
	rec := &recorder{}
	require.NoError(t, bus.Subscribe(constants.NoticeUnlockPrompt, func(s Session) {
		rec.sessions = append(rec.sessions, s)
	}))
	require.NoError(t, bus.Subscribe(constants.NoticeToast, func(toast Toast) {
		rec.toasts = append(rec.toasts, toast)
	}))
	return NewCoordinator(locker, bus, mylog.Discard()), rec
}

func assertIdle(t *testing.T, c *Coordinator) {
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.IsUnlockModalOpen())
	assert.Equal(t, "", c.AccountIDToUnlock())
	_, ok := c.Session()
	assert.False(t, ok)
}

func assertOpen(t *testing.T, c *Coordinator, id string) {
	assert.Equal(t, PromptOpen, c.State())
	assert.True(t, c.IsUnlockModalOpen())
	assert.Equal(t, id, c.AccountIDToUnlock())
	s, ok := c.Session()
	assert.True(t, ok)
	assert.Equal(t, id, s.AccountID)
}

func TestRequestUnlockOpensPrompt(t *testing.T) {
	c, rec := newTestCoordinator(t, nil)
	assertIdle(t, c)

	p := c.RequestUnlock("acct-1")
	assertOpen(t, c, "acct-1")
	assert.Equal(t, "acct-1", p.AccountID())
	assert.NoError(t, p.Err())
	require.Len(t, rec.sessions, 1)
	assert.Equal(t, Session{AccountID: "acct-1", Generation: 1}, rec.sessions[0])
	select {
	case <-p.Done():
		t.Fatal("request completed early")
	default:
	}
}

func TestSecondRequestDropped(t *testing.T) {
	c, rec := newTestCoordinator(t, nil)
	first := c.RequestUnlock("a")
	second := c.RequestUnlock("b")

	assertOpen(t, c, "a")
	assert.Equal(t, ErrPromptBusy, second.Err())
	assert.Equal(t, "b", second.AccountID())
	assert.NoError(t, first.Err())
	assert.Len(t, rec.sessions, 1)

	again := c.RequestUnlock("a")
	assert.True(t, first == again)
	assert.Len(t, rec.sessions, 1)
}

func TestCancelResetsState(t *testing.T) {
	c, rec := newTestCoordinator(t, nil)
	first := c.RequestUnlock("a")
	c.Cancel()
	assertIdle(t, c)
	assert.Equal(t, ErrUnlockCancelled, first.Err())

	second := c.RequestUnlock("a")
	assertOpen(t, c, "a")
	assert.NoError(t, second.Err())
	require.Len(t, rec.sessions, 2)
	assert.Equal(t, uint64(2), rec.sessions[1].Generation)
}

func TestCancelWhenIdle(t *testing.T) {
	c, rec := newTestCoordinator(t, nil)
	c.Cancel()
	c.HideUnlockModal()
	assertIdle(t, c)
	assert.Empty(t, rec.sessions)
	assert.Empty(t, rec.toasts)
	assert.False(t, c.CancelSession(0))
}

func TestResolve(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	p := c.RequestUnlock("a")
	s, _ := c.Session()

	assert.False(t, c.Resolve(s.Generation+1))
	assertOpen(t, c, "a")

	assert.True(t, c.Resolve(s.Generation))
	assertIdle(t, c)
	require.NoError(t, p.Wait(context.Background()))
	assert.False(t, c.Resolve(s.Generation))
}

func TestStaleResolveDiscarded(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	first := c.RequestUnlock("a")
	stale, _ := c.Session()
	c.Cancel()
	second := c.RequestUnlock("b")

	assert.False(t, c.Resolve(stale.Generation))
	assert.False(t, c.CancelSession(stale.Generation))
	assertOpen(t, c, "b")
	assert.Equal(t, ErrUnlockCancelled, first.Err())
	assert.NoError(t, second.Err())

	current, _ := c.Session()
	assert.True(t, c.CancelSession(current.Generation))
	assertIdle(t, c)
	assert.Equal(t, ErrUnlockCancelled, second.Err())
}

func TestRequestUnlockEmptyID(t *testing.T) {
	c, rec := newTestCoordinator(t, nil)
	p := c.RequestUnlock("")
	assert.Equal(t, ErrNoAccountID, p.Err())
	assertIdle(t, c)
	assert.Empty(t, rec.sessions)
}

func TestUnlockAccountAlias(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	c.UnlockAccount("a")
	assertOpen(t, c, "a")
	c.HideUnlockModal()
	assertIdle(t, c)
}

func TestPendingWaitContext(t *testing.T) {
	c, _ := newTestCoordinator(t, nil)
	p := c.RequestUnlock("a")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Equal(t, context.DeadlineExceeded, p.Wait(ctx))
	assertOpen(t, c, "a")
}

func TestLockAccountSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	backend.EXPECT().LockAccountSourceOrAccount(gomock.Any(), "x").Return(nil)

	c, rec := newTestCoordinator(t, backend)
	c.LockAccount(context.Background(), "x")
	assert.Equal(t, []Toast{{Kind: ToastSuccess, Message: "Account locked"}}, rec.toasts)
	assertIdle(t, c)
}

func TestLockAccountKeepsPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	backend.EXPECT().LockAccountSourceOrAccount(gomock.Any(), "x").Return(nil)

	c, rec := newTestCoordinator(t, backend)
	c.RequestUnlock("a")
	c.LockAccount(context.Background(), "x")
	assertOpen(t, c, "a")
	assert.Len(t, rec.toasts, 1)
	assert.Len(t, rec.sessions, 1)
}

func TestLockAccountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_wallet.NewMockBackend(ctrl)
	gomock.InOrder(
		backend.EXPECT().LockAccountSourceOrAccount(gomock.Any(), "x").Return(errors.New("network down")),
		backend.EXPECT().LockAccountSourceOrAccount(gomock.Any(), "x").Return(errors.New("")),
	)

	c, rec := newTestCoordinator(t, backend)
	c.LockAccount(context.Background(), "x")
	require.Len(t, rec.toasts, 1)
	assert.Equal(t, Toast{Kind: ToastError, Message: "network down"}, rec.toasts[0])

	c.LockAccount(context.Background(), "x")
	require.Len(t, rec.toasts, 2)
	assert.Equal(t, Toast{Kind: ToastError, Message: "Failed to lock account"}, rec.toasts[1])
	assertIdle(t, c)
}

func TestToastKindString(t *testing.T) {
	assert.Equal(t, "success", ToastSuccess.String())
	assert.Equal(t, "error", ToastError.String())
	assert.Equal(t, "PromptOpen", PromptOpen.String())
	assert.Equal(t, "Idle", Idle.String())
}
