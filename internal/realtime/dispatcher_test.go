package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotify_NoListeners(t *testing.T) {
	d := NewDispatcher(NewRegistry(), nil)
	require.False(t, d.Notify("acct1", "hire", map[string]string{"postingId": "g1"}))
}

func TestNotify_EmptyAccountID(t *testing.T) {
	d := NewDispatcher(NewRegistry(), nil)
	require.False(t, d.Notify("", "hire", nil))
}

func TestNotify_DeliversToAllConns(t *testing.T) {
	r := NewRegistry()
	h1 := &fakeConn{}
	h2 := &fakeConn{}
	r.Register("acct1", h1)
	r.Register("acct1", h2)

	d := NewDispatcher(r, nil)
	require.True(t, d.Notify("acct1", "hire", map[string]string{"postingId": "g1"}))
	require.Equal(t, []string{"hire"}, h1.received())
	require.Equal(t, []string{"hire"}, h2.received())
}

func TestNotify_FailedPushDoesNotStopOthers(t *testing.T) {
	r := NewRegistry()
	dead := &fakeConn{fail: true}
	live := &fakeConn{}
	r.Register("acct1", dead)
	r.Register("acct1", live)

	d := NewDispatcher(r, nil)
	require.True(t, d.Notify("acct1", "hire", nil))
	require.Equal(t, []string{"hire"}, live.received())
}

func TestNotify_DoesNotCrossAccounts(t *testing.T) {
	r := NewRegistry()
	mine := &fakeConn{}
	theirs := &fakeConn{}
	r.Register("acct1", mine)
	r.Register("acct2", theirs)

	d := NewDispatcher(r, nil)
	require.True(t, d.Notify("acct1", "hire", nil))
	require.Empty(t, theirs.received())
}
