package epoch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreflowdata/epochcore/model/epoch"
)

func TestNodeHandle_EqualityIgnoresConstructionPath(t *testing.T) {
	a := epoch.NewNodeHandle(3, true, "source")
	b := epoch.NewNodeHandle(3, true, "source")
	require.Equal(t, a, b)

	c := epoch.NewNamedNodeHandle("source")
	require.NotEqual(t, a, c) // c has no index set
}

func TestNodeHandle_UsableAsMapKey(t *testing.T) {
	m := map[epoch.NodeHandle]int{}
	h := epoch.NewNamedNodeHandle("a")
	m[h] = 1
	require.Equal(t, 1, m[epoch.NewNamedNodeHandle("a")])
}

func TestSourceState_IsRestartable(t *testing.T) {
	require.True(t, epoch.NotStarted().IsRestartable())
	require.True(t, epoch.Restartable([]byte("x")).IsRestartable())
	require.False(t, epoch.NonRestartable().IsRestartable())
}

func TestSourceStates_IsRestartable(t *testing.T) {
	states := epoch.NewSourceStates()
	states.Insert(epoch.NewNamedNodeHandle("a"), epoch.NotStarted())
	states.Insert(epoch.NewNamedNodeHandle("b"), epoch.Restartable([]byte("tok")))
	require.True(t, states.IsRestartable())

	states.Insert(epoch.NewNamedNodeHandle("c"), epoch.NonRestartable())
	require.False(t, states.IsRestartable())
}

func TestSourceStates_GetAndLen(t *testing.T) {
	states := epoch.NewSourceStates()
	require.Equal(t, 0, states.Len())

	handle := epoch.NewNamedNodeHandle("a")
	states.Insert(handle, epoch.NotStarted())
	require.Equal(t, 1, states.Len())

	got, ok := states.Get(handle)
	require.True(t, ok)
	require.Equal(t, epoch.NotStarted(), got)

	_, ok = states.Get(epoch.NewNamedNodeHandle("missing"))
	require.False(t, ok)
}

func TestAction_ShouldCommitAndShouldPersist(t *testing.T) {
	require.False(t, epoch.ActionNothing.ShouldCommit())
	require.False(t, epoch.ActionNothing.ShouldPersist())

	require.True(t, epoch.ActionCommit.ShouldCommit())
	require.False(t, epoch.ActionCommit.ShouldPersist())

	require.True(t, epoch.ActionCommitAndPersist.ShouldCommit())
	require.True(t, epoch.ActionCommitAndPersist.ShouldPersist())
}
