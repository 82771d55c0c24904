package weave_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/blocks/builtin"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

func TestWeaveOrdersAfterBeforeDelete(t *testing.T) {
	r := channels.NewRegistry()

	after := builtin.NewAfterPackage(1, "is_after", builtin.AfterInit{Time: 10})
	del := builtin.NewDeletePackage(2, "is_after")

	blks, err := weave.Weave([]weave.Node{del, after}, r)
	require.NoError(t, err)
	require.Len(t, blks, 2)
	require.Equal(t, uint32(1), blks[0].BlockID())
	require.Equal(t, uint32(2), blks[1].BlockID())

	ctx := execcontext.NewStaticContext()
	ctx.SetTime(5)
	for _, b := range blks {
		_, ok := b.Execute(ctx)
		require.True(t, ok)
	}
}

func TestWeaveEvictsDownstreamWhenAfterFires(t *testing.T) {
	r := channels.NewRegistry()

	after := builtin.NewAfterPackage(1, "is_after", builtin.AfterInit{Time: 10})
	del := builtin.NewDeletePackage(2, "is_after")

	blks, err := weave.Weave([]weave.Node{after, del}, r)
	require.NoError(t, err)

	ctx := execcontext.NewStaticContext()
	ctx.SetTime(11)

	_, ok := blks[0].Execute(ctx)
	require.True(t, ok)

	_, ok = blks[1].Execute(ctx)
	require.False(t, ok)
}

func TestWeaveReturnsMissingProducerError(t *testing.T) {
	r := channels.NewRegistry()

	del := builtin.NewDeletePackage(1, "never_produced")

	_, err := weave.Weave([]weave.Node{del}, r)
	require.Error(t, err)
	require.IsType(t, &channels.MissingProducerError{}, err)
}

func TestWeaveReturnsDuplicateOutputKeyError(t *testing.T) {
	r := channels.NewRegistry()

	a := builtin.NewAfterPackage(1, "out", builtin.AfterInit{Time: 1})
	b := builtin.NewAfterPackage(2, "out", builtin.AfterInit{Time: 2})

	_, err := weave.Weave([]weave.Node{a, b}, r)
	require.Error(t, err)
	require.IsType(t, &channels.DuplicateOutputKeyError{}, err)
}

// passthroughSpec copies its bool input to its bool output unchanged. It
// exists only to build a genuine producer/consumer cycle for
// TestWeaveDetectsCycle: none of the built-in block kinds have both a
// non-empty input and a non-empty output of the same type.
type passthroughSpec struct{}

func (passthroughSpec) InitState() struct{}                { return struct{}{} }
func (passthroughSpec) ContractDeps() []tradetypes.Contract { return nil }
func (passthroughSpec) SlotCount() int                      { return 0 }

func (passthroughSpec) Execute(
	_ execcontext.ExecutionContext, in bool, state struct{},
) (bool, struct{}, []blocks.Intent, bool) {
	return in, state, nil, true
}

func newPassthroughPackage(blockID uint32, in, out string) *blocks.Package[bool, bool, struct{}, struct{}] {
	return &blocks.Package[bool, bool, struct{}, struct{}]{
		BlockID:    blockID,
		InputKeys:  channels.InputKey[bool]{Channel: in},
		OutputKeys: channels.OutputKey[bool]{Channel: out},
		New: func(struct{}) blocks.Spec[bool, bool, struct{}] {
			return passthroughSpec{}
		},
	}
}

func TestWeaveDetectsCycle(t *testing.T) {
	r := channels.NewRegistry()

	a := newPassthroughPackage(1, "ch_b", "ch_a")
	b := newPassthroughPackage(2, "ch_a", "ch_b")

	_, err := weave.Weave([]weave.Node{a, b}, r)
	require.Error(t, err)
	require.IsType(t, &channels.CycleDetectedError{}, err)
}

func TestWeaveIsStableAcrossRuns(t *testing.T) {
	build := func() []weave.Node {
		return []weave.Node{
			builtin.NewDeletePackage(3, "ch_b"),
			builtin.NewAfterPackage(1, "ch_a", builtin.AfterInit{Time: 1}),
			builtin.NewDeletePackage(2, "ch_a"),
		}
	}

	var firstOrder []uint32
	for run := 0; run < 5; run++ {
		r := channels.NewRegistry()
		require.NoError(t, channels.Put(r, "ch_b", false))

		blks, err := weave.Weave(build(), r)
		require.NoError(t, err)

		order := make([]uint32, len(blks))
		for i, b := range blks {
			order[i] = b.BlockID()
		}
		if firstOrder == nil {
			firstOrder = order
		} else {
			require.Equal(t, firstOrder, order)
		}
	}
}
