package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// doublerSpec doubles its input field and counts how many times it has run.
type doublerSpec struct{}

func (doublerSpec) InitState() int                        { return 0 }
func (doublerSpec) ContractDeps() []tradetypes.Contract    { return nil }
func (doublerSpec) SlotCount() int                         { return 0 }

func (doublerSpec) Execute(_ execcontext.ExecutionContext, input int, state int) (int, int, []Intent, bool) {
	return input * 2, state + 1, nil, true
}

func newDoublerPackage(blockID uint32, in, out string) *Package[int, int, int, struct{}] {
	return &Package[int, int, int, struct{}]{
		BlockID:    blockID,
		InputKeys:  channels.InputKey[int]{Channel: in},
		OutputKeys: channels.OutputKey[int]{Channel: out},
		InitParams: struct{}{},
		New: func(struct{}) Spec[int, int, int] {
			return doublerSpec{}
		},
	}
}

func TestWeaveInitializesState(t *testing.T) {
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "in", 0))

	pkg := newDoublerPackage(77, "in", "out")
	emb, err := pkg.Weave(r)
	require.NoError(t, err)
	require.Equal(t, uint32(77), emb.BlockID())
}

func TestExecuteWritesOutputAndReturnsIntents(t *testing.T) {
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "in", 10))

	pkg := newDoublerPackage(1, "in", "out")
	emb, err := pkg.Weave(r)
	require.NoError(t, err)

	ctx := execcontext.NewStaticContext()
	intents, ok := emb.Execute(ctx)
	require.True(t, ok)
	require.Empty(t, intents)

	out, err := channels.Get[int](r, "out")
	require.NoError(t, err)
	require.Equal(t, 20, *out)
}

func TestStateIsUpdatedAcrossExecutes(t *testing.T) {
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "in", 4))

	pkg := newDoublerPackage(1, "in", "out")
	emb, err := pkg.Weave(r)
	require.NoError(t, err)

	ctx := execcontext.NewStaticContext()
	_, ok := emb.Execute(ctx)
	require.True(t, ok)
	_, ok = emb.Execute(ctx)
	require.True(t, ok)

	extracted := emb.ExtractPackage()
	require.Equal(t, 2, *extracted.State)
}

func TestWeaveReturnsErrorWhenInputChannelMissing(t *testing.T) {
	r := channels.NewRegistry()

	pkg := newDoublerPackage(1, "missing_input", "out")
	_, err := pkg.Weave(r)
	require.Error(t, err)
}

// abortingSpec always signals it cannot execute.
type abortingSpec struct{}

func (abortingSpec) InitState() struct{}                { return struct{}{} }
func (abortingSpec) ContractDeps() []tradetypes.Contract { return nil }
func (abortingSpec) SlotCount() int                      { return 0 }

func (abortingSpec) Execute(_ execcontext.ExecutionContext, _ struct{}, _ struct{}) (struct{}, struct{}, []Intent, bool) {
	return struct{}{}, struct{}{}, nil, false
}

func TestExecuteNoneLeavesStateAndOutputUntouched(t *testing.T) {
	r := channels.NewRegistry()

	pkg := &Package[struct{}, struct{}, struct{}, struct{}]{
		BlockID:    5,
		InputKeys:  channels.EmptyInputKeys{},
		OutputKeys: channels.EmptyOutputKeys{},
		New: func(struct{}) Spec[struct{}, struct{}, struct{}] {
			return abortingSpec{}
		},
	}
	emb, err := pkg.Weave(r)
	require.NoError(t, err)

	intents, ok := emb.Execute(execcontext.NewStaticContext())
	require.False(t, ok)
	require.Nil(t, intents)
}
