package execplan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/blocks/builtin"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/execplan"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

func TestPlanExecutesMembersInOrderAndCollectsIntents(t *testing.T) {
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "should_execute", true))

	contract := tradetypes.NewContract("X")
	sniper := builtin.NewSniperPackage(1, "should_execute", builtin.SniperInit{
		Contract:  contract,
		Side:      tradetypes.Buy,
		Quantity:  tradetypes.QuantityFromKw(1),
		Threshold: tradetypes.PriceFromCents(100),
	})

	woven, err := weave.Weave([]weave.Node{sniper}, r)
	require.NoError(t, err)

	plan := execplan.New(woven)

	ctx := execcontext.NewStaticContext()
	ctx.SetOrderBook(contract, execcontext.StaticOrderBook{
		Ask: tradetypes.PriceFromCents(100), HasAsk: true,
	})

	var collected []blocks.SlotIntent
	ok := plan.Execute(ctx, func(si blocks.SlotIntent) {
		collected = append(collected, si)
	})
	require.True(t, ok)
	require.Len(t, collected, 1)
	require.Equal(t, blocks.PlaceKind, collected[0].Intent.Kind)
}

func TestPlanAbortsOnFirstFailingMember(t *testing.T) {
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "should_delete", true))

	del := builtin.NewDeletePackage(1, "should_delete")
	after := builtin.NewAfterPackage(2, "never_read", builtin.AfterInit{Time: 0})

	woven, err := weave.Weave([]weave.Node{del, after}, r)
	require.NoError(t, err)

	plan := execplan.New(woven)

	var calls int
	ok := plan.Execute(execcontext.NewStaticContext(), func(blocks.SlotIntent) {
		calls++
	})
	require.False(t, ok)
	require.Zero(t, calls)
}
