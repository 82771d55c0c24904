package actor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/pkg/actor"
	"github.com/blockflowhq/blockflow/pkg/blocks/builtin"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/execplan"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

func newSniperActor(t *testing.T, id uint32, contract tradetypes.Contract, threshold tradetypes.Price) *actor.Actor {
	t.Helper()
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "should_execute", true))

	sniper := builtin.NewSniperPackage(1, "should_execute", builtin.SniperInit{
		Contract:  contract,
		Side:      tradetypes.Buy,
		Quantity:  tradetypes.QuantityFromKw(1),
		Threshold: threshold,
	})

	woven, err := weave.Weave([]weave.Node{sniper}, r)
	require.NoError(t, err)

	return actor.New(id, execplan.New(woven))
}

func TestActorPlaceIntentInstallsNewOrder(t *testing.T) {
	contract := tradetypes.NewContract("X")
	a := newSniperActor(t, 1, contract, tradetypes.PriceFromCents(100))

	ctx := execcontext.NewStaticContext()
	ctx.SetOrderBook(contract, execcontext.StaticOrderBook{Ask: tradetypes.PriceFromCents(100), HasAsk: true})

	ok := a.Tick(ctx)
	require.True(t, ok)

	orders := a.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, actor.NewOrderKind, orders[0].Kind)
	require.Equal(t, contract, orders[0].Contract)
}

func TestActorNoIntentHoldsPreviousOrder(t *testing.T) {
	contract := tradetypes.NewContract("X")
	a := newSniperActor(t, 1, contract, tradetypes.PriceFromCents(100))

	ctx := execcontext.NewStaticContext()
	ctx.SetOrderBook(contract, execcontext.StaticOrderBook{Ask: tradetypes.PriceFromCents(100), HasAsk: true})
	require.True(t, a.Tick(ctx))
	placed := a.Orders()[0]

	ctx.SetOrderBook(contract, execcontext.StaticOrderBook{Ask: tradetypes.PriceFromCents(999), HasAsk: true})
	require.True(t, a.Tick(ctx))
	held := a.Orders()[0]

	require.Equal(t, placed, held)
}

func TestActorIdempotentUnderRepeatedIdenticalIntents(t *testing.T) {
	contract := tradetypes.NewContract("X")
	a := newSniperActor(t, 1, contract, tradetypes.PriceFromCents(100))

	ctx := execcontext.NewStaticContext()
	ctx.SetOrderBook(contract, execcontext.StaticOrderBook{Ask: tradetypes.PriceFromCents(100), HasAsk: true})

	require.True(t, a.Tick(ctx))
	first := a.Orders()[0]
	require.True(t, a.Tick(ctx))
	second := a.Orders()[0]

	require.Equal(t, first, second)
}

func TestActorTickReturnsFalseWhenPlanAborts(t *testing.T) {
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "should_delete", true))

	del := builtin.NewDeletePackage(1, "should_delete")
	woven, err := weave.Weave([]weave.Node{del}, r)
	require.NoError(t, err)

	a := actor.New(1, execplan.New(woven))
	ok := a.Tick(execcontext.NewStaticContext())
	require.False(t, ok)
}

func TestActorContractsDelegatesToPlan(t *testing.T) {
	contract := tradetypes.NewContract("X")
	a := newSniperActor(t, 1, contract, tradetypes.PriceFromCents(100))
	require.Equal(t, []tradetypes.Contract{contract}, a.Contracts())
}
