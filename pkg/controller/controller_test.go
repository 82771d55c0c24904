package controller_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/pkg/actor"
	"github.com/blockflowhq/blockflow/pkg/blocks/builtin"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/controller"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/execplan"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

func newStaticContextFactory() (controller.ContextFactory, *execcontext.StaticContext) {
	ctx := execcontext.NewStaticContext()
	return func(time uint64) execcontext.ExecutionContext {
		ctx.SetTime(time)
		return ctx
	}, ctx
}

func newActorOnContract(t *testing.T, id uint32, shouldDeleteChannel string, contract tradetypes.Contract) *actor.Actor {
	t.Helper()
	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, shouldDeleteChannel, false))

	sniper := builtin.NewSniperPackage(id, shouldDeleteChannel, builtin.SniperInit{
		Contract:  contract,
		Side:      tradetypes.Buy,
		Quantity:  tradetypes.QuantityFromKw(1),
		Threshold: tradetypes.PriceFromCents(100),
	})
	woven, err := weave.Weave([]weave.Node{sniper}, r)
	require.NoError(t, err)

	return actor.New(id, execplan.New(woven))
}

func TestAddActorIndexesByIDAndContract(t *testing.T) {
	factory, _ := newStaticContextFactory()
	c := controller.New(factory)

	a1 := newActorOnContract(t, 1, "a1_exec", tradetypes.NewContract("A"))
	a2 := newActorOnContract(t, 2, "a2_exec", tradetypes.NewContract("A"))

	c.AddActor(controller.NewHandle(a1))
	c.AddActor(controller.NewHandle(a2))

	h1, ok := c.GetActorByID(1)
	require.True(t, ok)
	require.Equal(t, uint32(1), h1.ActorID())

	h2, ok := c.GetActorByID(2)
	require.True(t, ok)
	require.Equal(t, uint32(2), h2.ActorID())
}

func TestRemoveActorByIDClearsBothIndices(t *testing.T) {
	factory, _ := newStaticContextFactory()
	c := controller.New(factory)

	a1 := newActorOnContract(t, 1, "a1_exec", tradetypes.NewContract("A"))
	c.AddActor(controller.NewHandle(a1))

	c.RemoveActorByID(1)

	_, ok := c.GetActorByID(1)
	require.False(t, ok)
}

func TestTickDeltaEvictsActorWhosePlanAborts(t *testing.T) {
	factory, ctx := newStaticContextFactory()
	c := controller.New(factory)

	contractA := tradetypes.NewContract("A")
	ctx.SetOrderBook(contractA, execcontext.StaticOrderBook{Ask: tradetypes.PriceFromCents(50), HasAsk: true})

	r := channels.NewRegistry()
	require.NoError(t, channels.Put(r, "should_execute", false))
	require.NoError(t, channels.Put(r, "should_delete", false))

	sniper := builtin.NewSniperPackage(1, "should_execute", builtin.SniperInit{
		Contract:  contractA,
		Side:      tradetypes.Buy,
		Quantity:  tradetypes.QuantityFromKw(1),
		Threshold: tradetypes.PriceFromCents(100),
	})
	del := builtin.NewDeletePackage(2, "should_delete")

	woven, err := weave.Weave([]weave.Node{sniper, del}, r)
	require.NoError(t, err)
	plan := execplan.New(woven)
	a := actor.New(1, plan)

	handle := controller.NewHandle(a)
	c.AddActor(handle)
	require.Equal(t, []tradetypes.Contract{contractA}, handle.Contracts())

	require.NoError(t, channels.Put(r, "should_delete", true))
	c.TickDelta(controller.Delta{Contract: contractA})

	_, ok := c.GetActorByID(1)
	require.False(t, ok)
}

func TestTickDeltaAdvancesClock(t *testing.T) {
	factory, _ := newStaticContextFactory()
	c := controller.New(factory)
	require.Equal(t, uint64(0), c.Time())

	c.TickDelta(controller.Delta{Contract: tradetypes.NewContract("A")})
	require.Equal(t, uint64(1), c.Time())
}
