package controller

import (
	"github.com/google/uuid"

	"github.com/blockflowhq/blockflow/pkg/actor"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// Handle is a shared reference to an actor plus an identity token. The
// source carries an `Rc<RefCell<dyn ActorTrait>>` and uses `Rc::ptr_eq` to
// recognize "the same actor" across the controller's two indices; Go has
// no equivalent for values that might cross an interface boundary, so a
// Handle instead carries an explicit uuid identity, minted once at
// construction and compared by value.
type Handle struct {
	id *actor.Actor

	identity uuid.UUID
}

// NewHandle wraps a as a Handle with a freshly minted identity.
func NewHandle(a *actor.Actor) Handle {
	return Handle{id: a, identity: uuid.New()}
}

// ActorID returns the wrapped actor's id.
func (h Handle) ActorID() uint32 {
	return h.id.ActorID()
}

// Contracts returns the wrapped actor's contract dependencies.
func (h Handle) Contracts() []tradetypes.Contract {
	return h.id.Contracts()
}

// Tick runs one tick of the wrapped actor.
func (h Handle) Tick(ctx execcontext.ExecutionContext) bool {
	return h.id.Tick(ctx)
}

// Orders returns the wrapped actor's per-slot order state as of its last tick.
func (h Handle) Orders() []actor.Order {
	return h.id.Orders()
}

// Same reports whether h and other refer to the same underlying actor.
func (h Handle) Same(other Handle) bool {
	return h.identity == other.identity
}
