package actor

import "github.com/blockflowhq/blockflow/pkg/blocks"

// Reconciler folds a tick's stream of slot intents into the actor's
// per-slot order state, one slot per call to Consume. It pre-allocates its
// Orders vector once to the plan's total intent-slot count and never
// resizes it.
type Reconciler struct {
	orders []Order
	idx    int
}

// NewReconciler creates a Reconciler for a plan producing noIntents slots
// per tick, all starting at NoOrder.
func NewReconciler(noIntents int) *Reconciler {
	return &Reconciler{orders: make([]Order, noIntents)}
}

// Reset rewinds the write index to the start of the Orders vector, ready
// for a new tick's intent stream.
func (r *Reconciler) Reset() {
	r.idx = 0
}

// Orders returns the current per-slot order state, valid after a tick has
// run Consume for every slot.
func (r *Reconciler) Orders() []Order {
	return r.orders
}

// Consume implements execplan.IntentConsumer: it folds one slot intent
// into the order previously held at that slot and advances the write
// index. The transition is the minimal "place replaces, no-intent holds"
// table: NoIntent keeps the previous order unchanged (including Cancel),
// Place always installs a fresh New order.
func (r *Reconciler) Consume(si blocks.SlotIntent) {
	prev := r.orders[r.idx]
	r.orders[r.idx] = processIntent(prev, si.Intent)
	r.idx++
}

func processIntent(prev Order, intent blocks.Intent) Order {
	if intent.Kind == blocks.NoIntentKind {
		return prev
	}
	return Order{
		Kind:     NewOrderKind,
		Contract: intent.Contract,
		Side:     intent.Side,
		Price:    intent.Price,
		Quantity: intent.Quantity,
	}
}
