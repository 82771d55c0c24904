package blocks

// SlotID identifies one intent slot within a woven plan: a block id plus a
// positional slot index, stable within that block's kind.
type SlotID struct {
	BlockID   uint32
	SlotIndex int
}

// SlotIntent pairs a SlotID with the intent produced for it on one tick.
type SlotIntent struct {
	SlotID SlotID
	Intent Intent
}

// toSlotIntents tags each intent in order with the producing block's id and
// its positional slot index, preserving slot order.
func toSlotIntents(blockID uint32, intents []Intent) []SlotIntent {
	out := make([]SlotIntent, len(intents))
	for i, intent := range intents {
		out[i] = SlotIntent{SlotID: SlotID{BlockID: blockID, SlotIndex: i}, Intent: intent}
	}
	return out
}
