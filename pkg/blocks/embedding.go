package blocks

import (
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// Embedding is the woven, runnable form of one block: a Spec bound to a
// concrete reader, writer, and owned state cell. It implements Block so a
// plan can hold a heterogeneous sequence of embeddings.
type Embedding[In, Out, State, Init any] struct {
	blockID uint32
	spec    Spec[In, Out, State]
	reader  channels.Reader[In]
	writer  channels.Writer[Out]
	state   State

	inputKeys         channels.InputKeys[In]
	outputKeys        channels.OutputKeys[Out]
	initParams        Init
	newFromInitParams func(Init) Spec[In, Out, State]
}

// BlockID implements Block.
func (e *Embedding[In, Out, State, Init]) BlockID() uint32 {
	return e.blockID
}

// ContractDeps implements Block.
func (e *Embedding[In, Out, State, Init]) ContractDeps() []tradetypes.Contract {
	return e.spec.ContractDeps()
}

// SlotCount implements Block.
func (e *Embedding[In, Out, State, Init]) SlotCount() int {
	return e.spec.SlotCount()
}

// Execute implements Block. Per tick: snapshot input, call the typed
// Execute, and on success write the output, commit the new state, and tag
// intents with this block's id in slot order. On failure ("None") nothing
// is written and the state cell is left untouched.
func (e *Embedding[In, Out, State, Init]) Execute(ctx execcontext.ExecutionContext) ([]SlotIntent, bool) {
	input := e.reader.Read()

	out, newState, intents, ok := e.spec.Execute(ctx, input, e.state)
	if !ok {
		return nil, false
	}

	e.writer.Write(out)
	e.state = newState

	return toSlotIntents(e.blockID, intents), true
}

// ExtractPackage reconstructs the serializable package for this embedding,
// capturing its current state. Used for snapshotting a running plan back
// into wire form.
func (e *Embedding[In, Out, State, Init]) ExtractPackage() *Package[In, Out, State, Init] {
	state := e.state
	return &Package[In, Out, State, Init]{
		BlockID:    e.blockID,
		InputKeys:  e.inputKeys,
		OutputKeys: e.outputKeys,
		InitParams: e.initParams,
		State:      &state,
		New:        e.newFromInitParams,
	}
}
