package blocks

import "github.com/blockflowhq/blockflow/pkg/channels"

// Package is the serializable, pre-weave description of one block: its
// input/output key bindings, its init parameters, and an optional saved
// state. Packages with the same block kind share schema.
//
// New reconstructs a fresh Spec from InitParams; it takes the place of the
// source's generic "B::new_from_init_params" associated function, which Go
// cannot express without a factory value since Go has no static methods
// callable through a type parameter.
type Package[In, Out, State, Init any] struct {
	// BlockID is assigned by whoever authors the block list (the config
	// loader) and must be unique within a plan; the weaver does not assign
	// or check it.
	BlockID uint32

	InputKeys  channels.InputKeys[In]
	OutputKeys channels.OutputKeys[Out]
	InitParams Init
	State      *State

	New func(Init) Spec[In, Out, State]
}

// InputChannels returns the channel names this package reads from.
func (p *Package[In, Out, State, Init]) InputChannels() []string {
	return p.InputKeys.ChannelNames()
}

// OutputChannels returns the channel names this package writes to.
func (p *Package[In, Out, State, Init]) OutputChannels() []string {
	return p.OutputKeys.ChannelNames()
}

// Weave registers this package's output channels against the registry,
// binds its reader and writer, and returns the runnable Embedding. Output
// channels are registered before the reader is bound so that a self-loop
// (a block's own output feeding its input) resolves against the same cell.
func (p *Package[In, Out, State, Init]) Weave(r *channels.Registry) (*Embedding[In, Out, State, Init], error) {
	if err := p.OutputKeys.Register(r); err != nil {
		return nil, err
	}

	spec := p.New(p.InitParams)

	reader, err := p.InputKeys.Bind(r)
	if err != nil {
		return nil, err
	}

	writer, err := p.OutputKeys.Bind(r)
	if err != nil {
		return nil, err
	}

	state := spec.InitState()
	if p.State != nil {
		state = *p.State
	}

	return &Embedding[In, Out, State, Init]{
		blockID:           p.BlockID,
		spec:              spec,
		reader:            reader,
		writer:            writer,
		state:             state,
		inputKeys:         p.InputKeys,
		outputKeys:        p.OutputKeys,
		initParams:        p.InitParams,
		newFromInitParams: p.New,
	}, nil
}

// WeaveErased is Weave with its result widened to the type-erased Block
// interface, so a Package satisfies the weaver's Node contract without the
// weaver package needing to know In/Out/State/Init.
func (p *Package[In, Out, State, Init]) WeaveErased(r *channels.Registry) (Block, error) {
	return p.Weave(r)
}
