package builtin

import (
	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// AfterInit is the init parameters for an After block.
type AfterInit struct {
	Time uint64 `json:"time"`
}

type afterSpec struct {
	time uint64
}

func (afterSpec) InitState() struct{}                { return struct{}{} }
func (afterSpec) ContractDeps() []tradetypes.Contract { return nil }
func (afterSpec) SlotCount() int                     { return 0 }

func (s afterSpec) Execute(
	ctx execcontext.ExecutionContext, _ struct{}, state struct{},
) (bool, struct{}, []blocks.Intent, bool) {
	return ctx.Time() > s.time, state, nil, true
}

// NewAfterPackage builds the wire package for an After block: no input
// channels, one boolean output channel, fires once ctx.Time() passes
// init.Time.
func NewAfterPackage(blockID uint32, outputChannel string, init AfterInit) *blocks.Package[struct{}, bool, struct{}, AfterInit] {
	return &blocks.Package[struct{}, bool, struct{}, AfterInit]{
		BlockID:    blockID,
		InputKeys:  channels.EmptyInputKeys{},
		OutputKeys: channels.OutputKey[bool]{Channel: outputChannel},
		InitParams: init,
		New: func(p AfterInit) blocks.Spec[struct{}, bool, struct{}] {
			return afterSpec{time: p.Time}
		},
	}
}
