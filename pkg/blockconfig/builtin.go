package blockconfig

import (
	"github.com/pkg/errors"

	"github.com/blockflowhq/blockflow/pkg/blocks/builtin"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

// Builtin returns a Registry pre-populated with the engine's reference
// block kinds: After, Delete, SimpleOrder, Sniper.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("After", decodeAfter)
	r.Register("Delete", decodeDelete)
	r.Register("SimpleOrder", decodeSimpleOrder)
	r.Register("Sniper", decodeSniper)
	return r
}

type afterWire struct {
	OutputKeys struct {
		IsAfter string `json:"is_after"`
	} `json:"output_keys"`
	InitParams struct {
		Time uint64 `json:"time"`
	} `json:"init_params"`
}

func decodeAfter(blockID uint32, data []byte) (weave.Node, error) {
	var w afterWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "decoding After block")
	}
	return builtin.NewAfterPackage(blockID, w.OutputKeys.IsAfter, builtin.AfterInit{Time: w.InitParams.Time}), nil
}

type deleteWire struct {
	InputKeys struct {
		ShouldDelete string `json:"should_delete"`
	} `json:"input_keys"`
}

func decodeDelete(blockID uint32, data []byte) (weave.Node, error) {
	var w deleteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "decoding Delete block")
	}
	return builtin.NewDeletePackage(blockID, w.InputKeys.ShouldDelete), nil
}

type simpleOrderWire struct {
	InputKeys struct {
		ShouldExecute string `json:"should_execute"`
	} `json:"input_keys"`
	InitParams struct {
		Contract tradetypes.Contract `json:"contract"`
		Side     tradetypes.Side     `json:"side"`
		Price    wirePrice           `json:"price"`
		Quantity wireQuantity        `json:"quantity"`
	} `json:"init_params"`
}

func decodeSimpleOrder(blockID uint32, data []byte) (weave.Node, error) {
	var w simpleOrderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "decoding SimpleOrder block")
	}
	return builtin.NewSimpleOrderPackage(blockID, w.InputKeys.ShouldExecute, builtin.SimpleOrderInit{
		Contract: w.InitParams.Contract,
		Side:     w.InitParams.Side,
		Price:    w.InitParams.Price.toPrice(),
		Quantity: w.InitParams.Quantity.toQuantity(),
	}), nil
}

type sniperWire struct {
	InputKeys struct {
		ShouldExecute string `json:"should_execute"`
	} `json:"input_keys"`
	InitParams struct {
		Contract  tradetypes.Contract `json:"contract"`
		Side      tradetypes.Side     `json:"side"`
		Quantity  wireQuantity        `json:"quantity"`
		Threshold wirePrice           `json:"threshold"`
	} `json:"init_params"`
}

func decodeSniper(blockID uint32, data []byte) (weave.Node, error) {
	var w sniperWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "decoding Sniper block")
	}
	return builtin.NewSniperPackage(blockID, w.InputKeys.ShouldExecute, builtin.SniperInit{
		Contract:  w.InitParams.Contract,
		Side:      w.InitParams.Side,
		Quantity:  w.InitParams.Quantity.toQuantity(),
		Threshold: w.InitParams.Threshold.toPrice(),
	}), nil
}

// wirePrice/wireQuantity mirror the source's minor-unit wire
// representation ({"cents": n} / {"kw": n}) rather than exposing the
// internal Price/Quantity struct's unexported field directly.
type wirePrice struct {
	Cents uint32 `json:"cents"`
}

func (p wirePrice) toPrice() tradetypes.Price {
	return tradetypes.PriceFromCents(tradetypes.Cents(p.Cents))
}

type wireQuantity struct {
	Kw uint32 `json:"kw"`
}

func (q wireQuantity) toQuantity() tradetypes.Quantity {
	return tradetypes.QuantityFromKw(tradetypes.Kw(q.Kw))
}
