package blockconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/pkg/blockconfig"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

func TestDecodePackagesAfterThenDelete(t *testing.T) {
	doc := `[
		{
			"type": "After",
			"data": {
				"output_keys": { "is_after": "is_after" },
				"init_params": { "time": 10 }
			}
		},
		{
			"type": "Delete",
			"data": {
				"input_keys": { "should_delete": "is_after" }
			}
		}
	]`

	nodes, err := blockconfig.Builtin().DecodePackages([]byte(doc))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	r := channels.NewRegistry()
	blks, err := weave.Weave(nodes, r)
	require.NoError(t, err)
	require.Equal(t, uint32(0), blks[0].BlockID())
	require.Equal(t, uint32(1), blks[1].BlockID())

	ctx := execcontext.NewStaticContext()
	ctx.SetTime(11)
	_, ok := blks[0].Execute(ctx)
	require.True(t, ok)
	_, ok = blks[1].Execute(ctx)
	require.False(t, ok)
}

func TestDecodePackagesSimpleOrder(t *testing.T) {
	doc := `[
		{
			"type": "SimpleOrder",
			"data": {
				"input_keys": { "should_execute": "should_execute" },
				"init_params": {
					"contract": "TEST",
					"side": "Buy",
					"price": { "cents": 100 },
					"quantity": { "kw": 10 }
				}
			}
		}
	]`

	nodes, err := blockconfig.Builtin().DecodePackages([]byte(doc))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
}

func TestDecodePackagesUnknownKindFails(t *testing.T) {
	doc := `[{ "type": "DoesNotExist", "data": {} }]`

	_, err := blockconfig.Builtin().DecodePackages([]byte(doc))
	require.Error(t, err)
	require.IsType(t, &blockconfig.UnknownKindError{}, err)
}

func TestDecodePackagesInvalidJSONFails(t *testing.T) {
	_, err := blockconfig.Builtin().DecodePackages([]byte(`[{ "type": "After", "data": { `))
	require.Error(t, err)
}
