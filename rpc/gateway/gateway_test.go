package gateway

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type fakeInvoker struct {
	contract  util.Uint160
	operation string
	params    []any

	res *result.Invoke
}

func (f *fakeInvoker) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	f.contract = contract
	f.operation = operation
	f.params = params

	return f.res, nil
}

func TestServiceContract(t *testing.T) {
	var gatewayHash, oracleHash util.Uint160
	gatewayHash[0] = 1
	for i := range oracleHash {
		oracleHash[i] = byte(i)
	}

	inv := &fakeInvoker{res: &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.NewByteArray(oracleHash.BytesBE())},
	}}

	reader := NewReader(inv, gatewayHash)
	require.Equal(t, gatewayHash, reader.Hash())

	got, err := reader.ServiceContract("oracle")
	require.NoError(t, err)
	require.Equal(t, oracleHash, got)

	require.Equal(t, gatewayHash, inv.contract)
	require.Equal(t, "getServiceContract", inv.operation)
	require.Equal(t, []any{"oracle"}, inv.params)
}

func TestServiceContractFault(t *testing.T) {
	inv := &fakeInvoker{res: &result.Invoke{State: "FAULT"}}

	_, err := NewReader(inv, util.Uint160{}).ServiceContract("vrf")
	require.Error(t, err)
}

func TestIsTEEAccount(t *testing.T) {
	var acc util.Uint160
	acc[19] = 7

	inv := &fakeInvoker{res: &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.NewBool(true)},
	}}

	ok, err := NewReader(inv, util.Uint160{}).IsTEEAccount(acc)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, "isTEEAccount", inv.operation)
	require.Equal(t, []any{acc}, inv.params)
}
