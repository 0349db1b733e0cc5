package contract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fakeAddr = "0x1234567890abcdef"
	fakeTx   = `{"data":"0x00001"}`
)

type fakeResult struct {
	Addr string
	Tx   json.RawMessage
}

func fakeContractDeployment() DeployFunc[fakeResult] {
	return func() (fakeResult, error) {
		return fakeResult{Addr: fakeAddr, Tx: json.RawMessage(fakeTx)}, nil
	}
}

func Test_Deploy(t *testing.T) {
	t.Parallel()

	res, err := Deploy(fakeContractDeployment())
	require.NoError(t, err)

	assert.Equal(t, fakeAddr, res.Addr)
	assert.JSONEq(t, fakeTx, string(res.Tx))
}

func Test_Deploy_Error(t *testing.T) {
	t.Parallel()

	_, err := Deploy(DeployFunc[fakeResult](func() (fakeResult, error) {
		return fakeResult{}, errors.New("boom")
	}))
	require.EqualError(t, err, "boom")
}
