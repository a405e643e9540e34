package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/ens"
	"github.com/grendel/chainaddr/pkg/validate"
)

func TestResolveENS(t *testing.T) {
	resolverAddr := common.HexToAddress("0x4976fb03C32e5B8cfe2b6cCB31c09Ba78EBaBa41")
	target := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage   `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		var call struct {
			To common.Address `json:"to"`
		}
		require.NoError(t, json.Unmarshal(req.Params[0], &call))

		answer := common.Address{}
		switch call.To {
		case ens.RegistryAddress:
			answer = resolverAddr
		case resolverAddr:
			answer = target
		}
		word := "0x" + strings.Repeat("0", 24) + common.Bytes2Hex(answer.Bytes())
		json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": word})
	}))
	defer node.Close()

	s := New(Config{EthereumRPC: node.URL, UnstoppableURL: "http://127.0.0.1:1", SNSProxyURL: "http://127.0.0.1:1"}, zerolog.Nop())

	res := s.Resolve(context.Background(), "vitalik.eth", chain.Ethereum)
	require.True(t, res.Valid, "%+v", res.Err)
	require.Equal(t, "vitalik.eth", res.DisplayName)
	require.Equal(t, strings.ToLower(target.Hex()), res.NormalizedAddress)
	require.Equal(t, target.Hex(), res.ChecksumAddress)
}

func TestResolveENSNotFound(t *testing.T) {
	// A registry answering all zeroes means the name has no resolver.
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		word := "0x" + strings.Repeat("0", 64)
		json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": word})
	}))
	defer node.Close()

	s := New(Config{EthereumRPC: node.URL, UnstoppableURL: "http://127.0.0.1:1", SNSProxyURL: "http://127.0.0.1:1"}, zerolog.Nop())

	res := s.Resolve(context.Background(), "unregistered.eth", chain.Ethereum)
	require.False(t, res.Valid)
	require.Equal(t, validate.KindNotFound, res.Err.Kind)
}
