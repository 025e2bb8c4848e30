// SPDX-License-Identifier: MIT
// Dev KryperAI

package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"cosmos-txmsg/config"
	"cosmos-txmsg/msgs"
	"cosmos-txmsg/node"
	"cosmos-txmsg/tx"
	"cosmos-txmsg/types"
)

func newTestServer(t *testing.T, wasm bool) *httptest.Server {
	t.Helper()
	return newTestServerWithLimit(t, wasm, 1<<20)
}

func newTestServerWithLimit(t *testing.T, wasm bool, limit int64) *httptest.Server {
	t.Helper()
	cfg := &config.Config{EnableWasm: wasm, MaxBodyBytes: limit}
	n, err := node.New(cfg, node.NewLogger("error", "text", io.Discard))
	require.NoError(t, err)

	srv := httptest.NewServer(NewServer(n).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHealthAndTypes(t *testing.T) {
	srv := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/msg/types")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		TypeURLs []string `json:"type_urls"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.TypeURLs, 8)
	require.Contains(t, out.TypeURLs, msgs.TypeURLMsgSend)

	resp, err = http.Post(srv.URL+"/health", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestEncodeThenDecode(t *testing.T) {
	srv := newTestServer(t, false)

	code, out := post(t, srv, "/msg/encode", map[string]any{
		"type_url": msgs.TypeURLMsgSend,
		"value": map[string]any{
			"from_address": "a",
			"to_address":   "b",
			"amount":       []map[string]string{{"denom": "uatom", "amount": "100"}},
		},
	})
	require.Equal(t, http.StatusOK, code, out)
	require.Equal(t, msgs.TypeURLMsgSend, out["type_url"])

	want := tx.MustToMsg(msgs.MsgSend{FromAddress: "a", ToAddress: "b", Amount: []types.Coin{types.NewCoin("uatom", "100")}})
	require.Equal(t, hexutil.Encode(want.Value()), out["value"])

	code, out = post(t, srv, "/msg/decode", out)
	require.Equal(t, http.StatusOK, code, out)
	message := out["message"].(map[string]any)
	require.Equal(t, "a", message["from_address"])
	require.Equal(t, "b", message["to_address"])
}

func TestEncodeRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t, false)

	code, out := post(t, srv, "/msg/encode", map[string]any{
		"type_url": msgs.TypeURLMsgSend,
		"value":    map[string]any{"sender": "a"},
	})
	require.Equal(t, http.StatusBadRequest, code, out)
}

func TestDecodeErrors(t *testing.T) {
	srv := newTestServer(t, false)

	code, _ := post(t, srv, "/msg/decode", map[string]string{
		"type_url": msgs.TypeURLMsgClearAdmin,
		"value":    "0x",
	})
	require.Equal(t, http.StatusNotFound, code, "wasm disabled")

	code, _ = post(t, srv, "/msg/decode", map[string]string{
		"type_url": msgs.TypeURLMsgSend,
		"value":    "0x0a05",
	})
	require.Equal(t, http.StatusBadRequest, code, "truncated payload")

	code, _ = post(t, srv, "/msg/decode", map[string]string{
		"type_url": msgs.TypeURLMsgSend,
		"value":    "not-hex",
	})
	require.Equal(t, http.StatusBadRequest, code)
}

func TestParseMismatch(t *testing.T) {
	srv := newTestServer(t, false)
	msg := tx.MustToMsg(msgs.MsgSend{FromAddress: "a"})

	code, out := post(t, srv, "/msg/parse", map[string]string{
		"expected": msgs.TypeURLMsgDelegate,
		"type_url": msg.TypeURL(),
		"value":    hexutil.Encode(msg.Value()),
	})
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, msgs.TypeURLMsgDelegate, out["expected"])
	require.Equal(t, msgs.TypeURLMsgSend, out["found"])

	code, out = post(t, srv, "/msg/parse", map[string]string{
		"expected": msgs.TypeURLMsgSend,
		"type_url": msg.TypeURL(),
		"value":    hexutil.Encode(msg.Value()),
	})
	require.Equal(t, http.StatusOK, code, out)
}

func TestBodyEncodeDecode(t *testing.T) {
	srv := newTestServer(t, true)

	code, out := post(t, srv, "/tx/body/encode", map[string]any{
		"memo":           "hello",
		"timeout_height": 10,
		"messages": []map[string]any{
			{"type_url": msgs.TypeURLMsgDelegate, "value": map[string]any{
				"delegator_address": "a",
				"validator_address": "v",
				"amount":            map[string]string{"denom": "uatom", "amount": "5"},
			}},
			{"type_url": msgs.TypeURLMsgClearAdmin, "value": map[string]any{"sender": "a", "contract": "c"}},
		},
	})
	require.Equal(t, http.StatusOK, code, out)
	hash := out["hash"]
	require.NotEmpty(t, hash)

	code, out = post(t, srv, "/tx/body/decode", map[string]any{"body": out["body"]})
	require.Equal(t, http.StatusOK, code, out)
	require.Equal(t, "hello", out["memo"])
	require.Equal(t, float64(10), out["timeout_height"])
	require.Equal(t, hash, out["hash"])
	require.Len(t, out["messages"], 2)
}

func TestBodyEncodeUnknownType(t *testing.T) {
	srv := newTestServer(t, false)

	code, _ := post(t, srv, "/tx/body/encode", map[string]any{
		"messages": []map[string]any{{"type_url": "/cosmos.gov.v1beta1.MsgVote", "value": map[string]any{}}},
	})
	require.Equal(t, http.StatusNotFound, code)
}

func TestBodyTooLarge(t *testing.T) {
	srv := newTestServerWithLimit(t, false, 96)

	code, out := post(t, srv, "/msg/decode", map[string]string{
		"type_url": msgs.TypeURLMsgSend,
		"value":    hexutil.Encode(bytes.Repeat([]byte{0x01}, 128)),
	})
	require.Equal(t, http.StatusRequestEntityTooLarge, code, out)

	code, _ = post(t, srv, "/msg/decode", map[string]string{
		"type_url": msgs.TypeURLMsgSend,
		"value":    "0x0a0161",
	})
	require.Equal(t, http.StatusOK, code, "small body under the limit")
}

func TestDecodeRejectsMalformedFields(t *testing.T) {
	srv := newTestServer(t, false)

	for _, value := range []string{"0x0d01020304", "0x090102030405060708", "0x0a02fffe"} {
		code, out := post(t, srv, "/msg/decode", map[string]string{
			"type_url": msgs.TypeURLMsgSend,
			"value":    value,
		})
		require.Equal(t, http.StatusBadRequest, code, "%s: %v", value, out)
	}
}
