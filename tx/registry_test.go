// SPDX-License-Identifier: MIT
// Dev KryperAI

package tx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func pingFactory() Decodable { return new(pingMsg) }
func pongFactory() Decodable { return new(pongMsg) }

type blankMsg struct{ pongMsg }

func (blankMsg) TypeURL() string { return "" }

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(pingFactory, pongFactory))
	require.Equal(t, 2, reg.Len())
	require.Equal(t, []string{"/test.v1.Ping", "/test.v1.Pong"}, reg.TypeURLs())

	f, ok := reg.Lookup("/test.v1.Ping")
	require.True(t, ok)
	require.IsType(t, &pingMsg{}, f())

	_, ok = reg.Lookup("/test.v1.Missing")
	require.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(pingFactory))

	err := reg.Register(pongFactory, pingFactory)
	require.ErrorIs(t, err, ErrDuplicateTypeURL)
	require.Equal(t, 1, reg.Len(), "failed batch must not be partially applied")

	err = NewRegistry().Register(pongFactory, pongFactory)
	require.ErrorIs(t, err, ErrDuplicateTypeURL)
}

func TestRegistryRejectsEmptyTypeURL(t *testing.T) {
	err := NewRegistry().Register(func() Decodable { return new(blankMsg) })
	require.Error(t, err)
}

func TestRegistryDecode(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(pingFactory))

	out, err := reg.Decode(NewMsg("/test.v1.Ping", []byte("hi")))
	require.NoError(t, err)
	require.Equal(t, &pingMsg{Payload: "hi"}, out)

	_, err = reg.Decode(NewMsg("/test.v1.Pong", nil))
	require.ErrorIs(t, err, ErrUnknownTypeURL)

	_, err = reg.Decode(NewMsg("/test.v1.Ping", []byte("corrupt")))
	require.ErrorIs(t, err, ErrCodec)
}

func TestRegistryEncodeAndNew(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(pingFactory))

	msg, err := reg.Encode(pingMsg{Payload: "x"})
	require.NoError(t, err)
	require.True(t, msg.Equal(NewMsg("/test.v1.Ping", []byte("x"))))

	_, err = reg.Encode(pongMsg{})
	require.ErrorIs(t, err, ErrUnknownTypeURL)

	m, err := reg.New("/test.v1.Ping")
	require.NoError(t, err)
	require.Equal(t, &pingMsg{}, m)

	_, err = reg.New("/nope")
	require.ErrorIs(t, err, ErrUnknownTypeURL)
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(pingFactory))
	msg := MustToMsg(pingMsg{Payload: "shared"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := reg.Decode(msg)
			if err != nil {
				t.Error(err)
				return
			}
			if out.(*pingMsg).Payload != "shared" {
				t.Errorf("unexpected payload %q", out.(*pingMsg).Payload)
			}
			if _, err := FromMsg[pingMsg](msg); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
}
