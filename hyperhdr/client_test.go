package hyperhdr

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/rkjdid/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvled/ledoff/adalight"
)

// fakeServer accepts one connection and answers every JSON line with
// reply, forwarding received requests on reqs.
func fakeServer(t *testing.T, reply string) (Config, <-chan request) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	reqs := make(chan request, 4)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		sc := bufio.NewScanner(conn)
		for sc.Scan() {
			var req request
			if json.Unmarshal(sc.Bytes(), &req) == nil {
				reqs <- req
			}
			conn.Write([]byte(reply + "\n"))
		}
	}()

	cfg := DefaultConfig
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.Priority = 64
	cfg.Timeout = util.Duration(2 * time.Second)
	return cfg, reqs
}

func TestClientClear(t *testing.T) {
	cfg, reqs := fakeServer(t, `{"success":true}`)

	c, err := Dial(cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Clear())

	req := <-reqs
	assert.Equal(t, "clear", req.Command)
	assert.Equal(t, 64, req.Priority)
	assert.Empty(t, req.Color)
}

func TestClientSetColor(t *testing.T) {
	cfg, reqs := fakeServer(t, `{"success":true}`)

	c, err := Dial(cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.SetColor(adalight.Black))

	req := <-reqs
	assert.Equal(t, "color", req.Command)
	assert.Equal(t, []int{0, 0, 0}, req.Color)
	assert.Equal(t, cfg.Origin, req.Origin)
}

func TestClientRefused(t *testing.T) {
	cfg, _ := fakeServer(t, `{"success":false,"error":"priority in use"}`)

	c, err := Dial(cfg)
	require.NoError(t, err)
	defer c.Close()

	err = c.Clear()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority in use")
}

func TestDialRefused(t *testing.T) {
	cfg := DefaultConfig
	// reserve a port, then close it so nothing listens there
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	cfg.Timeout = util.Duration(time.Second)

	_, err = Dial(cfg)
	assert.Error(t, err)
}
