// Package hyperhdr implements the small slice of HyperHDR's JSON API
// this tool needs: releasing (or overriding) the priority a grabber was
// feeding, so HyperHDR doesn't immediately re-drive a strip that was
// just blanked.
package hyperhdr

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/rkjdid/util"

	"github.com/tvled/ledoff/adalight"
)

type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Priority int
	Origin   string
	Timeout  util.Duration
}

var DefaultConfig = Config{
	Host:     "127.0.0.1",
	Port:     19444,
	Priority: 100,
	Origin:   "ledoff",
	Timeout:  util.Duration(2 * time.Second),
}

// Client is a synchronous connection to a HyperHDR JSON server.
// Commands and replies are single JSON lines.
type Client struct {
	cfg  Config
	conn net.Conn
	rd   *bufio.Reader
}

type request struct {
	Command  string `json:"command"`
	Priority int    `json:"priority,omitempty"`
	Origin   string `json:"origin,omitempty"`
	Color    []int  `json:"color,omitempty"`
}

type reply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Dial(cfg Config) (*Client, error) {
	addr := net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, time.Duration(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	return &Client{
		cfg:  cfg,
		conn: conn,
		rd:   bufio.NewReader(conn),
	}, nil
}

// Clear releases the configured priority so a lower-priority source
// (or none) takes over.
func (c *Client) Clear() error {
	return c.roundTrip(request{
		Command:  "clear",
		Priority: c.cfg.Priority,
	})
}

// SetColor drives every LED HyperHDR controls to col at the configured
// priority.
func (c *Client) SetColor(col adalight.Color) error {
	return c.roundTrip(request{
		Command:  "color",
		Priority: c.cfg.Priority,
		Origin:   c.cfg.Origin,
		Color:    []int{int(col.R), int(col.G), int(col.B)},
	})
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) roundTrip(req request) error {
	b, err := json.Marshal(req)
	if err != nil {
		return err
	}
	deadline := time.Now().Add(time.Duration(c.cfg.Timeout))
	if err = c.conn.SetDeadline(deadline); err != nil {
		return err
	}
	if _, err = c.conn.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("hyperhdr %s: %w", req.Command, err)
	}
	line, err := c.rd.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("hyperhdr %s reply: %w", req.Command, err)
	}
	var rep reply
	if err = json.Unmarshal(line, &rep); err != nil {
		return fmt.Errorf("hyperhdr %s reply: %w", req.Command, err)
	}
	if !rep.Success {
		return fmt.Errorf("hyperhdr %s refused: %s", req.Command, rep.Error)
	}
	return nil
}
