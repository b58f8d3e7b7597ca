package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/pathway/transport"
	"github.com/indigo-web/utils/unreader"
)

var _ transport.Client = new(Client)

// Client returns the data it was initialised with piece by piece, reporting io.EOF once
// everything was read, unless set to loop. It also tracks all the written data, making it
// thereby a universal mock suitable for most of the tests.
type Client struct {
	unreader *unreader.Unreader
	data     [][]byte
	pointer  int
	loop     bool
	closed   bool
	written  []byte
	remote   net.Addr
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		unreader: new(unreader.Unreader),
		data:     data,
	}
}

func (c *Client) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	return c.unreader.PendingOr(func() ([]byte, error) {
		if c.pointer >= len(c.data) {
			if !c.loop || len(c.data) == 0 {
				return nil, io.EOF
			}

			c.pointer = 0
		}

		piece := c.data[c.pointer]
		c.pointer++

		return piece, nil
	})
}

func (c *Client) Unread(b []byte) {
	c.unreader.Unread(b)
}

func (c *Client) Write(p []byte) error {
	if c.closed {
		return net.ErrClosed
	}

	c.written = append(c.written, p...)
	return nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads makes the client start over instead of returning io.EOF.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// WithRemote sets the address returned by Remote.
func (c *Client) WithRemote(addr net.Addr) *Client {
	c.remote = addr
	return c
}

// Written returns everything that was written into the client.
func (c *Client) Written() string {
	return string(c.written)
}

// Closed reports whether Close was called.
func (c *Client) Closed() bool {
	return c.closed
}
