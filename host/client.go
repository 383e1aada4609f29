package host

import (
	"bufio"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

// Client talks to the game host over a single connection. Lines are
// read on a background goroutine and consumed by ReadState.
type Client struct {
	conn net.Conn

	Greeting string

	mu  sync.Mutex
	err error

	recv     chan string
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Dial connects to the host at addr as the given player and waits for
// its greeting.
func Dial(ctx context.Context, addr string, player int) (*Client, error) {
	if player != 1 && player != 2 {
		return nil, errors.Wrapf(ErrBadPlayer, "player=%d", player)
	}
	var d net.Dialer
	hostport := net.JoinHostPort(addr, strconv.Itoa(BasePort+player))
	conn, err := d.DialContext(ctx, "tcp", hostport)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", hostport)
	}
	c, err := NewClient(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// NewClient starts reading from conn and consumes the greeting line.
func NewClient(ctx context.Context, conn net.Conn) (*Client, error) {
	c := &Client{
		conn:     conn,
		recv:     make(chan string),
		shutdown: make(chan struct{}),
	}
	c.wg.Add(1)
	go c.recvThread()
	g, err := c.readLine(ctx)
	if err != nil {
		c.Close()
		return nil, errors.Wrap(err, "greeting")
	}
	c.Greeting = g
	return c, nil
}

func (c *Client) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

// Error returns the error that stopped the receive loop, if any.
func (c *Client) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Client) recvThread() {
	defer c.wg.Done()
	defer close(c.recv)
	r := bufio.NewReader(c.conn)
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" || err == nil {
			log.Debug().Str("line", line).Msg("<")
			select {
			case c.recv <- line:
			case <-c.shutdown:
				return
			}
		}
		if err != nil {
			c.setErr(err)
			return
		}
	}
}

func (c *Client) readLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-c.recv:
		if !ok {
			if err := c.Error(); err != nil && err != io.EOF {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ReadState blocks until the host has sent a complete state message.
func (c *Client) ReadState(ctx context.Context) (*State, error) {
	first, err := c.readLine(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read turn")
	}
	lines := []string{first}
	if turn, err := parseTurn(first); err != nil {
		return nil, err
	} else if turn != reversi.GameOver {
		for len(lines) < stateLines {
			l, err := c.readLine(ctx)
			if err != nil {
				return nil, errors.Wrapf(err, "read state line %d", len(lines))
			}
			lines = append(lines, l)
		}
	}
	return ParseState(lines)
}

func (c *Client) SendMove(m reversi.Move) error {
	if !m.OnBoard() {
		return errors.Wrapf(reversi.ErrOffBoard, "%s", notation.FormatMove(m))
	}
	log.Debug().Str("move", notation.FormatMove(m)).Msg(">")
	_, err := io.WriteString(c.conn, FormatMove(m))
	return errors.Wrap(err, "send move")
}

func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.shutdown)
		err = c.conn.Close()
		c.wg.Wait()
	})
	return err
}
