package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/metrics"
)

type Config struct {
	Address       string
	DialTimeout   time.Duration
	IOTimeout     time.Duration
	MaxRetries    int
	MaxElapsed    time.Duration
	BreakerFails  int
	BreakerOpen   time.Duration
	BreakerWindow time.Duration
}

func (c *Config) defaults() {
	if c.DialTimeout <= 0 {
		c.DialTimeout = 2 * time.Second
	}
	if c.IOTimeout <= 0 {
		c.IOTimeout = 500 * time.Millisecond
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 5
	}
	if c.MaxElapsed <= 0 {
		c.MaxElapsed = 10 * time.Second
	}
	if c.BreakerFails <= 0 {
		c.BreakerFails = 3
	}
	if c.BreakerOpen <= 0 {
		c.BreakerOpen = 5 * time.Second
	}
}

// Client is a hal.Board backed by a remote IO bridge. A failing bridge never
// stalls the caller for longer than IOTimeout: reads degrade to NaN climate,
// low pins, a -1 analog sample and no key, and writes are dropped.
type Client struct {
	cfg Config
	cb  *gobreaker.CircuitBreaker
	log *slog.Logger

	mu   sync.Mutex
	conn net.Conn
}

// Dial connects to the bridge, retrying with exponential backoff.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	cfg.defaults()
	c := &Client{
		cfg: cfg,
		log: slog.Default().With("component", "bridge", "address", cfg.Address),
	}
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "io-bridge",
		Interval: cfg.BreakerWindow,
		Timeout:  cfg.BreakerOpen,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.BreakerFails)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("bridge breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.MaxElapsed
	err := backoff.Retry(func() error {
		conn, err := net.DialTimeout("tcp", cfg.Address, cfg.DialTimeout)
		if err != nil {
			c.log.Warn("bridge dial failed", "error", err)
			return err
		}
		c.conn = conn
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(cfg.MaxRetries-1)), ctx))
	if err != nil {
		return nil, fmt.Errorf("could not reach io bridge at %s: %w", cfg.Address, err)
	}
	c.log.Info("connected to io bridge")
	return c, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// BreakerState reports the circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.cb.State()
}

func (c *Client) exchange(req Frame, payload []byte) (Frame, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.roundTrip(req, payload)
	})
	if err != nil {
		metrics.BridgeErrors.WithLabelValues(req.Cmd.String()).Inc()
		if !IsOpen(err) {
			c.log.Debug("bridge exchange failed", "cmd", req.Cmd, "error", err)
		}
		return Frame{}, err
	}
	return res.(Frame), nil
}

// roundTrip runs with c.mu held. A broken connection is dropped and redialed
// once on the next exchange.
func (c *Client) roundTrip(req Frame, payload []byte) (Frame, error) {
	if c.conn == nil {
		conn, err := net.DialTimeout("tcp", c.cfg.Address, c.cfg.DialTimeout)
		if err != nil {
			return Frame{}, err
		}
		c.conn = conn
	}

	fail := func(err error) (Frame, error) {
		c.conn.Close()
		c.conn = nil
		return Frame{}, err
	}
	if err := c.conn.SetDeadline(time.Now().Add(c.cfg.IOTimeout)); err != nil {
		return fail(err)
	}
	if err := WriteFrame(c.conn, req, payload); err != nil {
		return fail(err)
	}
	reply, _, err := ReadFrame(c.conn)
	if err != nil {
		return fail(err)
	}
	if reply.Cmd == CmdError {
		return Frame{}, fmt.Errorf("%w: %s", ErrRemote, req.Cmd)
	}
	if reply.Cmd != req.Cmd {
		return fail(fmt.Errorf("%w: sent %s, got %s", ErrMismatch, req.Cmd, reply.Cmd))
	}
	return reply, nil
}

func (c *Client) send(req Frame) {
	_, _ = c.exchange(req, nil)
}

// ---- hal.Display ----

func (c *Client) Clear() { c.send(Frame{Cmd: CmdClear}) }

func (c *Client) SetCursor(col, row int) {
	c.send(Frame{Cmd: CmdSetCursor, A: uint16(col), B: int32(row)})
}

func (c *Client) Print(text string) {
	text = clip(text)
	_, _ = c.exchange(Frame{Cmd: CmdPrint, B: int32(len(text))}, []byte(text))
}

// clip cuts text to MaxPrint bytes without splitting a rune.
func clip(text string) string {
	if len(text) <= MaxPrint {
		return text
	}
	n := MaxPrint
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}

// ---- hal.Keypad ----

func (c *Client) GetKey() (hal.Key, bool) {
	reply, err := c.exchange(Frame{Cmd: CmdGetKey}, nil)
	if err != nil || reply.B <= 0 || reply.B > math.MaxUint8 {
		return hal.NoKey, false
	}
	k := hal.Key(reply.B)
	if !hal.ValidKey(k) {
		c.log.Warn("bridge sent an unknown key", "key", reply.B)
		return hal.NoKey, false
	}
	return k, true
}

// ---- hal.GPIO ----

func (c *Client) PinMode(pin int, mode hal.PinMode) {
	c.send(Frame{Cmd: CmdPinMode, Pin: byte(pin), A: uint16(mode)})
}

func (c *Client) DigitalRead(pin int) hal.Level {
	reply, err := c.exchange(Frame{Cmd: CmdDigitalRead, Pin: byte(pin)}, nil)
	if err != nil {
		return hal.Low
	}
	return hal.Level(reply.B != 0)
}

func (c *Client) DigitalWrite(pin int, level hal.Level) {
	var a uint16
	if level == hal.High {
		a = 1
	}
	c.send(Frame{Cmd: CmdDigitalWrite, Pin: byte(pin), A: a})
}

func (c *Client) AnalogRead(pin int) int {
	reply, err := c.exchange(Frame{Cmd: CmdAnalogRead, Pin: byte(pin)}, nil)
	if err != nil {
		return -1
	}
	return int(reply.B)
}

// ---- hal.Climate ----

func (c *Client) ReadTemperature() float64 { return c.readClimate(CmdTemperature) }
func (c *Client) ReadHumidity() float64    { return c.readClimate(CmdHumidity) }

func (c *Client) readClimate(cmd Command) float64 {
	reply, err := c.exchange(Frame{Cmd: cmd}, nil)
	if err != nil {
		return math.NaN()
	}
	return fromCenti(reply.B)
}

// ---- hal.Tone ----

func (c *Client) Tone(pin int, freqHz int, d time.Duration) {
	c.send(Frame{Cmd: CmdTone, Pin: byte(pin), A: uint16(freqHz), B: int32(d / time.Millisecond)})
}

func (c *Client) NoTone(pin int) {
	c.send(Frame{Cmd: CmdNoTone, Pin: byte(pin)})
}

// IsOpen reports whether err came from an open breaker rather than the bridge.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

var _ hal.Board = (*Client)(nil)
