package bridge

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

// Server exposes a hal.Board over the bridge protocol.
type Server struct {
	board hal.Board
	log   *slog.Logger

	mu     sync.Mutex
	ln     net.Listener
	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

func NewServer(b hal.Board) *Server {
	return &Server{
		board: b,
		log:   slog.Default().With("component", "bridge"),
		conns: make(map[net.Conn]struct{}),
	}
}

func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Close. It always returns a non-nil
// error; after Close it is net.ErrClosed.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return net.ErrClosed
	}
	s.ln = ln
	s.mu.Unlock()
	s.log.Info("bridge server listening", "address", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return net.ErrClosed
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				time.Sleep(50 * time.Millisecond)
				continue
			}
			return err
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return net.ErrClosed
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		go s.handle(conn)
	}
}

func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Close stops accepting, drops every connection and waits for the handlers.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	var err error
	if s.ln != nil {
		err = s.ln.Close()
	}
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	return err
}

func (s *Server) handle(conn net.Conn) {
	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		s.wg.Done()
	}()
	s.log.Debug("bridge client connected", "remote", conn.RemoteAddr().String())

	r := bufio.NewReader(conn)
	for {
		req, payload, err := ReadFrame(r)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.log.Warn("bridge read failed", "remote", conn.RemoteAddr().String(), "error", err)
				_ = WriteFrame(conn, Frame{Cmd: CmdError, B: 1}, nil)
			}
			return
		}
		reply, err := s.apply(req, payload)
		if err != nil {
			s.log.Warn("bridge request rejected", "cmd", req.Cmd, "error", err)
			reply = Frame{Cmd: CmdError, Pin: byte(req.Cmd)}
		}
		if err := WriteFrame(conn, reply, nil); err != nil {
			return
		}
	}
}

func (s *Server) apply(req Frame, payload []byte) (Frame, error) {
	reply := Frame{Cmd: req.Cmd, Pin: req.Pin}
	pin := int(req.Pin)

	switch req.Cmd {
	case CmdPinMode:
		s.board.PinMode(pin, hal.PinMode(req.A))
	case CmdDigitalWrite:
		s.board.DigitalWrite(pin, hal.Level(req.A != 0))
	case CmdDigitalRead:
		if s.board.DigitalRead(pin) == hal.High {
			reply.B = 1
		}
	case CmdAnalogRead:
		reply.B = int32(s.board.AnalogRead(pin))
	case CmdTone:
		s.board.Tone(pin, int(req.A), time.Duration(req.B)*time.Millisecond)
	case CmdNoTone:
		s.board.NoTone(pin)
	case CmdGetKey:
		if k, ok := s.board.GetKey(); ok {
			reply.B = int32(k)
		}
	case CmdTemperature:
		reply.B = toCenti(s.board.ReadTemperature())
	case CmdHumidity:
		reply.B = toCenti(s.board.ReadHumidity())
	case CmdClear:
		s.board.Clear()
	case CmdSetCursor:
		s.board.SetCursor(int(req.A), int(req.B))
	case CmdPrint:
		s.board.Print(string(payload))
	default:
		return Frame{}, ErrUnknownCommand
	}
	return reply, nil
}
