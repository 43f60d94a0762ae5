package bridge

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/R3DPanda1/envmon/monitor/components/board"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

func startServer(t *testing.T, b hal.Board) (*Server, string, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := NewServer(b)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()
	return srv, ln.Addr().String(), done
}

func dial(t *testing.T, addr string) *Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, Config{Address: addr, IOTimeout: time.Second, MaxRetries: 3})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClientDrivesBoard(t *testing.T) {
	sim := board.NewSim(0)
	srv, addr, _ := startServer(t, sim)
	defer srv.Close()
	c := dial(t, addr)

	c.Clear()
	c.Print("Ambient monitor")
	c.SetCursor(0, 1)
	c.Print("T:22.00C H:40.00")
	lines := sim.Lines()
	if lines[0] != "Ambient monitor" || lines[1] != "T:22.00C H:40.00" {
		t.Errorf("unexpected display %q", lines)
	}

	c.PinMode(hal.PinLEDGreen, hal.Output)
	c.DigitalWrite(hal.PinLEDGreen, hal.High)
	if !sim.Snapshot().LEDs["green"] {
		t.Error("expected green LED on")
	}

	sim.SetDigital(hal.PinInfrared, hal.High)
	if c.DigitalRead(hal.PinInfrared) != hal.High {
		t.Error("expected infrared high")
	}

	sim.SetAnalog(hal.PinPhotoResistor, 512)
	if got := c.AnalogRead(hal.PinPhotoResistor); got != 512 {
		t.Errorf("expected 512, got %d", got)
	}

	sim.SetClimate(23.45, 41.5)
	if got := c.ReadTemperature(); got != 23.45 {
		t.Errorf("expected 23.45, got %v", got)
	}
	if got := c.ReadHumidity(); got != 41.5 {
		t.Errorf("expected 41.5, got %v", got)
	}
	sim.SetFault(true)
	if !math.IsNaN(c.ReadTemperature()) {
		t.Error("expected NaN while the sensor faults")
	}

	c.Tone(hal.PinBuzzer, 1000, 250*time.Millisecond)
	if bz := sim.Snapshot().Buzzer; !bz.Active || bz.FreqHz != 1000 || bz.Duration != 250*time.Millisecond {
		t.Errorf("unexpected buzzer %+v", bz)
	}
	c.NoTone(hal.PinBuzzer)
	if sim.Snapshot().Buzzer.Active {
		t.Error("expected buzzer off")
	}
}

func TestClientKeys(t *testing.T) {
	sim := board.NewSim(0)
	srv, addr, _ := startServer(t, sim)
	defer srv.Close()
	c := dial(t, addr)

	if _, ok := c.GetKey(); ok {
		t.Fatal("expected no key")
	}
	_ = sim.PressKeys("0#")
	for _, want := range "0#" {
		k, ok := c.GetKey()
		if !ok || k != hal.Key(want) {
			t.Errorf("expected %c, got %q ok=%v", want, k, ok)
		}
	}
}

func TestClientDegradesWhenBridgeGoesAway(t *testing.T) {
	sim := board.NewSim(0)
	srv, addr, done := startServer(t, sim)
	c := dial(t, addr)

	if err := srv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := <-done; !errors.Is(err, net.ErrClosed) {
		t.Errorf("expected net.ErrClosed from Serve, got %v", err)
	}

	for i := 0; i < 5; i++ {
		if !math.IsNaN(c.ReadTemperature()) {
			t.Fatal("expected NaN from an unreachable bridge")
		}
	}
	if c.DigitalRead(hal.PinHall) != hal.Low {
		t.Error("expected low from an unreachable bridge")
	}
	if c.AnalogRead(hal.PinPhotoResistor) != -1 {
		t.Error("expected -1 from an unreachable bridge")
	}
	if _, ok := c.GetKey(); ok {
		t.Error("expected no key from an unreachable bridge")
	}
	if c.BreakerState() != gobreaker.StateOpen {
		t.Errorf("expected open breaker, got %v", c.BreakerState())
	}
}

func TestDialGivesUp(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	_, err = Dial(context.Background(), Config{Address: addr, MaxRetries: 2, MaxElapsed: time.Second})
	if err == nil {
		t.Fatal("expected dial to fail")
	}
}

func TestServerRejectsUnknownCommand(t *testing.T) {
	srv, addr, _ := startServer(t, board.NewSim(0))
	defer srv.Close()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(time.Second))

	if err := WriteFrame(conn, Frame{Cmd: Command(0x42)}, nil); err != nil {
		t.Fatal(err)
	}
	reply, _, err := ReadFrame(conn)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Cmd != CmdError {
		t.Errorf("expected error reply, got %v", reply.Cmd)
	}
}
