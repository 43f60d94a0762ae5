// Package gate implements the keypad access gate that guards the monitor.
package gate

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

const (
	CredentialLength   = 4
	DefaultMaxAttempts = 3
	DefaultCredential  = "0690"

	SubmitKey hal.Key = '#'
	ClearKey  hal.Key = '*'

	PromptText  = "Enter password:"
	WelcomeText = "Welcome"
	ErrorText   = "Error attempt "
	LockoutText = "Locked out"
)

var (
	// ErrInvalidCredential is returned when the configured credential is not
	// CredentialLength digits.
	ErrInvalidCredential = errors.New("credential must be 4 digits")
	// ErrInvalidMaxAttempts is returned for a non-positive attempt limit.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)

// Outcome is what a single key did to the gate.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDigit
	OutcomeIgnored
	OutcomeCleared
	OutcomeGranted
	OutcomeDenied
	OutcomeLockedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDigit:
		return "digit"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeCleared:
		return "cleared"
	case OutcomeGranted:
		return "granted"
	case OutcomeDenied:
		return "denied"
	case OutcomeLockedOut:
		return "locked_out"
	default:
		return "unknown"
	}
}

// Result reports the outcome of Feed together with the gate counters after it.
type Result struct {
	Outcome  Outcome
	Entered  int // digits currently buffered
	Failures int // failed validations since the last reset
}

// Gate accumulates a credential attempt and validates it. It is not safe for
// concurrent use; the state machine loop owns it.
type Gate struct {
	credential  []byte
	maxAttempts int
	attempt     []byte
	failures    int
	display     hal.Display
}

// New validates the credential and attempt limit and returns a gate
// writing to display. It does not draw the prompt; call Reset for that.
func New(credential string, maxAttempts int, display hal.Display) (*Gate, error) {
	if len(credential) != CredentialLength || strings.IndexFunc(credential, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return nil, ErrInvalidCredential
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxAttempts, maxAttempts)
	}
	return &Gate{
		credential:  []byte(credential),
		maxAttempts: maxAttempts,
		attempt:     make([]byte, 0, CredentialLength),
		display:     display,
	}, nil
}

// Feed consumes one key. ok=false means no key was pressed.
func (g *Gate) Feed(key hal.Key, ok bool) Result {
	if !ok || key == hal.NoKey {
		return g.result(OutcomeNone)
	}

	switch {
	case key == SubmitKey:
		return g.submit()

	case key == ClearKey:
		g.attempt = g.attempt[:0]
		g.prompt()
		return g.result(OutcomeCleared)

	case key.IsDigit():
		if len(g.attempt) >= CredentialLength {
			return g.result(OutcomeIgnored)
		}
		g.attempt = append(g.attempt, byte(key))
		g.display.SetCursor(0, 1)
		g.display.Print(Mask(len(g.attempt)))
		return g.result(OutcomeDigit)

	default:
		return g.result(OutcomeIgnored)
	}
}

func (g *Gate) submit() Result {
	if len(g.attempt) == CredentialLength && subtle.ConstantTimeCompare(g.attempt, g.credential) == 1 {
		g.attempt = g.attempt[:0]
		g.failures = 0
		g.display.Clear()
		g.display.Print(WelcomeText)
		slog.Info("access granted", "component", "gate")
		return g.result(OutcomeGranted)
	}

	g.failures++
	g.attempt = g.attempt[:0]
	g.display.Clear()
	g.display.Print(ErrorText + strconv.Itoa(g.failures))
	slog.Warn("access denied", "component", "gate", "failures", g.failures, "max", g.maxAttempts)

	if g.failures >= g.maxAttempts {
		g.display.Clear()
		g.display.Print(LockoutText)
		slog.Warn("access locked out", "component", "gate", "failures", g.failures)
		return g.result(OutcomeLockedOut)
	}
	return g.result(OutcomeDenied)
}

// Reset clears the attempt and the failure counter and re-prompts.
func (g *Gate) Reset() {
	g.attempt = g.attempt[:0]
	g.failures = 0
	g.prompt()
}

func (g *Gate) prompt() {
	g.display.Clear()
	g.display.Print(PromptText)
}

func (g *Gate) Entered() int  { return len(g.attempt) }
func (g *Gate) Failures() int { return g.failures }
func (g *Gate) MaxAttempts() int {
	return g.maxAttempts
}

func (g *Gate) result(o Outcome) Result {
	return Result{Outcome: o, Entered: len(g.attempt), Failures: g.failures}
}

// Mask returns n asterisks.
func Mask(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("*", n)
}
