package fsm

import (
	"context"
	"math"
	"time"

	"github.com/R3DPanda1/envmon/monitor/clock"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

const DefaultAlarmPoll = 100 * time.Millisecond

// CriticalSection is the one blocking region of the machine. Hold does not
// return until the climate is back in range or ctx is done; nothing else is
// serviced meanwhile.
type CriticalSection struct {
	climate hal.Climate
	clock   clock.Clock
	poll    time.Duration
}

type HoldResult struct {
	Polls    int
	Faults   int
	Duration time.Duration
}

func NewCriticalSection(climate hal.Climate, c clock.Clock, poll time.Duration) *CriticalSection {
	if poll <= 0 {
		poll = DefaultAlarmPoll
	}
	return &CriticalSection{climate: climate, clock: c, poll: poll}
}

func (cs *CriticalSection) Hold(ctx context.Context) (HoldResult, error) {
	start := cs.clock.Now()
	var res HoldResult
	for {
		h := cs.climate.ReadHumidity()
		t := cs.climate.ReadTemperature()
		res.Polls++
		if math.IsNaN(t) || math.IsNaN(h) {
			res.Faults++
		}
		if climateSafe(t, h) {
			res.Duration = cs.clock.Now() - start
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			res.Duration = cs.clock.Now() - start
			return res, err
		}
		cs.clock.Sleep(cs.poll)
	}
}
