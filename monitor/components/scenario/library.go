package scenario

import "sort"

var library = map[string]string{
	// comfortable room, nothing happens
	"steady": `
function Step(t) {
    return {temperature: 22, humidity: 40, lux: 400, infrared: false, hall: false, fault: false};
}
`,

	// temperature ramps 25 -> 45 -> 25 C over ten minutes, humidity follows
	"heatwave": `
var PERIOD = 600;

function Step(t) {
    var phase = t % PERIOD;
    var rise = phase < PERIOD / 2 ? phase : PERIOD - phase;
    return {temperature: 25 + rise / 15, humidity: 35 + rise / 30, lux: 450};
}
`,

	// light fades from 800 to 100 lux over five minutes, then dawn again
	"dusk": `
var PERIOD = 300;

function Step(t) {
    var phase = t % PERIOD;
    return {temperature: 21, humidity: 45, lux: 800 - phase * 700 / PERIOD};
}
`,

	// infrared trips for two seconds every thirty, a magnet passes every
	// forty-five; each new trip is counted in state
	"intruder": `
function Step(t) {
    var ir = (t % 30) < 2;
    var hall = (t % 45) < 2;
    var was = getState("tripped") === true;
    if ((ir || hall) && !was) {
        var hits = (getState("hits") || 0) + 1;
        setState("hits", hits);
        log("intruder", hits, "at", Math.round(t));
    }
    setState("tripped", ir || hall);
    return {infrared: ir, hall: hall};
}
`,
}

// Builtin returns the script of a library scenario.
func Builtin(name string) (string, bool) {
	s, ok := library[name]
	return s, ok
}

// Library lists the library scenario names in order.
func Library() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
