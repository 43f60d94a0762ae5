package scenario

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dop251/goja"
)

// newRuntime creates a goja Runtime with the helpers every scenario can use
func newRuntime(name string, state *State) *goja.Runtime {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	logger := slog.Default().With("component", "scenario", "scenario", name)
	logFn := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, a := range call.Arguments {
			parts[i] = a.String()
		}
		logger.Info(strings.Join(parts, " "))
		return goja.Undefined()
	}

	console := vm.NewObject()
	console.Set("log", logFn)
	vm.Set("console", console)
	vm.Set("log", logFn)

	injectStateHelpers(vm, state)
	return vm
}

// injectStateHelpers installs getState(name) and setState(name, value)
func injectStateHelpers(vm *goja.Runtime, state *State) {
	vm.Set("getState", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(vm.NewTypeError("getState requires a name argument"))
		}
		value := state.GetVariable(call.Argument(0).String())
		if value == nil {
			return goja.Null()
		}
		return vm.ToValue(value)
	})

	vm.Set("setState", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("setState requires name and value arguments"))
		}
		state.SetVariable(call.Argument(0).String(), call.Argument(1).Export())
		return goja.Undefined()
	})
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected number, got %T", ErrInvalidReturnType, v)
	}
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		return b != 0, nil
	case float64:
		return b != 0, nil
	default:
		return false, fmt.Errorf("%w: expected boolean, got %T", ErrInvalidReturnType, v)
	}
}
