package pacing

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// luaModel evaluates a Lua chunk defining predict(speed) -> fps.
//
// A fresh Lua state is created per prediction and closed afterwards,
// matching the snapshot semantics of the model string: there is no
// live handle a concurrent model replacement could race against.
type luaModel struct {
	source string
}

// Predict runs the chunk and calls its predict function.
func (m luaModel) Predict(speed float64) (float64, error) {
	L := lua.NewState()
	defer L.Close()

	// Pacing models are pure math; remove the chunk-loading escape
	// hatches before running untrusted model text.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	if err := L.DoString(m.source); err != nil {
		return 0, fmt.Errorf("%w: lua: %v", ErrMalformedModel, err)
	}

	fn, ok := L.GetGlobal("predict").(*lua.LFunction)
	if !ok {
		return 0, fmt.Errorf("%w: lua model defines no predict function", ErrModelInference)
	}

	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(speed)); err != nil {
		return 0, fmt.Errorf("%w: lua predict: %v", ErrMalformedModel, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: lua predict returned %s", ErrModelInference, ret.Type())
	}
	return float64(n), nil
}
