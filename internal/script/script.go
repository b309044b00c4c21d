// Package script runs Lua scripts that convert Game Genie codes.
//
// Scripts can access the converter as the global table genie or by calling
// require("genie"). The table provides:
//
//	genie.decode(system, code)                     -> table or nil, error
//	genie.encode(system, address, value[, compare]) -> code or nil, error
//	genie.systems()                                -> list of system names
//
// Decoded tables contain the fields system, address, value, text and compare
// if the code carries one.
package script

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogolib/log"
	lua "github.com/yuin/gopher-lua"
)

const moduleName = "genie"

// Engine is a Lua runtime with the genie module loaded.
type Engine struct {
	logger *log.Logger
	state  *lua.LState
	writer io.Writer
}

// New creates a new script engine, print output of scripts is written to
// the writer. Running scripts are stopped when the context is cancelled.
func New(ctx context.Context, logger *log.Logger, writer io.Writer) *Engine {
	e := &Engine{
		logger: logger,
		state:  lua.NewState(),
		writer: writer,
	}

	e.state.SetContext(ctx)
	e.state.PreloadModule(moduleName, loadModule)
	e.state.SetGlobal(moduleName, newModule(e.state))
	e.state.SetGlobal("print", e.state.NewFunction(e.print))
	return e
}

// Close releases the Lua runtime.
func (e *Engine) Close() {
	e.state.Close()
}

// RunFile runs the script file.
func (e *Engine) RunFile(path string) error {
	e.logger.Debug("Running script", log.String("file", path))
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// RunString runs the script source.
func (e *Engine) RunString(source string) error {
	if err := e.state.DoString(source); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

func (e *Engine) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, top)
	for i := 1; i <= top; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	if _, err := fmt.Fprintln(e.writer, strings.Join(parts, "\t")); err != nil {
		L.RaiseError("writing output: %s", err)
	}
	return 0
}

var exports = map[string]lua.LGFunction{
	"decode":  decode,
	"encode":  encode,
	"systems": systems,
}

func loadModule(L *lua.LState) int {
	L.Push(newModule(L))
	return 1
}

func newModule(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), exports)
}

func decode(L *lua.LState) int {
	system, err := genie.ParseSystem(L.CheckString(1))
	if err != nil {
		return pushError(L, err)
	}

	raw, err := genie.DecodeString(system, L.CheckString(2))
	if err != nil {
		return pushError(L, err)
	}

	tbl := L.NewTable()
	tbl.RawSetString("system", lua.LString(system.String()))
	tbl.RawSetString("address", lua.LNumber(raw.Address()))
	tbl.RawSetString("value", lua.LNumber(raw.Value()))
	if raw.HasCompare() {
		tbl.RawSetString("compare", lua.LNumber(raw.Compare()))
	}
	tbl.RawSetString("text", lua.LString(raw.String()))
	L.Push(tbl)
	return 1
}

func encode(L *lua.LState) int {
	system, err := genie.ParseSystem(L.CheckString(1))
	if err != nil {
		return pushError(L, err)
	}

	address := checkUint32(L, 2)
	value := checkUint32(L, 3)

	var raw genie.RawCode
	if L.GetTop() >= 4 && L.Get(4) != lua.LNil {
		raw, err = genie.NewRawCodeWithCompare(system, address, value, checkUint32(L, 4))
	} else {
		raw, err = genie.NewRawCode(system, address, value)
	}
	if err != nil {
		return pushError(L, err)
	}

	L.Push(lua.LString(genie.Encode(raw).String()))
	return 1
}

func systems(L *lua.LState) int {
	tbl := L.NewTable()
	for _, system := range genie.Systems() {
		tbl.Append(lua.LString(system.String()))
	}
	L.Push(tbl)
	return 1
}

func checkUint32(L *lua.LState, n int) uint32 {
	value := L.CheckInt64(n)
	if value < 0 || value > math.MaxUint32 {
		L.ArgError(n, "value out of range")
	}
	return uint32(value)
}

func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}
