//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"

	"github.com/peter-r-g/CodeItOut/internal/types"
	"github.com/peter-r-g/CodeItOut/script"
)

func main() {
	js.Global().Set("sandExecute", js.FuncOf(execute))
	js.Global().Set("sandWasmVersion", "0.1.0")
	println("SandScript WASM ready")
	<-make(chan struct{})
}

// execute runs (code: string, debug: bool) in a new Script and returns
// the diagnostics rendered as HTML
func execute(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, debug: bool)",
		}
	}

	code := args[0].String()
	var debug strings.Builder
	opts := []script.Option{}
	if args[1].Bool() {
		opts = append(opts, script.WithDebug(&debug), script.WithTimings())
	}

	_, value, diags, err := script.Execute(code, opts...)
	result := map[string]any{
		"success": err == nil && value != nil,
		"output":  diags.EmitAllToHTML("<script>", code),
		"debug":   debug.String(),
	}
	if err != nil {
		result["error"] = err.Error()
	}
	if value != nil && !value.IsNothing() {
		result["value"] = types.Format(value.Raw())
	}
	return result
}
