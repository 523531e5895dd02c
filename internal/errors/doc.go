// Package errors provides structured, actionable diagnostics for multislider.
//
// Every diagnostic has a registered code (e.g., "E201") that maps to a
// category, a short message, a longer detail and a documentation URL.
// Diagnostics are values, never panics: the slider core only reports them
// through slog, and the command line prints them with Format.
//
// # Error Categories
//
//   - interaction: pointer handling and callback wiring
//   - geometry: track lookup and bounds resolution
//   - props: host-supplied widget configuration
//   - config: multislider.yaml loading and validation
//   - assets: icon storage
//   - transport: the demo WebSocket channel
//
// # Usage
//
//	err := errors.New("E201").
//	    WithDetail("slider \"volume\" is interactive").
//	    WithSuggestion("Set Callbacks.OnSlide or mark the slider ReadOnly")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: No slide callback provided, but slider is not read-only
//	//
//	//   slider "volume" is interactive
//	//
//	//   Hint: Set Callbacks.OnSlide or mark the slider ReadOnly
//	//
//	//   Learn more: https://multislider.dev/docs/errors/E201
package errors
