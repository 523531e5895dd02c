package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://multislider.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Transport Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryTransport,
		Message:  "WebSocket upgrade failed",
		Detail:   "The demo client could not open the live pointer channel.",
		DocURL:   docBase + "E060",
	},
	"E061": {
		Category: CategoryTransport,
		Message:  "Invalid pointer message",
		Detail:   "A pointer message from the client could not be decoded or names an unknown slider.",
		DocURL:   docBase + "E061",
	},

	// ============================================
	// Configuration Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "multislider.yaml could not be read or parsed.",
		DocURL:   docBase + "E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
		DocURL:   docBase + "E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No multislider.yaml was found at the given path.",
		DocURL:   docBase + "E141",
	},

	// ============================================
	// Interaction Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryInteraction,
		Message:  "No slide callback provided, but slider is not read-only",
		Detail:   "The slider accepts pointer input but has nowhere to report new progress values. Slide attempts will have no effect.",
		DocURL:   docBase + "E201",
	},
	"E202": {
		Category: CategoryGeometry,
		Message:  "Track geometry unavailable",
		Detail:   "The pointer target could not be resolved to a track with a positive width. The event was ignored.",
		DocURL:   docBase + "E202",
	},
	"E203": {
		Category: CategoryProps,
		Message:  "Invalid slider props",
		Detail:   "The legacy slider props could not be decoded.",
		DocURL:   docBase + "E203",
	},
	"E204": {
		Category: CategoryProps,
		Message:  "Active slider out of range",
		Detail:   "The active slider index does not name one of the configured sliders.",
		DocURL:   docBase + "E204",
	},

	// ============================================
	// Asset Errors (E300-E319)
	// ============================================

	"E301": {
		Category: CategoryAssets,
		Message:  "Icon not found",
		Detail:   "The requested dot icon does not exist in the icon store.",
		DocURL:   docBase + "E301",
	},
	"E302": {
		Category: CategoryAssets,
		Message:  "Icon store failure",
		Detail:   "The icon store returned an error while reading an icon.",
		DocURL:   docBase + "E302",
	},

	// ============================================
	// CLI Errors (E400-E419)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Invalid command arguments",
		Detail:   "A flag value is not one the command accepts.",
		DocURL:   docBase + "E401",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
