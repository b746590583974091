package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func widgetProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"hue", "satval", "alpha"},
		"description": "Widget to address: hue slider, saturation/value plane or alpha slider",
	}
}

func pointsProperty(description string, labeled bool) map[string]interface{} {
	item := map[string]interface{}{
		"x": map[string]interface{}{"type": "number", "description": "X coordinate in widget pixels"},
		"y": map[string]interface{}{"type": "number", "description": "Y coordinate in widget pixels"},
	}
	if labeled {
		item["x"] = map[string]interface{}{"type": "integer", "description": "X pixel (0-based)"}
		item["y"] = map[string]interface{}{"type": "integer", "description": "Y pixel (0-based)"}
		item["label"] = map[string]interface{}{"type": "string", "description": "Optional label echoed in the result"}
	}
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items": map[string]interface{}{
			"type":       "object",
			"properties": item,
			"required":   []string{"x", "y"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color
		{
			Name:        "picker_get_color",
			Description: "Get the current picker color as packed ARGB, #AARRGGBB hex, HSV components and alpha percentage.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "picker_set_color",
			Description: "Set the picker color programmatically. All widgets redraw; listeners are notified only when notify is true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RGB, #RRGGBB or #AARRGGBB",
					},
					"argb": map[string]interface{}{
						"type":        "integer",
						"description": "Packed 0xAARRGGBB color",
					},
					"hsv": map[string]interface{}{
						"type":        "object",
						"description": "Explicit components: h 0-360, s and v 0-1, optional a 0-255 (default 255)",
						"properties": map[string]interface{}{
							"h": map[string]interface{}{"type": "number"},
							"s": map[string]interface{}{"type": "number"},
							"v": map[string]interface{}{"type": "number"},
							"a": map[string]interface{}{"type": "integer"},
						},
					},
					"notify": map[string]interface{}{
						"type":        "boolean",
						"description": "Emit a color_changed notification. Default false",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "picker_preview_input",
			Description: "Type into the preview editor fields: hex, red/green/blue (0-255) or alpha percentage (0-100). Returns the updated fields.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex":           map[string]interface{}{"type": "string", "description": "#RGB, #RRGGBB or #AARRGGBB"},
					"red":           map[string]interface{}{"type": "integer", "description": "Red channel 0-255"},
					"green":         map[string]interface{}{"type": "integer", "description": "Green channel 0-255"},
					"blue":          map[string]interface{}{"type": "integer", "description": "Blue channel 0-255"},
					"alpha_percent": map[string]interface{}{"type": "integer", "description": "Opacity 0-100"},
				},
			},
		},

		// Pointer input
		{
			Name:        "picker_pointer",
			Description: "Send one pointer event (press, move or release) to a widget. Moves and releases without a preceding press are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"widget": widgetProperty(),
					"action": map[string]interface{}{
						"type": "string",
						"enum": []string{"press", "move", "release"},
					},
					"x": map[string]interface{}{"type": "number", "description": "X coordinate in widget pixels"},
					"y": map[string]interface{}{"type": "number", "description": "Y coordinate in widget pixels"},
				},
				"required": []string{"widget", "action", "x", "y"},
			},
		},
		{
			Name:        "picker_gesture",
			Description: "Drag across a widget: press at the first point, move through the rest and release at the last.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"widget": widgetProperty(),
					"points": pointsProperty("Pointer path, at least one point", false),
				},
				"required": []string{"widget", "points"},
			},
		},

		// Layout and rendering
		{
			Name:        "picker_resize",
			Description: "Change a widget's pixel size. A zero or negative size makes the widget inert until a valid size arrives.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"widget": widgetProperty(),
					"width":  map[string]interface{}{"type": "integer"},
					"height": map[string]interface{}{"type": "integer"},
				},
				"required": []string{"widget", "width", "height"},
			},
		},
		{
			Name:        "picker_alpha_panel",
			Description: "Show or hide the alpha slider and set the caption drawn over it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"visible": map[string]interface{}{"type": "boolean"},
					"caption": map[string]interface{}{"type": "string", "description": "Caption text; empty draws nothing"},
				},
			},
		},
		{
			Name:        "picker_render",
			Description: "Render a widget and return it as base64-encoded PNG. Hidden widgets and invalid sizes report drawn=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"widget": widgetProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Defaults to the configured render scale",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional crop region, x2/y2 exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"widget"},
			},
		},
		{
			Name:        "picker_sample_color",
			Description: "Render a widget and sample the color at one or more pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"widget": widgetProperty(),
					"points": pointsProperty("Pixels to sample", true),
				},
				"required": []string{"widget", "points"},
			},
		},

		// Persistence
		{
			Name:        "picker_snapshot",
			Description: "Capture the state needed to recreate the picker: alpha, hue, sat, val, alpha panel visibility and caption.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":    "string",
						"enum":    []string{"json", "yaml"},
						"default": "json",
					},
				},
			},
		},
		{
			Name:        "picker_restore",
			Description: "Restore a snapshot without notifying listeners.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"snapshot": map[string]interface{}{
						"type":        "object",
						"description": "Snapshot as returned by picker_snapshot",
					},
					"yaml": map[string]interface{}{
						"type":        "string",
						"description": "Snapshot serialized as YAML",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
