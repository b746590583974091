package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
	"github.com/ironsheep/hsv-picker-mcp/internal/imaging"
	"github.com/ironsheep/hsv-picker-mcp/internal/picker"
	"github.com/ironsheep/hsv-picker-mcp/internal/widget"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "picker_get_color", "picker_pointer").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	log := s.log.WithFields(map[string]any{"tool": params.Name})
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Warn(err.Error())
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.Debug("tool call handled")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Color
	case "picker_get_color":
		return s.handleGetColor(args)
	case "picker_set_color":
		return s.handleSetColor(args)
	case "picker_preview_input":
		return s.handlePreviewInput(args)

	// Pointer input
	case "picker_pointer":
		return s.handlePointer(args)
	case "picker_gesture":
		return s.handleGesture(args)

	// Layout and rendering
	case "picker_resize":
		return s.handleResize(args)
	case "picker_alpha_panel":
		return s.handleAlphaPanel(args)
	case "picker_render":
		return s.handleRender(args)
	case "picker_sample_color":
		return s.handleSampleColor(args)

	// Persistence
	case "picker_snapshot":
		return s.handleSnapshot(args)
	case "picker_restore":
		return s.handleRestore(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ColorResult reports a color in every form the picker exposes.
type ColorResult struct {
	ARGB         uint32    `json:"argb"`
	Hex          string    `json:"hex"`
	HSV          hsv.Color `json:"hsv"`
	AlphaPercent int       `json:"alpha_percent"`
}

func newColorResult(c hsv.Color) ColorResult {
	return ColorResult{
		ARGB:         c.ARGB(),
		Hex:          c.String(),
		HSV:          c,
		AlphaPercent: c.AlphaPercent(),
	}
}

func parseWidget(name string) (widget.Kind, error) {
	kind, err := widget.ParseKind(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", picker.ErrUnknownWidget, name)
	}
	return kind, nil
}

// === Color Handlers ===

func (s *Server) handleGetColor(json.RawMessage) (interface{}, error) {
	return newColorResult(s.picker.Color()), nil
}

type hsvArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
	A *int    `json:"a"`
}

type setColorArgs struct {
	Hex    string   `json:"hex"`
	ARGB   *uint32  `json:"argb"`
	HSV    *hsvArgs `json:"hsv"`
	Notify bool     `json:"notify"`
}

func (s *Server) handleSetColor(args json.RawMessage) (interface{}, error) {
	var a setColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var c hsv.Color
	switch {
	case a.Hex != "":
		parsed, err := hsv.ParseHex(a.Hex)
		if err != nil {
			return nil, err
		}
		c = parsed
	case a.ARGB != nil:
		c = hsv.FromARGB(*a.ARGB)
	case a.HSV != nil:
		alpha := hsv.MaxAlpha
		if a.HSV.A != nil {
			alpha = *a.HSV.A
		}
		if alpha < 0 || alpha > hsv.MaxAlpha {
			return nil, fmt.Errorf("%w: alpha %d not in [0,255]", picker.ErrOutOfRange, alpha)
		}
		c = hsv.New(a.HSV.H, a.HSV.S, a.HSV.V, uint8(alpha))
	default:
		return nil, errors.New("one of hex, argb or hsv is required")
	}

	s.picker.SetColor(c, a.Notify)
	return newColorResult(s.picker.Color()), nil
}

type previewInputArgs struct {
	Hex          string `json:"hex"`
	Red          *int   `json:"red"`
	Green        *int   `json:"green"`
	Blue         *int   `json:"blue"`
	AlphaPercent *int   `json:"alpha_percent"`
}

func (s *Server) handlePreviewInput(args json.RawMessage) (interface{}, error) {
	var a previewInputArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	applied := false
	if a.Hex != "" {
		if err := s.picker.SetHex(a.Hex); err != nil {
			return nil, err
		}
		applied = true
	}
	if a.Red != nil || a.Green != nil || a.Blue != nil {
		cur := s.picker.Fields()
		r, g, b := cur.Red, cur.Green, cur.Blue
		if a.Red != nil {
			r = *a.Red
		}
		if a.Green != nil {
			g = *a.Green
		}
		if a.Blue != nil {
			b = *a.Blue
		}
		if err := s.picker.SetRGB(r, g, b); err != nil {
			return nil, err
		}
		applied = true
	}
	if a.AlphaPercent != nil {
		if err := s.picker.SetAlphaPercent(*a.AlphaPercent); err != nil {
			return nil, err
		}
		applied = true
	}
	if !applied {
		return nil, errors.New("one of hex, red, green, blue or alpha_percent is required")
	}
	return s.picker.Fields(), nil
}

// === Pointer Handlers ===

type pointerArgs struct {
	Widget string  `json:"widget"`
	Action string  `json:"action"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// PointerResult reports the outcome of pointer input.
type PointerResult struct {
	Changed  bool        `json:"changed"`
	Dragging bool        `json:"dragging"`
	Color    ColorResult `json:"color"`
}

func (s *Server) handlePointer(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := parseWidget(a.Widget)
	if err != nil {
		return nil, err
	}

	changed, err := s.picker.Pointer(kind, widget.PointerEvent{Action: widget.Action(a.Action), X: a.X, Y: a.Y})
	if err != nil {
		return nil, err
	}
	w, _ := s.picker.Widget(kind)
	return PointerResult{Changed: changed, Dragging: w.Dragging(), Color: newColorResult(s.picker.Color())}, nil
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type gestureArgs struct {
	Widget string  `json:"widget"`
	Points []point `json:"points"`
}

// handleGesture presses at the first point, moves through the rest and
// releases at the last.
func (s *Server) handleGesture(args json.RawMessage) (interface{}, error) {
	var a gestureArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := parseWidget(a.Widget)
	if err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("gesture needs at least one point")
	}

	events := make([]widget.PointerEvent, 0, len(a.Points)+1)
	events = append(events, widget.PointerEvent{Action: widget.ActionPress, X: a.Points[0].X, Y: a.Points[0].Y})
	for _, p := range a.Points[1:] {
		events = append(events, widget.PointerEvent{Action: widget.ActionMove, X: p.X, Y: p.Y})
	}
	last := a.Points[len(a.Points)-1]
	events = append(events, widget.PointerEvent{Action: widget.ActionRelease, X: last.X, Y: last.Y})

	changed := false
	for _, ev := range events {
		ok, err := s.picker.Pointer(kind, ev)
		if err != nil {
			return nil, err
		}
		changed = changed || ok
	}
	return PointerResult{Changed: changed, Color: newColorResult(s.picker.Color())}, nil
}

// === Layout and Rendering Handlers ===

type resizeArgs struct {
	Widget string `json:"widget"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ResizeResult reports a widget's layout after a resize.
type ResizeResult struct {
	Widget string `json:"widget"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Valid  bool   `json:"valid"`
}

func (s *Server) handleResize(args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := parseWidget(a.Widget)
	if err != nil {
		return nil, err
	}
	if err := s.picker.Resize(kind, a.Width, a.Height); err != nil {
		return nil, err
	}
	w, _ := s.picker.Widget(kind)
	return ResizeResult{Widget: a.Widget, Width: a.Width, Height: a.Height, Valid: w.Valid()}, nil
}

type alphaPanelArgs struct {
	Visible *bool   `json:"visible"`
	Caption *string `json:"caption"`
}

// AlphaPanelResult reports the alpha slider's visibility and caption.
type AlphaPanelResult struct {
	Visible bool    `json:"visible"`
	Caption *string `json:"caption"`
}

func (s *Server) handleAlphaPanel(args json.RawMessage) (interface{}, error) {
	var a alphaPanelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Visible != nil {
		s.picker.SetAlphaVisible(*a.Visible)
	}
	if a.Caption != nil {
		s.picker.SetAlphaCaption(a.Caption)
	}
	snap := s.picker.Snapshot()
	return AlphaPanelResult{Visible: snap.AlphaPanelVisible, Caption: snap.AlphaCaptionText}, nil
}

type renderArgs struct {
	Widget string          `json:"widget"`
	Scale  float64         `json:"scale"`
	Region *imaging.Region `json:"region"`
}

// RenderResult is a rendered widget. Image is nil when nothing was drawn.
type RenderResult struct {
	Widget string                `json:"widget"`
	Drawn  bool                  `json:"drawn"`
	Image  *imaging.EncodeResult `json:"image,omitempty"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = s.cfg.Render.Scale
	}
	kind, err := parseWidget(a.Widget)
	if err != nil {
		return nil, err
	}

	img, drawn, err := s.picker.Render(kind)
	if err != nil {
		return nil, err
	}
	if !drawn {
		return RenderResult{Widget: a.Widget}, nil
	}

	var enc *imaging.EncodeResult
	if a.Region != nil {
		enc, err = imaging.Crop(img, *a.Region, a.Scale)
	} else {
		enc, err = imaging.Encode(img, a.Scale)
	}
	if err != nil {
		return nil, err
	}
	return RenderResult{Widget: a.Widget, Drawn: true, Image: enc}, nil
}

type sampleColorArgs struct {
	Widget string                 `json:"widget"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := parseWidget(a.Widget)
	if err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("at least one point is required")
	}

	img, drawn, err := s.picker.Render(kind)
	if err != nil {
		return nil, err
	}
	if !drawn {
		return nil, fmt.Errorf("widget %s is hidden or has no valid size", kind)
	}
	return imaging.SampleColorsMulti(img, a.Points)
}

// === Persistence Handlers ===

type snapshotArgs struct {
	Format string `json:"format"`
}

// SnapshotResult carries the snapshot and, for the yaml format, its
// serialized form.
type SnapshotResult struct {
	Snapshot hsv.Snapshot `json:"snapshot"`
	YAML     string       `json:"yaml,omitempty"`
}

func (s *Server) handleSnapshot(args json.RawMessage) (interface{}, error) {
	var a snapshotArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	snap := s.picker.Snapshot()
	switch a.Format {
	case "", "json":
		return SnapshotResult{Snapshot: snap}, nil
	case "yaml":
		out, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return SnapshotResult{Snapshot: snap, YAML: string(out)}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot format: %s", a.Format)
	}
}

type restoreArgs struct {
	Snapshot *hsv.Snapshot `json:"snapshot"`
	YAML     string        `json:"yaml"`
}

func (s *Server) handleRestore(args json.RawMessage) (interface{}, error) {
	var a restoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var snap hsv.Snapshot
	switch {
	case a.Snapshot != nil:
		snap = *a.Snapshot
	case a.YAML != "":
		if err := yaml.Unmarshal([]byte(a.YAML), &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
	default:
		return nil, errors.New("one of snapshot or yaml is required")
	}

	s.picker.Restore(snap)
	return newColorResult(s.picker.Color()), nil
}
