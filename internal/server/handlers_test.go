package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/ironsheep/hsv-picker-mcp/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Picker.PaddingDP = 0
	cfg.Picker.BorderWidthDP = 0
	cfg.Picker.InitialColor = "#FFFF0000"
	return New(cfg, nil, "test")
}

// callTool runs a tools/call request and decodes the text content into out.
func callTool(t *testing.T, s *Server, name string, args interface{}, out interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{"name": name, "arguments": args}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: paramsJSON})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil || out == nil {
		return resp
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content: %v", content)
	}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), out); err != nil {
		t.Fatalf("decode tool result: %v", err)
	}
	return resp
}

func mustSucceed(t *testing.T, resp *MCPResponse) {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
}

func mustFail(t *testing.T, resp *MCPResponse, contains string) {
	t.Helper()
	if resp.Error == nil {
		t.Fatal("expected an error")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("code: got %d, want -32000", resp.Error.Code)
	}
	if data, _ := resp.Error.Data.(string); !strings.Contains(data, contains) {
		t.Errorf("error data %q does not mention %q", data, contains)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: json.RawMessage(`[1]`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602, got %+v", resp.Error)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer(t)
	mustFail(t, callTool(t, s, "image_load", map[string]interface{}{}, nil), "unknown tool")
}

func TestGetAndSetColor(t *testing.T) {
	s := newTestServer(t)

	var got ColorResult
	mustSucceed(t, callTool(t, s, "picker_get_color", nil, &got))
	if got.Hex != "#FFFF0000" || got.ARGB != 0xFFFF0000 || got.AlphaPercent != 100 {
		t.Errorf("get_color: %+v", got)
	}

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantHex string
	}{
		{"hex", map[string]interface{}{"hex": "#8000FF00"}, "#8000FF00"},
		{"argb", map[string]interface{}{"argb": uint32(0xFF0000FF)}, "#FF0000FF"},
		{"hsv default alpha", map[string]interface{}{"hsv": map[string]interface{}{"h": 180, "s": 1, "v": 1}}, "#FF00FFFF"},
		{"hsv explicit alpha", map[string]interface{}{"hsv": map[string]interface{}{"h": 0, "s": 0, "v": 1, "a": 0}}, "#00FFFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res ColorResult
			mustSucceed(t, callTool(t, s, "picker_set_color", tt.args, &res))
			if res.Hex != tt.wantHex {
				t.Errorf("got %s, want %s", res.Hex, tt.wantHex)
			}
		})
	}

	if n := len(s.drainNotifications()); n != 0 {
		t.Errorf("silent set_color produced %d notifications", n)
	}

	mustFail(t, callTool(t, s, "picker_set_color", map[string]interface{}{}, nil), "required")
	mustFail(t, callTool(t, s, "picker_set_color", map[string]interface{}{"hex": "#XYZ"}, nil), "invalid hex")
	mustFail(t, callTool(t, s, "picker_set_color", map[string]interface{}{"hsv": map[string]interface{}{"a": 300}}, nil), "out of range")
}

func TestPointerDrag(t *testing.T) {
	s := newTestServer(t)

	var res PointerResult
	mustSucceed(t, callTool(t, s, "picker_pointer", map[string]interface{}{"widget": "hue", "action": "press", "x": 90, "y": 12}, &res))
	if !res.Changed || !res.Dragging || res.Color.HSV.H != 90 {
		t.Errorf("press: %+v", res)
	}

	mustSucceed(t, callTool(t, s, "picker_pointer", map[string]interface{}{"widget": "hue", "action": "move", "x": 180, "y": 12}, &res))
	mustSucceed(t, callTool(t, s, "picker_pointer", map[string]interface{}{"widget": "hue", "action": "release", "x": 180, "y": 12}, &res))
	if res.Dragging || res.Color.ARGB != 0xFF00FFFF {
		t.Errorf("release: %+v", res)
	}
	if n := len(s.drainNotifications()); n != 3 {
		t.Errorf("got %d notifications, want 3", n)
	}

	mustSucceed(t, callTool(t, s, "picker_pointer", map[string]interface{}{"widget": "hue", "action": "move", "x": 10, "y": 12}, &res))
	if res.Changed {
		t.Error("move while idle must be a no-op")
	}

	mustFail(t, callTool(t, s, "picker_pointer", map[string]interface{}{"widget": "preview", "action": "press"}, nil), "unknown widget")
	mustFail(t, callTool(t, s, "picker_pointer", map[string]interface{}{"widget": "hue", "action": "tap"}, nil), "unknown pointer action")
}

func TestGesture_AlphaClamp(t *testing.T) {
	s := newTestServer(t)

	var res PointerResult
	mustSucceed(t, callTool(t, s, "picker_gesture", map[string]interface{}{
		"widget": "alpha",
		"points": []map[string]float64{{"x": -10, "y": 12}},
	}, &res))
	if res.Color.HSV.A != 0 {
		t.Errorf("alpha after left press: %d", res.Color.HSV.A)
	}

	mustSucceed(t, callTool(t, s, "picker_gesture", map[string]interface{}{
		"widget": "alpha",
		"points": []map[string]float64{{"x": 100, "y": 12}, {"x": 300, "y": 12}},
	}, &res))
	if res.Color.HSV.A != 255 {
		t.Errorf("alpha after right drag: %d", res.Color.HSV.A)
	}

	mustFail(t, callTool(t, s, "picker_gesture", map[string]interface{}{"widget": "alpha"}, nil), "at least one point")
}

func TestResizeAndRender(t *testing.T) {
	s := newTestServer(t)

	var render RenderResult
	mustSucceed(t, callTool(t, s, "picker_render", map[string]interface{}{"widget": "satval", "scale": 0.5}, &render))
	if !render.Drawn || render.Image == nil {
		t.Fatalf("render: %+v", render)
	}
	if render.Image.Width != 100 || render.Image.Height != 100 {
		t.Errorf("scaled size: %dx%d", render.Image.Width, render.Image.Height)
	}
	raw, err := base64.StdEncoding.DecodeString(render.Image.ImageBase64)
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("png: %v", err)
	}

	mustSucceed(t, callTool(t, s, "picker_render", map[string]interface{}{
		"widget": "hue",
		"region": map[string]int{"x1": 0, "y1": 0, "x2": 30, "y2": 10},
	}, &render))
	if render.Image.Width != 30 || render.Image.Height != 10 {
		t.Errorf("cropped size: %dx%d", render.Image.Width, render.Image.Height)
	}

	var size ResizeResult
	mustSucceed(t, callTool(t, s, "picker_resize", map[string]interface{}{"widget": "hue", "width": 0, "height": 24}, &size))
	if size.Valid {
		t.Error("zero width must be invalid")
	}

	render = RenderResult{}
	mustSucceed(t, callTool(t, s, "picker_render", map[string]interface{}{"widget": "hue"}, &render))
	if render.Drawn || render.Image != nil {
		t.Errorf("invalid widget rendered: %+v", render)
	}
}

func TestSampleColor(t *testing.T) {
	s := newTestServer(t)

	var res struct {
		Samples []struct {
			Label string `json:"label"`
			Color struct {
				Hex string `json:"hex"`
			} `json:"color"`
		} `json:"samples"`
	}
	mustSucceed(t, callTool(t, s, "picker_sample_color", map[string]interface{}{
		"widget": "satval",
		"points": []map[string]interface{}{{"x": 100, "y": 199, "label": "bottom"}},
	}, &res))
	if len(res.Samples) != 1 || res.Samples[0].Label != "bottom" {
		t.Fatalf("samples: %+v", res.Samples)
	}
	if res.Samples[0].Color.Hex != "#FF000000" {
		t.Errorf("bottom row should be black, got %s", res.Samples[0].Color.Hex)
	}

	mustSucceed(t, callTool(t, s, "picker_alpha_panel", map[string]interface{}{"visible": false}, nil))
	mustFail(t, callTool(t, s, "picker_sample_color", map[string]interface{}{
		"widget": "alpha",
		"points": []map[string]interface{}{{"x": 1, "y": 1}},
	}, nil), "hidden")
}

func TestPreviewInput(t *testing.T) {
	s := newTestServer(t)

	var fields struct {
		Hex          string `json:"hex"`
		Red          int    `json:"red"`
		Green        int    `json:"green"`
		Blue         int    `json:"blue"`
		AlphaPercent int    `json:"alpha_percent"`
	}
	mustSucceed(t, callTool(t, s, "picker_preview_input", map[string]interface{}{"green": 255}, &fields))
	if fields.Hex != "#FFFFFF00" {
		t.Errorf("after green: %+v", fields)
	}

	mustSucceed(t, callTool(t, s, "picker_preview_input", map[string]interface{}{"alpha_percent": 0}, &fields))
	if fields.AlphaPercent != 0 || fields.Hex != "#00FFFF00" {
		t.Errorf("after alpha: %+v", fields)
	}

	if n := len(s.drainNotifications()); n != 2 {
		t.Errorf("preview inputs should notify once each, got %d", n)
	}

	mustFail(t, callTool(t, s, "picker_preview_input", map[string]interface{}{}, nil), "required")
	mustFail(t, callTool(t, s, "picker_preview_input", map[string]interface{}{"alpha_percent": 150}, nil), "out of range")
}

func TestSnapshotRestore(t *testing.T) {
	s := newTestServer(t)
	mustSucceed(t, callTool(t, s, "picker_alpha_panel", map[string]interface{}{"caption": "opacity"}, nil))
	mustSucceed(t, callTool(t, s, "picker_set_color", map[string]interface{}{"hsv": map[string]interface{}{"h": 200, "s": 0.5, "v": 0.25, "a": 64}}, nil))

	var snap SnapshotResult
	mustSucceed(t, callTool(t, s, "picker_snapshot", map[string]interface{}{"format": "yaml"}, &snap))
	if snap.Snapshot.Hue != 200 || snap.Snapshot.Alpha != 64 || !snap.Snapshot.AlphaPanelVisible {
		t.Errorf("snapshot: %+v", snap.Snapshot)
	}
	if !strings.Contains(snap.YAML, "alpha_caption_text: opacity") {
		t.Errorf("yaml: %s", snap.YAML)
	}

	other := newTestServer(t)
	var restored ColorResult
	mustSucceed(t, callTool(t, other, "picker_restore", map[string]interface{}{"yaml": snap.YAML}, &restored))
	if restored.HSV != s.Picker().Color() {
		t.Errorf("restored %+v, want %+v", restored.HSV, s.Picker().Color())
	}
	if n := len(other.drainNotifications()); n != 0 {
		t.Errorf("restore must be silent, got %d notifications", n)
	}

	mustSucceed(t, callTool(t, other, "picker_restore", map[string]interface{}{"snapshot": map[string]interface{}{"alpha": 999, "hue": 10, "sat": 1, "val": 1}}, &restored))
	if restored.HSV.A != 255 {
		t.Errorf("alpha should clamp, got %d", restored.HSV.A)
	}

	mustFail(t, callTool(t, other, "picker_snapshot", map[string]interface{}{"format": "xml"}, nil), "unknown snapshot format")
	mustFail(t, callTool(t, other, "picker_restore", map[string]interface{}{}, nil), "required")
}
