// Package server implements the MCP (Model Context Protocol) server that
// drives an HSV(A) color picker.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses and notifications on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color:
//   - picker_get_color: Current color in every representation
//   - picker_set_color: Programmatic write, optionally notifying
//   - picker_preview_input: Hex, RGB and alpha percentage fields
//
// Pointer input:
//   - picker_pointer: One press, move or release event
//   - picker_gesture: A full drag along a path
//
// Layout and rendering:
//   - picker_resize: Change a widget's pixel size
//   - picker_alpha_panel: Alpha slider visibility and caption
//   - picker_render: Widget raster as base64 PNG
//   - picker_sample_color: Pixel colors of a rendered widget
//
// Persistence:
//   - picker_snapshot: Flat state for recreating the picker
//   - picker_restore: Apply a snapshot silently
//
// # Notifications
//
// Every change the picker reports to its observer (user drags, and
// programmatic writes with notify set) is queued while a request is handled
// and written as a notifications/picker/color_changed message right after
// that request's response. Relays between widgets are never reported.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
