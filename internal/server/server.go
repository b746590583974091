package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/hsv-picker-mcp/internal/config"
	"github.com/ironsheep/hsv-picker-mcp/internal/logger"
	"github.com/ironsheep/hsv-picker-mcp/internal/picker"
	"github.com/ironsheep/hsv-picker-mcp/internal/widget"
)

// ServerName is reported during the initialize handshake.
const ServerName = "hsv-picker-mcp"

// ColorChangedMethod is the notification sent for every notified change.
const ColorChangedMethod = "notifications/picker/color_changed"

// Server handles MCP protocol communication for one picker.
type Server struct {
	picker  *picker.Picker
	cfg     *config.Config
	log     *logger.Logger
	version string

	pending []MCPNotification
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a server around a fresh picker built from cfg. A nil cfg
// selects config.Default; log may be nil.
func New(cfg *config.Config, log *logger.Logger, version string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		picker:  picker.New(cfg.Picker, log),
		cfg:     cfg,
		log:     log,
		version: version,
	}
	s.picker.OnChange(s.queueChange)
	return s
}

// Picker exposes the picker the server drives.
func (s *Server) Picker() *picker.Picker { return s.picker }

// Run serves MCP on stdin and stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to
// w. Change notifications produced while handling a request are written
// after its response.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Error(err, "failed to parse request")
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.log.Error(err, "failed to encode response")
			}
		}
		for _, n := range s.drainNotifications() {
			if err := encoder.Encode(n); err != nil {
				s.log.Error(err, "failed to encode notification")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// ColorChangedParams is the payload of a color_changed notification.
type ColorChangedParams struct {
	Widget  string        `json:"widget,omitempty"`
	Origin  string        `json:"origin"`
	Initial bool          `json:"initial"`
	Color   ColorResult   `json:"color"`
	Fields  picker.Fields `json:"fields"`
}

func (s *Server) queueChange(ch widget.Change) {
	s.pending = append(s.pending, MCPNotification{
		JSONRPC: "2.0",
		Method:  ColorChangedMethod,
		Params: ColorChangedParams{
			Widget:  string(ch.Widget),
			Origin:  ch.Origin.String(),
			Initial: ch.Initial,
			Color:   newColorResult(ch.Color),
			Fields:  s.picker.Fields(),
		},
	})
}

func (s *Server) drainNotifications() []MCPNotification {
	out := s.pending
	s.pending = nil
	return out
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    ServerName,
				"version": s.version,
			},
		},
	}
}
