package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/img-to-ascii/internal/config"
	"github.com/ironsheep/img-to-ascii/internal/convert"
	"github.com/ironsheep/img-to-ascii/internal/imaging"
	"github.com/ironsheep/img-to-ascii/internal/render"
	"github.com/ironsheep/img-to-ascii/internal/sink"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "ascii_render").
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
// Tool execution errors return a JSON-RPC error response with code -32000
// whose data is the "<kind>: <cause>" line of the failure.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", describe(err))
	}

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

func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "ascii_geometry":
		return s.handleASCIIGeometry(args)
	case "ascii_render":
		return s.handleASCIIRender(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// describe prefixes err with its conversion kind when it has one.
func describe(err error) string {
	if k := convert.Classify(err); k != convert.KindUnknown {
		return fmt.Sprintf("%s: %v", k, err)
	}
	return err.Error()
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Rendering Handlers ===

type asciiArgs struct {
	Path        string `json:"path"`
	Mode        string `json:"mode"`
	Compression int    `json:"compression"`
	MaxColumns  int    `json:"max_columns"`
	Repeat      int    `json:"repeat"`
}

// strategy resolves the rendering strategy for an image width pixels wide.
func (a asciiArgs) strategy(width int, swap, whitespace bool) (render.Strategy, error) {
	mode, err := render.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	c := a.Compression
	if c == 0 && a.MaxColumns > 0 {
		c = config.CompressionFor(width, a.MaxColumns)
	}
	return render.NewStrategy(render.Config{
		Mode:        mode,
		Compression: c,
		Repeat:      a.Repeat,
		Swap:        swap,
		Whitespace:  whitespace,
	})
}

// GeometryResult describes the frame an image would produce.
type GeometryResult struct {
	Mode        string `json:"mode"`
	Compression int    `json:"compression"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	// DisplayColumns is the terminal width of one line: Columns times the
	// mode's repeat.
	DisplayColumns int `json:"display_columns"`
}

func (s *Server) handleASCIIGeometry(args json.RawMessage) (interface{}, error) {
	var a asciiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	dims, err := imaging.GetDimensions(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	st, err := a.strategy(dims.Width, false, false)
	if err != nil {
		return nil, err
	}
	rows, cols, err := render.Geometry(dims.Width, dims.Height, st.Spec())
	if err != nil {
		return nil, err
	}
	return &GeometryResult{
		Mode:           st.Mode().String(),
		Compression:    st.Spec().Compression,
		Rows:           rows,
		Columns:        cols,
		DisplayColumns: cols * st.Repeat(),
	}, nil
}

type asciiRenderArgs struct {
	asciiArgs
	Format     string          `json:"format"`
	Swap       bool            `json:"swap"`
	Whitespace bool            `json:"whitespace"`
	Width      int             `json:"width"`
	Crop       *imaging.Region `json:"crop"`
	Invert     bool            `json:"invert"`
}

// RenderResult holds one rendered frame.
type RenderResult struct {
	Mode        string `json:"mode"`
	Format      string `json:"format"`
	Compression int    `json:"compression"`
	Rows        int    `json:"rows"`
	Width       int    `json:"width"`
	Output      string `json:"output"`
}

func (s *Server) handleASCIIRender(args json.RawMessage) (interface{}, error) {
	var a asciiRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = "text"
	}
	if a.Format != "text" && a.Format != "html" {
		return nil, fmt.Errorf("%w: unknown format %q", render.ErrUnsupportedConfiguration, a.Format)
	}

	adj := imaging.Adjustments{Crop: a.Crop, Width: a.Width, Invert: a.Invert}
	if err := adj.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", render.ErrUnsupportedConfiguration, err)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err = imaging.Preprocess(img, adj)
	if err != nil {
		return nil, fmt.Errorf("failed to preprocess image: %w: %w", render.ErrUnsupportedConfiguration, err)
	}
	raster := imaging.NewRaster(img)

	st, err := a.strategy(raster.Width(), a.Swap, a.Whitespace)
	if err != nil {
		return nil, err
	}
	frame, err := render.NewRenderer(st).Render(raster)
	if err != nil {
		return nil, err
	}

	out := frame.Text()
	if a.Format == "html" {
		var buf bytes.Buffer
		if err := sink.EncodeHTML(&buf, frame); err != nil {
			return nil, err
		}
		out = buf.String()
	}

	return &RenderResult{
		Mode:        frame.Mode.String(),
		Format:      a.Format,
		Compression: st.Spec().Compression,
		Rows:        len(frame.Lines),
		Width:       frame.Width(),
		Output:      out,
	}, nil
}
