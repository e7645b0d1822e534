package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var modeProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"block", "braille", "color_block", "color_html"},
	"description": "Rendering mode. block and braille emit plain glyphs; color_block and color_html emit colored solid cells",
}

var compressionProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Sampling stride in pixels. Omit or 0 to derive it from max_columns, or 1 when max_columns is also omitted",
}

var maxColumnsProperty = map[string]interface{}{
	"type":        "integer",
	"description": "When compression is omitted, pick the smallest stride that keeps the sampled width below this many pixels",
}

var repeatProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Horizontal glyph repeat per sample (block and color_block only). Defaults to the mode's repeat",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ascii_geometry",
			Description: "Report how many glyph rows and columns an image produces in a mode, and how wide each line is when displayed, without rendering it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"mode":        modeProperty,
					"compression": compressionProperty,
					"max_columns": maxColumnsProperty,
					"repeat":      repeatProperty,
				},
				"required": []string{"path", "mode"},
			},
		},
		{
			Name:        "ascii_render",
			Description: "Render an image as shaded block glyphs, braille dot patterns or colored cells and return the result as plain text or HTML.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"mode":        modeProperty,
					"compression": compressionProperty,
					"max_columns": maxColumnsProperty,
					"repeat":      repeatProperty,
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"text", "html"},
						"description": "Output encoding. Default text. Colored modes lose their color in text output",
						"default":     "text",
					},
					"swap": map[string]interface{}{
						"type":        "boolean",
						"description": "Invert the dark/light convention, as dark-background terminals need (block and braille only)",
					},
					"whitespace": map[string]interface{}{
						"type":        "boolean",
						"description": "Emit a space instead of the blank braille pattern for empty cells (braille only)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Resize the image to this many pixels wide before sampling, keeping aspect ratio",
					},
					"crop": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to render, x2/y2 exclusive. Applied before width",
					},
					"invert": map[string]interface{}{
						"type":        "boolean",
						"description": "Invert pixel colors before sampling",
					},
				},
				"required": []string{"path", "mode"},
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
