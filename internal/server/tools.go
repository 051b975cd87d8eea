package server

import "github.com/ironsheep/genome-mosaic/internal/mosaic"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool reading a photograph.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Path to the source photograph (PNG, JPEG or GIF). A leading ~ is expanded.",
}

func preparationProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty,
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Output width in pixels, 1000 to 12000. Grid density grows every 1000 pixels. Default 6000",
			"minimum":     1000,
			"maximum":     mosaic.MaxWidth,
		},
		"ratio": map[string]interface{}{
			"type":        "number",
			"description": "Height-to-width ratio the photograph is cropped to. Default 0.618",
		},
		"stride": map[string]interface{}{
			"type":        "integer",
			"description": "Pixel sampling stride; 1 counts every pixel. Default 2",
			"minimum":     1,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	generate := preparationProperties()
	generate["format"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"svg", "png", "jpeg", "none"},
		"description": "Export format. Default svg",
	}
	generate["output_dir"] = map[string]interface{}{
		"type":        "string",
		"description": "Directory the timestamped file is written to. Default is the server's configured directory",
	}

	return []Tool{
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
			Name:        "mosaic_plan_grid",
			Description: "Compute the brick grid for an output size: scale, column and row counts, brick size and brick count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels, 1000 to 12000",
						"minimum":     1000,
						"maximum":     mosaic.MaxWidth,
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "Output height in pixels. Default width * 0.618",
					},
				},
				"required": []string{"width"},
			},
		},
		{
			Name:        "mosaic_analyze_colors",
			Description: "Crop and resize a photograph as for an illustration and report its colour statistics, including the signal colour that overrides brick majorities.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": preparationProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "mosaic_generate",
			Description: "Turn a photograph into a genome mosaic illustration and export it to a timestamped file.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": generate,
				"required":   []string{"path"},
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
