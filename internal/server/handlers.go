package server

import (
	"encoding/json"
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/genome-mosaic/internal/config"
	"github.com/ironsheep/genome-mosaic/internal/imaging"
	"github.com/ironsheep/genome-mosaic/internal/mosaic"
	"github.com/ironsheep/genome-mosaic/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mosaic_generate").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.WithFields(log.Fields{"tool": params.Name}).WithError(err).Warn("Tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "mosaic_plan_grid":
		return s.handleMosaicPlanGrid(args)
	case "mosaic_analyze_colors":
		return s.handleMosaicAnalyzeColors(args)
	case "mosaic_generate":
		return s.handleMosaicGenerate(args)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Grid ===

type planGridArgs struct {
	Width  int     `json:"width"`
	Height float64 `json:"height"`
}

// PlanGridResult summarizes a brick grid.
type PlanGridResult struct {
	*mosaic.Grid
	BrickCount  int     `json:"brick_count"`
	BrickWidth  float64 `json:"brick_width"`
	BrickHeight float64 `json:"brick_height"`
}

func (s *Server) handleMosaicPlanGrid(args json.RawMessage) (interface{}, error) {
	var a planGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Height == 0 {
		a.Height = float64(a.Width) * mosaic.GoldenRatio
	}

	g, err := mosaic.Plan(a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return &PlanGridResult{
		Grid:        g,
		BrickCount:  len(g.Bricks),
		BrickWidth:  g.DeltaX,
		BrickHeight: g.DeltaY,
	}, nil
}

// === Colour analysis ===

type prepareArgs struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Ratio  float64 `json:"ratio"`
	Stride int     `json:"stride"`
}

// settings overlays the non-zero arguments on the server defaults.
func (s *Server) settings(a prepareArgs) config.Config {
	c := s.defaults
	c.Input = a.Path
	if a.Width != 0 {
		c.Width = a.Width
	}
	if a.Ratio != 0 {
		c.Ratio = a.Ratio
	}
	if a.Stride != 0 {
		c.Stride = a.Stride
	}
	return c
}

// prepare loads the photograph and crops and resizes it to c.
func (s *Server) prepare(c config.Config) (image.Image, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(c.Input)
	if err != nil {
		return nil, err
	}
	return imaging.Prepare(src, c.Width, c.Ratio)
}

// ColorCount is a colour with its sampled count.
type ColorCount struct {
	Hex   string       `json:"hex"`
	RGB   mosaic.Color `json:"rgb"`
	Count int          `json:"count"`
}

// AnalyzeColorsResult reports the colour statistics of a prepared photograph.
type AnalyzeColorsResult struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Distinct int        `json:"distinct"`
	Sampled  int        `json:"sampled"`
	Dominant ColorCount `json:"dominant"`
	Signal   ColorCount `json:"signal"`
}

func (s *Server) handleMosaicAnalyzeColors(args json.RawMessage) (interface{}, error) {
	var a prepareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c := s.settings(a)
	img, err := s.prepare(c)
	if err != nil {
		return nil, err
	}

	raster := mosaic.NewRaster(img)
	table := mosaic.Sample(raster.Colors(), c.Stride)
	dominant, dominantCount, err := table.MostFrequent()
	if err != nil {
		return nil, err
	}
	signal, err := mosaic.LeastFrequent(table)
	if err != nil {
		return nil, err
	}

	return &AnalyzeColorsResult{
		Width:    raster.Width(),
		Height:   raster.Height(),
		Distinct: table.Len(),
		Sampled:  table.Total(),
		Dominant: ColorCount{Hex: dominant.Hex(), RGB: dominant, Count: dominantCount},
		Signal:   ColorCount{Hex: signal.Hex(), RGB: signal, Count: table.Count(signal)},
	}, nil
}

// === Generation ===

type generateArgs struct {
	prepareArgs
	Format    string `json:"format"`
	OutputDir string `json:"output_dir"`
}

// GenerateResult describes an exported illustration.
type GenerateResult struct {
	Path      string         `json:"path,omitempty"`
	Format    string         `json:"format"`
	MimeType  string         `json:"mime_type,omitempty"`
	Width     int            `json:"width"`
	Height    float64        `json:"height"`
	Bricks    int            `json:"bricks"`
	Signal    string         `json:"signal"`
	Decisions map[string]int `json:"decisions"`
}

func (s *Server) handleMosaicGenerate(args json.RawMessage) (interface{}, error) {
	var a generateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c := s.settings(a.prepareArgs)
	if a.Format != "" {
		f, err := render.ParseFormat(a.Format)
		if err != nil {
			return nil, err
		}
		c.Format = f
	}
	if a.OutputDir != "" {
		c.OutputDir = a.OutputDir
	}

	img, err := s.prepare(c)
	if err != nil {
		return nil, err
	}
	// Generation finishes a photograph; the next request reads it afresh.
	defer s.cache.Evict(c.Input)

	ill, err := mosaic.Generate(img, c.MosaicOptions())
	if err != nil {
		return nil, err
	}
	path, err := render.Export(ill, c.Format, c.OutputDir, s.now(), c.RenderOptions())
	if err != nil {
		return nil, err
	}

	decisions := make(map[string]int)
	for _, r := range []mosaic.Reason{mosaic.ReasonMonochrome, mosaic.ReasonSolidBrick, mosaic.ReasonMajority, mosaic.ReasonSignal} {
		decisions[r.String()] = ill.Count(r)
	}

	return &GenerateResult{
		Path:      path,
		Format:    c.Format.String(),
		MimeType:  c.Format.MimeType(),
		Width:     ill.Width(),
		Height:    ill.Height(),
		Bricks:    len(ill.Fills),
		Signal:    ill.Signal.Hex(),
		Decisions: decisions,
	}, nil
}
