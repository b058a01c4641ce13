package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/floorplan-mcp/internal/recognize"
	"github.com/ironsheep/floorplan-mcp/internal/sketch"
	"github.com/ironsheep/floorplan-mcp/internal/snapshot"
	"github.com/ironsheep/floorplan-mcp/internal/vectorize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "plan_vectorize").
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
	// Vectorization
	case "plan_vectorize":
		return s.handlePlanVectorize(args)
	case "plan_simplify_stroke":
		return s.handlePlanSimplifyStroke(args)
	case "plan_build_graph":
		return s.handlePlanBuildGraph(args)
	case "plan_scale":
		return s.handlePlanScale(args)

	// Stroke classification
	case "sketch_classify_strokes":
		return s.handleSketchClassifyStrokes(args)

	// Snapshot operations
	case "sketch_load":
		return s.handleSketchLoad(args)
	case "sketch_read_dimension":
		return s.handleSketchReadDimension(args)

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

// strokeArg is the wire form of one stroke.
type strokeArg struct {
	Points []sketch.Point `json:"points"`
	Color  string         `json:"color"`
	Role   string         `json:"role"`
}

func toStrokes(args []strokeArg) []sketch.Stroke {
	strokes := make([]sketch.Stroke, len(args))
	for i, a := range args {
		strokes[i] = sketch.Stroke{
			Points: a.Points,
			Color:  a.Color,
			Role:   sketch.Role(a.Role),
		}
	}
	return strokes
}

// === Vectorization Handlers ===

type planVectorizeArgs struct {
	Strokes             []strokeArg `json:"strokes"`
	DimensionValue      float64     `json:"dimension_value"`
	MergeDistance       float64     `json:"merge_distance"`
	AngleTolerance      float64     `json:"angle_tolerance"`
	SnapTolerance       float64     `json:"snap_tolerance"`
	MaxDoorSnapDistance float64     `json:"max_door_snap_distance"`
}

func (s *Server) handlePlanVectorize(args json.RawMessage) (interface{}, error) {
	var a planVectorizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	plan := vectorize.Vectorize(toStrokes(a.Strokes), a.DimensionValue, vectorize.Options{
		MergeDistance:       a.MergeDistance,
		AngleTolerance:      a.AngleTolerance,
		SnapTolerance:       a.SnapTolerance,
		MaxDoorSnapDistance: a.MaxDoorSnapDistance,
	})
	return plan, nil
}

type planSimplifyStrokeArgs struct {
	Points         []sketch.Point `json:"points"`
	AngleTolerance float64        `json:"angle_tolerance"`
}

func (s *Server) handlePlanSimplifyStroke(args json.RawMessage) (interface{}, error) {
	var a planSimplifyStrokeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.AngleTolerance == 0 {
		a.AngleTolerance = vectorize.DefaultAngleTolerance
	}

	simplified := vectorize.Simplify(a.Points, a.AngleTolerance)
	return map[string]interface{}{
		"points":         simplified,
		"original_count": len(a.Points),
		"kept_count":     len(simplified),
	}, nil
}

type planBuildGraphArgs struct {
	Strokes        []strokeArg `json:"strokes"`
	MergeDistance  float64     `json:"merge_distance"`
	AngleTolerance float64     `json:"angle_tolerance"`
}

func (s *Server) handlePlanBuildGraph(args json.RawMessage) (interface{}, error) {
	var a planBuildGraphArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MergeDistance == 0 {
		a.MergeDistance = vectorize.DefaultMergeDistance
	}
	if a.AngleTolerance == 0 {
		a.AngleTolerance = vectorize.DefaultAngleTolerance
	}

	graph := vectorize.BuildGraph(toStrokes(a.Strokes), a.MergeDistance, a.AngleTolerance)
	return graph, nil
}

type planScaleArgs struct {
	Walls                 []vectorize.Wall `json:"walls"`
	Doors                 []vectorize.Door `json:"doors"`
	DimensionValue        float64          `json:"dimension_value"`
	ReferenceLengthPixels float64          `json:"reference_length_pixels"`
}

func (s *Server) handlePlanScale(args json.RawMessage) (interface{}, error) {
	var a planScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	payload := vectorize.Payload{Walls: a.Walls, Doors: a.Doors}
	factor, scaled := vectorize.ScalePayload(&payload, a.DimensionValue, a.ReferenceLengthPixels)

	return map[string]interface{}{
		"walls":        payload.Walls,
		"doors":        payload.Doors,
		"scale_factor": factor,
		"scaled":       scaled,
	}, nil
}

// === Stroke Classification Handlers ===

type sketchClassifyStrokesArgs struct {
	Strokes []strokeArg       `json:"strokes"`
	Palette map[string]string `json:"palette"`
}

func (s *Server) handleSketchClassifyStrokes(args json.RawMessage) (interface{}, error) {
	var a sketchClassifyStrokesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	overrides := make(map[sketch.Role]string, len(a.Palette))
	for role, hex := range a.Palette {
		overrides[sketch.Role(role)] = hex
	}

	strokes := toStrokes(a.Strokes)
	sketch.ClassifyStrokes(strokes, sketch.ParsePalette(overrides))

	roles := make([]string, len(strokes))
	for i, stroke := range strokes {
		roles[i] = string(stroke.Role)
	}
	return map[string]interface{}{
		"roles": roles,
		"count": len(roles),
	}, nil
}

// === Snapshot Handlers ===

type sketchLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleSketchLoad(args json.RawMessage) (interface{}, error) {
	var a sketchLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return snapshot.LoadInfo(s.cache, a.Path)
}

type sketchReadDimensionArgs struct {
	Path     string `json:"path"`
	X1       int    `json:"x1"`
	Y1       int    `json:"y1"`
	X2       int    `json:"x2"`
	Y2       int    `json:"y2"`
	Language string `json:"language"`
}

func (s *Server) handleSketchReadDimension(args json.RawMessage) (interface{}, error) {
	var a sketchReadDimensionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	recognizer := s.recognizer
	if _, ok := recognizer.(*recognize.Tesseract); ok && a.Language != "" {
		recognizer = &recognize.Tesseract{Language: a.Language}
	}

	dim, err := recognizer.RecognizeDimension(img, recognize.Region{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2})
	if err != nil {
		return nil, err
	}
	if dim == nil {
		return map[string]interface{}{"recognized": false}, nil
	}

	return map[string]interface{}{
		"recognized": true,
		"value":      dim.Value,
		"text":       dim.Text,
		"confidence": dim.Confidence,
	}, nil
}
