package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointSchema describes one {x, y} canvas point.
func pointSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "number"},
			"y": map[string]interface{}{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
}

// strokeSchema describes one freehand stroke with its classification
// attributes.
func strokeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"points": map[string]interface{}{
				"type":        "array",
				"items":       pointSchema(),
				"description": "Sampled points in drawing order",
			},
			"color": map[string]interface{}{
				"type":        "string",
				"description": "Pen color as #RRGGBB, used to classify the stroke's role",
			},
			"role": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"wall", "door", "dimension"},
				"description": "Explicit role; overrides color classification",
			},
		},
		"required": []string{"points"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Vectorization
		{
			Name:        "plan_vectorize",
			Description: "Convert freehand floor plan strokes into a structured plan: a rectified wall graph, doors snapped onto it, and (when a dimension value is supplied) real-world coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"strokes": map[string]interface{}{
						"type":        "array",
						"items":       strokeSchema(),
						"description": "All strokes of the submission (walls, doors, dimension annotations)",
					},
					"dimension_value": map[string]interface{}{
						"type":        "number",
						"description": "Recognized real-world value of the dimension annotation. Omit to keep pixel coordinates.",
					},
					"merge_distance": map[string]interface{}{
						"type":        "number",
						"description": "Node merge radius in pixels (default 30)",
						"default":     30,
					},
					"angle_tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Stroke simplification tolerance in degrees (default 10)",
						"default":     10,
					},
					"snap_tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Axis rectification tolerance in degrees (default 10)",
						"default":     10,
					},
					"max_door_snap_distance": map[string]interface{}{
						"type":        "number",
						"description": "Drop door strokes farther than this many pixels from every wall (default 0 = snap regardless of distance)",
						"default":     0,
					},
				},
				"required": []string{"strokes"},
			},
		},
		{
			Name:        "plan_simplify_stroke",
			Description: "Reduce one stroke to its structurally significant vertices by removing near-colinear points.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type":        "array",
						"items":       pointSchema(),
						"description": "Sampled points in drawing order",
					},
					"angle_tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Deviation from straight, in degrees, below which a point is dropped (default 10)",
						"default":     10,
					},
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "plan_build_graph",
			Description: "Build the raw wall graph from wall strokes without rectification. Diagnostic view of node merging and edge emission.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"strokes": map[string]interface{}{
						"type":        "array",
						"items":       strokeSchema(),
						"description": "Wall strokes",
					},
					"merge_distance": map[string]interface{}{
						"type":        "number",
						"description": "Node merge radius in pixels (default 30)",
						"default":     30,
					},
					"angle_tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Stroke simplification tolerance in degrees (default 10)",
						"default":     10,
					},
				},
				"required": []string{"strokes"},
			},
		},
		{
			Name:        "plan_scale",
			Description: "Rescale an exported walls/doors payload into real-world units using one measured dimension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"walls": map[string]interface{}{
						"type":        "array",
						"description": "Walls as produced by plan_vectorize",
					},
					"doors": map[string]interface{}{
						"type":        "array",
						"description": "Doors as produced by plan_vectorize",
					},
					"dimension_value": map[string]interface{}{
						"type":        "number",
						"description": "Real-world value of the reference dimension",
					},
					"reference_length_pixels": map[string]interface{}{
						"type":        "number",
						"description": "Pixel length the dimension annotation spans on the canvas",
					},
				},
				"required": []string{"walls", "dimension_value", "reference_length_pixels"},
			},
		},

		// Stroke classification
		{
			Name:        "sketch_classify_strokes",
			Description: "Classify strokes into wall/door/dimension roles by pen color. Explicit roles are kept as-is.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"strokes": map[string]interface{}{
						"type":        "array",
						"items":       strokeSchema(),
						"description": "Strokes to classify",
					},
					"palette": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"wall":      map[string]interface{}{"type": "string", "description": "Wall pen color as #RRGGBB"},
							"door":      map[string]interface{}{"type": "string", "description": "Door pen color as #RRGGBB"},
							"dimension": map[string]interface{}{"type": "string", "description": "Dimension pen color as #RRGGBB"},
						},
						"description": "Optional toolbar palette overrides. Defaults: wall #000000, door #E53935, dimension #1E88E5.",
					},
				},
				"required": []string{"strokes"},
			},
		},

		// Snapshot operations
		{
			Name:        "sketch_load",
			Description: "Load a canvas snapshot image and return its dimensions and format. Caches the snapshot for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the snapshot image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sketch_read_dimension",
			Description: "Read a handwritten dimension annotation from a snapshot region via OCR and return its numeric value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the snapshot image file",
					},
					"x1": map[string]interface{}{"type": "integer", "description": "Left edge of the annotation region"},
					"y1": map[string]interface{}{"type": "integer", "description": "Top edge of the annotation region"},
					"x2": map[string]interface{}{"type": "integer", "description": "Right edge (exclusive)"},
					"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge (exclusive)"},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint (default 'eng')",
						"default":     "eng",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
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
