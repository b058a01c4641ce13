package vectorize

import (
	"fmt"

	"github.com/ironsheep/floorplan-mcp/internal/sketch"
)

// Wall is one graph edge in the downstream wire format.
type Wall struct {
	ID    string       `json:"wall_id"`
	Start sketch.Point `json:"start_point"`
	End   sketch.Point `json:"end_point"`
}

// Payload is the JSON object handed to the downstream consumer.
type Payload struct {
	Walls []Wall `json:"walls"`
	Doors []Door `json:"doors"`
}

// Walls exports the graph's edges as walls, one per edge in emission order,
// with IDs assigned as wall_<index>.
func (g *WallGraph) Walls() []Wall {
	walls := make([]Wall, len(g.Edges))
	for i, e := range g.Edges {
		walls[i] = Wall{
			ID:    fmt.Sprintf("wall_%d", i),
			Start: g.Nodes[e[0]],
			End:   g.Nodes[e[1]],
		}
	}
	return walls
}
