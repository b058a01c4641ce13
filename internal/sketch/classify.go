package sketch

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps stroke roles to the pen colors the drawing surface uses for
// them. Classification picks the palette entry nearest to a stroke's color.
type Palette map[Role]colorful.Color

// DefaultPalette returns the standard toolbar colors: black walls, red doors
// and blue dimension annotations.
func DefaultPalette() Palette {
	return Palette{
		RoleWall:      mustHex("#000000"),
		RoleDoor:      mustHex("#E53935"),
		RoleDimension: mustHex("#1E88E5"),
	}
}

// ParsePalette builds a palette from role-to-hex-color overrides, filling
// any missing role from the defaults. Invalid hex strings keep the default
// color for that role.
func ParsePalette(overrides map[Role]string) Palette {
	p := DefaultPalette()
	for role, hex := range overrides {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		p[role] = c
	}
	return p
}

// Classify resolves the role for a pen color by nearest palette entry in
// CIE-Lab space. Colors that cannot be parsed classify as walls, the
// dominant stroke kind, so one bad color never aborts a submission.
func (p Palette) Classify(hexColor string) Role {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return RoleWall
	}

	best := RoleWall
	bestDist := -1.0
	// Iterate fixed role order so equidistant colors classify deterministically.
	for _, role := range []Role{RoleWall, RoleDoor, RoleDimension} {
		ref, ok := p[role]
		if !ok {
			continue
		}
		d := c.DistanceLab(ref)
		if bestDist < 0 || d < bestDist {
			best = role
			bestDist = d
		}
	}
	return best
}

// ClassifyStrokes fills in the Role of every stroke that does not already
// carry one. Explicit roles are trusted and left untouched.
func ClassifyStrokes(strokes []Stroke, p Palette) {
	if p == nil {
		p = DefaultPalette()
	}
	for i := range strokes {
		if strokes[i].Role != "" {
			continue
		}
		strokes[i].Role = p.Classify(strokes[i].Color)
	}
}

// ByRole partitions strokes into wall, door and dimension groups. Strokes
// must already be classified; strokes with an unknown role are dropped.
func ByRole(strokes []Stroke) (walls, doors, dimensions []Stroke) {
	for _, s := range strokes {
		switch s.Role {
		case RoleWall:
			walls = append(walls, s)
		case RoleDoor:
			doors = append(doors, s)
		case RoleDimension:
			dimensions = append(dimensions, s)
		}
	}
	return walls, doors, dimensions
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
