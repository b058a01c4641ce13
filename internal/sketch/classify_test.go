package sketch

import "testing"

func TestPaletteClassify(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		name  string
		color string
		want  Role
	}{
		{"exact wall black", "#000000", RoleWall},
		{"exact door red", "#E53935", RoleDoor},
		{"exact dimension blue", "#1E88E5", RoleDimension},
		{"dark gray leans wall", "#202020", RoleWall},
		{"crimson leans door", "#C62828", RoleDoor},
		{"sky blue leans dimension", "#42A5F5", RoleDimension},
		{"invalid hex defaults to wall", "not-a-color", RoleWall},
		{"empty color defaults to wall", "", RoleWall},
		{"short form red", "#f00", RoleDoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Classify(tt.color); got != tt.want {
				t.Errorf("Classify(%q): got %s, want %s", tt.color, got, tt.want)
			}
		})
	}
}

func TestParsePalette(t *testing.T) {
	p := ParsePalette(map[Role]string{
		RoleDoor: "#00FF00",
	})

	if got := p.Classify("#00EE00"); got != RoleDoor {
		t.Errorf("green near override: got %s, want door", got)
	}
	// Roles without an override keep the defaults.
	if got := p.Classify("#1E88E5"); got != RoleDimension {
		t.Errorf("default blue: got %s, want dimension", got)
	}
}

func TestParsePalette_InvalidOverrideKeepsDefault(t *testing.T) {
	p := ParsePalette(map[Role]string{
		RoleDoor: "##broken",
	})

	if got := p.Classify("#E53935"); got != RoleDoor {
		t.Errorf("toolbar red: got %s, want door", got)
	}
}

func TestClassifyStrokes(t *testing.T) {
	strokes := []Stroke{
		{Color: "#000000"},
		{Color: "#E53935"},
		{Color: "#E53935", Role: RoleWall},
	}

	ClassifyStrokes(strokes, nil)

	if strokes[0].Role != RoleWall {
		t.Errorf("stroke 0: got %s, want wall", strokes[0].Role)
	}
	if strokes[1].Role != RoleDoor {
		t.Errorf("stroke 1: got %s, want door", strokes[1].Role)
	}
	// An explicit role beats the pen color.
	if strokes[2].Role != RoleWall {
		t.Errorf("stroke 2: got %s, want wall", strokes[2].Role)
	}
}

func TestByRole(t *testing.T) {
	strokes := []Stroke{
		{Role: RoleWall},
		{Role: RoleDoor},
		{Role: RoleWall},
		{Role: RoleDimension},
		{Role: Role("window")},
	}

	walls, doors, dims := ByRole(strokes)

	if len(walls) != 2 || len(doors) != 1 || len(dims) != 1 {
		t.Errorf("partition sizes: got %d/%d/%d, want 2/1/1", len(walls), len(doors), len(dims))
	}
}
