package core

// Size describes the dimensions of a simulation grid. W counts columns and H
// counts rows.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid position.
type Cell struct {
	Row int
	Col int
}

// Stat is a single labelled status line shown by the HUD or terminal footer.
type Stat struct {
	Label string
	Value string
}

// StatsProvider exposes status lines for presentation.
type StatsProvider interface {
	Stats() []Stat
}
