package field

import (
	"github.com/lucasb-eyer/go-colorful"

	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
)

// Params are the fixed constants of one field profile.
type Params struct {
	Count     int
	Placement Placement
	Connector Connector
	Repulsion Repulsion

	InteractionRadius float64
	ReturnForce       float64
	Damping           float64

	BaseColor        colorful.Color
	InteractionColor colorful.Color
	// ColorBlend is the per-frame lerp rate toward the target color, in
	// linear RGB. Zero keeps every particle at BaseColor.
	ColorBlend float64
	Ambient    Ambient
}

// Field is the simulation context: the particle store, its fixed
// connection set and the line buffer mirroring it.
type Field struct {
	Params      Params
	Store       *Store
	Connections []Connection
	// Lines holds two endpoint triples per connection, in connection order.
	Lines []float64

	logger *game_log.Logger
}

// New places the particles, builds the connection set and fills the line
// buffer. Nothing here is recomputed afterwards.
func New(p Params, logger *game_log.Logger) *Field {
	s := NewStore(p.Count)
	p.Placement.Place(s.Positions, p.Count)
	s.settle(p.BaseColor)

	conns := p.Connector.Connect(s.Positions, p.Count)
	f := &Field{
		Params:      p,
		Store:       s,
		Connections: conns,
		Lines:       make([]float64, len(conns)*6),
		logger:      logger,
	}
	f.SyncLines()
	logger.Infof("[FIELD] New: particles=%d connections=%d", p.Count, len(conns))
	return f
}

// SyncLines copies the current endpoint positions of every connection into
// the line buffer.
func (f *Field) SyncLines() {
	pos := f.Store.Positions
	for k, c := range f.Connections {
		l := k * 6
		a, b := c[0]*3, c[1]*3
		copy(f.Lines[l:l+3], pos[a:a+3])
		copy(f.Lines[l+3:l+6], pos[b:b+3])
	}
}
