package blocks

// Registry maps block IDs to their static metadata.
type Registry interface {
	ByID(id int) (Block, bool)
	ByName(name string) (Block, bool)
	All() []Block
}

type registry struct {
	byID   map[int]Block
	byName map[string]Block
	all    []Block
}

// NewRegistry builds a Registry from a block list. Later entries with a
// duplicate ID or name replace earlier ones.
func NewRegistry(list []Block) Registry {
	r := &registry{
		byID:   make(map[int]Block, len(list)),
		byName: make(map[string]Block, len(list)),
		all:    make([]Block, len(list)),
	}
	copy(r.all, list)
	for _, b := range list {
		r.byID[b.ID] = b
		r.byName[b.Name] = b
	}
	return r
}

func (r *registry) ByID(id int) (Block, bool) {
	b, ok := r.byID[id]
	return b, ok
}

func (r *registry) ByName(name string) (Block, bool) {
	b, ok := r.byName[name]
	return b, ok
}

func (r *registry) All() []Block {
	out := make([]Block, len(r.all))
	copy(out, r.all)
	return out
}

// Default returns the built-in block set used when no definition file is
// provided. IDs are stable; tests depend on them.
func Default() Registry {
	return NewRegistry([]Block{
		{ID: 0, Name: "air", Transparent: true},
		{ID: 1, Name: "stone"},
		{ID: 2, Name: "dirt"},
		{ID: 3, Name: "grass"},
		{ID: 4, Name: "sand"},
		{ID: 5, Name: "bedrock"},
		{ID: 6, Name: "water", Transparent: true},
		{ID: 7, Name: "glass", Transparent: true},
		{ID: 8, Name: "glowstone", RedLight: 15, GreenLight: 15, BlueLight: 15},
		{ID: 9, Name: "red lamp", RedLight: 15},
		{ID: 10, Name: "green lamp", GreenLight: 15},
		{ID: 11, Name: "blue lamp", BlueLight: 15},
		{ID: 12, Name: "lantern", RedLight: 15, GreenLight: 11, BlueLight: 5},
	})
}
