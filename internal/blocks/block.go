package blocks

// Block holds the static metadata the lighting engine needs for one block type.
type Block struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Transparent bool   `json:"transparent"`
	RedLight    int    `json:"red_light"`
	GreenLight  int    `json:"green_light"`
	BlueLight   int    `json:"blue_light"`
}

// IsLight reports whether the block emits on any color channel.
func (b Block) IsLight() bool {
	return b.RedLight > 0 || b.GreenLight > 0 || b.BlueLight > 0
}
