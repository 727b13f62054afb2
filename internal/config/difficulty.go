package config

// Overrides are command-line board settings. Zero fields are left alone.
type Overrides struct {
	Difficulty string
	Width      int
	Height     int
	Mines      int
}

// ResolveBoard picks the board for a round: the named difficulty preset if
// given, otherwise base, then any explicit width/height/mines on top.
// The result is validated.
func (c SweeperConfig) ResolveBoard(base BoardConfig, o Overrides) (BoardConfig, error) {
	b := base
	if o.Difficulty != "" {
		p, err := c.Preset(o.Difficulty)
		if err != nil {
			return BoardConfig{}, err
		}
		b = p
	}
	if o.Width > 0 {
		b.Width = o.Width
	}
	if o.Height > 0 {
		b.Height = o.Height
	}
	if o.Mines > 0 {
		b.Mines = o.Mines
	}
	if err := b.Validate(); err != nil {
		return BoardConfig{}, err
	}
	return b, nil
}
