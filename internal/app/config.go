package app

// Config holds runtime wiring options for building the app.
type Config struct {
	ChartWidth  int // rendered chart width in pixels
	ChartHeight int // rendered chart height in pixels
}

// Default window/chart geometry when no flags are given.
const (
	DefaultChartWidth  = 900
	DefaultChartHeight = 560
)

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.ChartWidth <= 0 {
		c.ChartWidth = DefaultChartWidth
	}
	if c.ChartHeight <= 0 {
		c.ChartHeight = DefaultChartHeight
	}
	return c
}
