package driver

import "gol-viz/internal/core"

// Parameters reports the values shown on the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	state := "paused"
	if d.running {
		state = "running"
	}
	if d.closed {
		state = "closed"
	}
	armed := d.selected
	if armed == "" {
		armed = "-"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", d.engine.Generation()),
				core.IntParam("population", "Alive", d.engine.Population()),
				core.TextParam("rule", "Rule", d.rule.String()),
				core.TextParam("state", "State", state),
				core.TextParam("pattern", "Pattern", armed),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				core.IntParam("tps", "Speed (gen/s)", d.clock.TPS()),
				core.FloatParam("density", "Density", d.density),
				core.IntParam("rows", "Rows", d.engine.Rows()),
				core.IntParam("cols", "Cols", d.engine.Cols()),
			},
		},
		{
			Name: "Session",
			Params: []core.Parameter{
				core.TextParam("fill", "Fill", string(d.opts.Fill)),
				core.TextParam("id", "ID", d.id[:8]),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tps", Label: "Speed", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: MaxTPS},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 5, Min: 5, Max: MaxDimension},
		{Key: "cols", Label: "Cols", Type: core.ParamTypeInt, Step: 5, Min: 5, Max: MaxDimension},
	}
}

// SetIntParameter applies a HUD adjustment to an integer control.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if d.closed {
		return false
	}
	switch key {
	case "tps":
		d.SetTPS(value)
	case "rows":
		d.Resize(value, d.engine.Cols())
	case "cols":
		d.Resize(d.engine.Rows(), value)
	default:
		return false
	}
	return true
}

// SetFloatParameter applies a HUD adjustment to a floating point control.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	if d.closed || key != "density" {
		return false
	}
	d.SetDensity(value)
	return true
}
