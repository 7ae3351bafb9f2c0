package battle

// SideConditions track screens and entry hazards for one side of the
// field. Screen counters are in turns remaining.
type SideConditions struct {
	ReflectTurns     int
	LightScreenTurns int
	AuroraVeilTurns  int

	SpikesLayers int
	StealthRock  bool
}

func (sc SideConditions) PhysicalScreenUp() bool {
	return sc.ReflectTurns > 0 || sc.AuroraVeilTurns > 0
}

func (sc SideConditions) SpecialScreenUp() bool {
	return sc.LightScreenTurns > 0 || sc.AuroraVeilTurns > 0
}

type FieldState struct {
	Weather      int
	WeatherTurns int

	Terrain      int
	TerrainTurns int

	Sides [2]SideConditions
}

func (f *FieldState) SetWeather(weather int, turns int) {
	f.Weather = weather
	f.WeatherTurns = turns
}

func (f *FieldState) SetTerrain(terrain int, turns int) {
	f.Terrain = terrain
	f.TerrainTurns = turns
}

// TickCounters runs the end of turn countdowns. Weather and terrain with
// a zero counter are permanent.
func (f *FieldState) TickCounters() {
	if f.WeatherTurns > 0 {
		f.WeatherTurns--
		if f.WeatherTurns == 0 {
			f.Weather = WEATHER_NONE
		}
	}

	if f.TerrainTurns > 0 {
		f.TerrainTurns--
		if f.TerrainTurns == 0 {
			f.Terrain = TERRAIN_NONE
		}
	}

	for i := range f.Sides {
		side := &f.Sides[i]
		if side.ReflectTurns > 0 {
			side.ReflectTurns--
		}
		if side.LightScreenTurns > 0 {
			side.LightScreenTurns--
		}
		if side.AuroraVeilTurns > 0 {
			side.AuroraVeilTurns--
		}
	}
}
