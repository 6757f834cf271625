package planet

import (
	"strconv"

	"cube-planet/internal/core"
)

// Parameters reports every tunable grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Face size", w.cfg.Size),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("baseline_material", "Baseline material", params.BaselineMaterial.String()),
				floatParam("baseline_temperature", "Baseline temperature", params.BaselineTemperature),
				floatParam("initial_liquid_depth", "Initial ocean depth", params.InitialLiquidDepth),
			},
		},
		{
			Name: "Terrain Features",
			Params: []core.Parameter{
				intParam("feature_count", "Feature count", params.FeatureCount),
				floatParam("feature_height_min", "Feature height min", params.FeatureHeightMin),
				floatParam("feature_height_max", "Feature height max", params.FeatureHeightMax),
				floatParam("feature_falloff_min", "Feature falloff min", params.FeatureFalloffMin),
				floatParam("feature_falloff_max", "Feature falloff max", params.FeatureFalloffMax),
			},
		},
		{
			Name: "Heat",
			Params: []core.Parameter{
				floatParam("solar_energy", "Solar energy", params.SolarEnergy),
				floatParam("heat_radiation", "Heat radiation", params.HeatRadiation),
				floatParam("heat_conductivity", "Heat conductivity", params.HeatConductivity),
				floatParam("elevation_radiation", "Elevation radiation", params.ElevationRadiation),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				floatParam("evaporation_chance", "Evaporation chance", params.EvaporationChance),
				floatParam("settle_tolerance", "Settle tolerance", params.SettleTolerance),
				floatParam("evaporation_range_fraction", "Evaporation range fraction", params.EvaporationRangeFraction),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				floatParam("angular_velocity", "Angular velocity", params.AngularVelocity),
				intParam("wind_range_divisor", "Wind range divisor", params.WindRangeDivisor),
				floatParam("wind_density_factor", "Wind density factor", params.WindDensityFactor),
				floatParam("wind_speed_scale", "Wind speed scale", params.WindSpeedScale),
			},
		},
		{
			Name: "Volcano",
			Params: []core.Parameter{
				floatParam("volcano_spawn_chance", "Volcano spawn chance", params.VolcanoSpawnChance),
				floatParam("volcano_retire_chance", "Volcano retire chance", params.VolcanoRetireChance),
				intParam("volcano_max_active", "Volcano max active", params.VolcanoMaxActive),
				floatParam("volcano_temperature", "Volcano temperature", params.VolcanoTemperature),
				floatParam("volcano_magma", "Volcano magma per tick", params.VolcanoMagma),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("solar_energy", "Solar energy", 1, 0),
		floatControl("heat_radiation", "Heat radiation", 0.01, 0),
		floatControl("heat_conductivity", "Heat conductivity", 0.05, 0),
		floatControl("elevation_radiation", "Elevation radiation", 0.005, 0),
		floatControl("angular_velocity", "Angular velocity", 0.1, -10),
		floatControl("evaporation_chance", "Evaporation chance", 0.001, 0),
		floatControl("volcano_spawn_chance", "Volcano spawn chance", 0.001, 0),
		floatControl("volcano_retire_chance", "Volcano retire chance", 0.005, 0),
		{Key: "volcano_max_active", Label: "Volcano max active", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "wind_range_divisor", Label: "Wind range divisor", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
	}
}

// SetFloatParameter updates a physics constant in place. Size and seed only
// take effect through a new world.
func (w *World) SetFloatParameter(key string, value float64) bool {
	params := w.cfg.Params
	dst, ok := params.floatFields()[key]
	if !ok {
		return false
	}
	*dst = value
	w.applyParams(params)
	return true
}

// SetIntParameter updates an integer tunable in place.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	params := w.cfg.Params
	dst, ok := params.intFields()[key]
	if !ok {
		return false
	}
	*dst = value
	w.applyParams(params)
	return true
}

func (w *World) applyParams(p Params) {
	w.surface.SetParams(p)
	w.cfg.Params = w.surface.Config().Params
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func floatControl(key, label string, step, min float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    min,
		HasMin: true,
	}
}
