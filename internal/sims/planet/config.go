package planet

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the physical constants and event probabilities of the planet.
type Params struct {
	SolarEnergy        float64 `yaml:"solar_energy"`
	HeatRadiation      float64 `yaml:"heat_radiation"`
	HeatConductivity   float64 `yaml:"heat_conductivity"`
	AngularVelocity    float64 `yaml:"angular_velocity"`
	ElevationRadiation float64 `yaml:"elevation_radiation"`

	BaselineTemperature float64  `yaml:"baseline_temperature"`
	BaselineMaterial    Material `yaml:"baseline_material"`
	InitialLiquidDepth  float64  `yaml:"initial_liquid_depth"`

	FeatureCount      int     `yaml:"feature_count"`
	FeatureHeightMin  float64 `yaml:"feature_height_min"`
	FeatureHeightMax  float64 `yaml:"feature_height_max"`
	FeatureFalloffMin float64 `yaml:"feature_falloff_min"`
	FeatureFalloffMax float64 `yaml:"feature_falloff_max"`

	EvaporationChance        float64 `yaml:"evaporation_chance"`
	SettleTolerance          float64 `yaml:"settle_tolerance"`
	EvaporationRangeFraction float64 `yaml:"evaporation_range_fraction"`

	VolcanoSpawnChance  float64 `yaml:"volcano_spawn_chance"`
	VolcanoRetireChance float64 `yaml:"volcano_retire_chance"`
	VolcanoMaxActive    int     `yaml:"volcano_max_active"`
	VolcanoTemperature  float64 `yaml:"volcano_temperature"`
	VolcanoMagma        float64 `yaml:"volcano_magma"`

	WindRangeDivisor  int     `yaml:"wind_range_divisor"`
	WindDensityFactor float64 `yaml:"wind_density_factor"`
	WindSpeedScale    float64 `yaml:"wind_speed_scale"`

	CoatingColorWindow float64 `yaml:"coating_color_window"`
	GasHazeDensity     float64 `yaml:"gas_haze_density"`
}

// Config controls the planet dimensions and physics.
type Config struct {
	// Size is the edge length of each cube face in cells.
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 32,
		Seed: 1337,
		Params: Params{
			SolarEnergy:        34,
			HeatRadiation:      0.1,
			HeatConductivity:   0.5,
			AngularVelocity:    1,
			ElevationRadiation: 0.02,

			BaselineTemperature: 320,
			BaselineMaterial:    MaterialMetamorphic,
			InitialLiquidDepth:  2,

			FeatureCount:      20,
			FeatureHeightMin:  -5,
			FeatureHeightMax:  6,
			FeatureFalloffMin: 0.5,
			FeatureFalloffMax: 2,

			EvaporationChance:        1.0 / 120,
			SettleTolerance:          0.1,
			EvaporationRangeFraction: 0.3,

			VolcanoSpawnChance:  1.0 / 120,
			VolcanoRetireChance: 1.0 / 40,
			VolcanoMaxActive:    8,
			VolcanoTemperature:  2000,
			VolcanoMagma:        1,

			WindRangeDivisor:  16,
			WindDensityFactor: 0.2,
			WindSpeedScale:    10,

			CoatingColorWindow: 100,
			GasHazeDensity:     10,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read planet config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse planet config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the recognised keys of cfg overridden.
// Unknown keys and unparsable values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["baseline_material"]; ok {
		if parsed, err := ParseMaterial(v); err == nil {
			c.Params.BaselineMaterial = parsed
		}
	}
	for key, dst := range c.Params.floatFields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	for key, dst := range c.Params.intFields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
	c.sanitize()
	return c
}

// Bind attaches the world size, seed and the main physics constants to fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "cells along each cube face edge")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain and events")
	fs.Float64Var(&c.Params.SolarEnergy, "solar", c.Params.SolarEnergy, "solar energy reaching the equator")
	fs.Float64Var(&c.Params.HeatRadiation, "radiation", c.Params.HeatRadiation, "fraction of heat radiated per tick")
	fs.Float64Var(&c.Params.HeatConductivity, "conductivity", c.Params.HeatConductivity, "heat conductivity between cells (0 disables diffusion)")
	fs.Float64Var(&c.Params.AngularVelocity, "spin", c.Params.AngularVelocity, "planet angular velocity driving Coriolis deflection")
	fs.IntVar(&c.Params.FeatureCount, "features", c.Params.FeatureCount, "terrain features stamped at reset")
	fs.Float64Var(&c.Params.InitialLiquidDepth, "ocean", c.Params.InitialLiquidDepth, "initial salt water depth")
	fs.IntVar(&c.Params.VolcanoMaxActive, "volcanoes", c.Params.VolcanoMaxActive, "maximum simultaneously active volcanoes")
}

func (p *Params) floatFields() map[string]*float64 {
	return map[string]*float64{
		"solar_energy":               &p.SolarEnergy,
		"heat_radiation":             &p.HeatRadiation,
		"heat_conductivity":          &p.HeatConductivity,
		"angular_velocity":           &p.AngularVelocity,
		"elevation_radiation":        &p.ElevationRadiation,
		"baseline_temperature":       &p.BaselineTemperature,
		"initial_liquid_depth":       &p.InitialLiquidDepth,
		"feature_height_min":         &p.FeatureHeightMin,
		"feature_height_max":         &p.FeatureHeightMax,
		"feature_falloff_min":        &p.FeatureFalloffMin,
		"feature_falloff_max":        &p.FeatureFalloffMax,
		"evaporation_chance":         &p.EvaporationChance,
		"settle_tolerance":           &p.SettleTolerance,
		"evaporation_range_fraction": &p.EvaporationRangeFraction,
		"volcano_spawn_chance":       &p.VolcanoSpawnChance,
		"volcano_retire_chance":      &p.VolcanoRetireChance,
		"volcano_temperature":        &p.VolcanoTemperature,
		"volcano_magma":              &p.VolcanoMagma,
		"wind_density_factor":        &p.WindDensityFactor,
		"wind_speed_scale":           &p.WindSpeedScale,
		"coating_color_window":       &p.CoatingColorWindow,
		"gas_haze_density":           &p.GasHazeDensity,
	}
}

func (p *Params) intFields() map[string]*int {
	return map[string]*int{
		"feature_count":      &p.FeatureCount,
		"volcano_max_active": &p.VolcanoMaxActive,
		"wind_range_divisor": &p.WindRangeDivisor,
	}
}

func (c *Config) sanitize() {
	if c.Size < 1 {
		c.Size = 1
	}
	p := &c.Params
	if p.FeatureCount < 0 {
		p.FeatureCount = 0
	}
	if p.FeatureHeightMax < p.FeatureHeightMin {
		p.FeatureHeightMax = p.FeatureHeightMin
	}
	if p.FeatureFalloffMin <= 0 {
		p.FeatureFalloffMin = 0.1
	}
	if p.FeatureFalloffMax < p.FeatureFalloffMin {
		p.FeatureFalloffMax = p.FeatureFalloffMin
	}
	if p.InitialLiquidDepth < 0 {
		p.InitialLiquidDepth = 0
	}
	if p.VolcanoMaxActive < 1 {
		p.VolcanoMaxActive = 1
	}
	if p.WindRangeDivisor < 1 {
		p.WindRangeDivisor = 1
	}
	if p.WindSpeedScale <= 0 {
		p.WindSpeedScale = 1
	}
	if p.CoatingColorWindow <= 0 {
		p.CoatingColorWindow = 1
	}
	if p.GasHazeDensity <= 0 {
		p.GasHazeDensity = 1
	}
}
