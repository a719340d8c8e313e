// Package voxelterra assembles the terrain engine and world manager into a
// runnable whole from user-facing configuration.
package voxelterra

import (
	"fmt"
	"log/slog"

	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/chunkdb"
	"github.com/stonebound/voxelterra/world/generator/terragen"
)

// UserConfig is the file-facing configuration of a voxelterra world,
// typically decoded from a TOML file. Use DefaultConfig to obtain one with
// the default values filled out, and UserConfig.Config to convert it into a
// usable world.Config.
type UserConfig struct {
	World struct {
		// Seed selects the generated world. The same seed always produces
		// the same terrain.
		Seed int64
		// ViewDistance and VerticalViewDistance are the half-extents, in
		// chunks, of the region kept resident around the view centre.
		ViewDistance         int
		VerticalViewDistance int
		// SaveData enables the on-disk chunk store in Folder. With it
		// disabled, evicted chunks are discarded and regenerated on revisit.
		SaveData bool
		Folder   string
		// GeneratorWorkers and GeneratorQueueSize tune the asynchronous
		// chunk generation pool; zero values derive both from the host CPU
		// count.
		GeneratorWorkers   int
		GeneratorQueueSize int
	}
	Terrain struct {
		Scale            float64
		Octaves          int
		Lacunarity       float64
		Persistence      float64
		Redistribution   float64
		BaseHeight       float64
		HeightMultiplier float64
		RidgeStrength    float64
		ExponentialBlend float64
	}
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.ViewDistance = 4
	c.World.VerticalViewDistance = 2
	c.World.SaveData = true
	c.World.Folder = "world"

	p := terragen.DefaultParameters()
	c.Terrain.Scale = p.Scale
	c.Terrain.Octaves = p.Octaves
	c.Terrain.Lacunarity = p.Lacunarity
	c.Terrain.Persistence = p.Persistence
	c.Terrain.Redistribution = p.Redistribution
	c.Terrain.BaseHeight = p.BaseHeight
	c.Terrain.HeightMultiplier = p.HeightMultiplier
	c.Terrain.RidgeStrength = p.RidgeStrength
	c.Terrain.ExponentialBlend = p.ExpBlend
	return c
}

// Config converts a UserConfig to a world.Config, creating the chunk store
// if saving is enabled. Terrain values are passed through as-is: the sampler
// clamps degenerate values itself, so a hand-edited config can never crash
// generation.
func (uc UserConfig) Config(log *slog.Logger) (world.Config, error) {
	if log == nil {
		log = slog.Default()
	}

	params := terragen.DefaultParameters()
	params.Scale = uc.Terrain.Scale
	params.Octaves = uc.Terrain.Octaves
	params.Lacunarity = uc.Terrain.Lacunarity
	params.Persistence = uc.Terrain.Persistence
	params.Redistribution = uc.Terrain.Redistribution
	params.BaseHeight = uc.Terrain.BaseHeight
	params.HeightMultiplier = uc.Terrain.HeightMultiplier
	params.RidgeStrength = uc.Terrain.RidgeStrength
	params.ExpBlend = uc.Terrain.ExponentialBlend

	conf := world.Config{
		Log: log,
		Generator: terragen.New(terragen.Config{
			Seed:    uc.World.Seed,
			Terrain: params,
		}),
		ViewDistance:         uc.World.ViewDistance,
		VerticalViewDistance: uc.World.VerticalViewDistance,
		GeneratorWorkers:     uc.World.GeneratorWorkers,
		GeneratorQueueSize:   uc.World.GeneratorQueueSize,
	}
	if uc.World.SaveData {
		prov, err := chunkdb.Config{Log: log}.Open(uc.World.Folder)
		if err != nil {
			return conf, fmt.Errorf("create chunk store: %w", err)
		}
		log.Info("Opened chunk store.", "folder", uc.World.Folder, "world_id", prov.ID())
		conf.Provider = prov
	}
	return conf, nil
}
