package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"
	"github.com/stonebound/voxelterra"
	"github.com/stonebound/voxelterra/world"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf, err := readConfig(log)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	wc, err := conf.Config(log)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	w := wc.New()
	defer func() {
		if err := w.Close(); err != nil {
			log.Error("close world: " + err.Error())
		}
	}()

	// Fly a straight path along the X axis, streaming the region around the
	// moving centre the way a player camera would.
	loader := world.NewLoader(w)
	start := time.Now()
	generated := 0
	for step := 0; step < 32; step++ {
		pos := mgl64.Vec3{float64(step * 16), 80, 0}
		generated += loader.Move(pos)

		if y, ok := w.HighestBlock(int(pos[0]), 0); ok {
			log.Debug("streamed around centre",
				"x", int(pos[0]),
				"surface_y", y,
				"surface", w.Block(world.BlockPos{int(pos[0]), y, 0}).String(),
				"resident", w.LoadedChunkCount(),
			)
		}
	}
	log.Info("flight complete.",
		"chunks_generated", generated,
		"resident", w.LoadedChunkCount(),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
}

// readConfig reads the configuration from config.toml, creating the file
// with the default values if it does not yet exist.
func readConfig(log *slog.Logger) (voxelterra.UserConfig, error) {
	c := voxelterra.DefaultConfig()
	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		log.Info("Created default config.toml.")
		return c, nil
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
