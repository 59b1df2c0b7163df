package config

import (
	_ "embed"
)

//go:embed defaults/isosnake.yaml
var defaultYAML []byte

// DefaultGameConfig returns the default gameplay configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Speed: SpeedConfig{
			MoveEveryTicks: 0, // keep per-level cadence
			EndlessSpeedup: 1,
			MinMoveTicks:   2,
		},
		Camera: CameraConfig{
			OffsetX: 0,
			OffsetY: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				CadenceReduction: 3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
