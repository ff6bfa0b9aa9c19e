package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"go-physx-glue/internal/helpers"
	"go-physx-glue/internal/log"
	"go-physx-glue/pkg/pxmath"
)

// Reads a YAML list of poses, splits each into rotation and translation and
// checks that it survives a trip through the engine transform type.

func main() {
	flagConfig := flag.String("config", "", "YAML config with policy, tolerance and log_level")
	flagPolicy := flag.String("policy", "", "Overrides the configured policy (strict, renormalize, truncate-renormalize)")

	flag.Parse()

	input := flag.Arg(0)
	if input == "" {
		flag.PrintDefaults()
		return
	}

	cfg, err := loadConfig(*flagConfig, *flagPolicy)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	helpers.SetConfig(cfg)

	logger := log.New(log.ParseLevel(helpers.GetConfiguredLogLevel()))
	defer logger.Sync()

	f, err := os.Open(input)
	if err != nil {
		logger.Error("failed to open poses", log.String("path", input), log.Err(err))
		os.Exit(2)
	}
	poses, err := LoadPoses(f)
	f.Close()
	if err != nil {
		logger.Error("failed to load poses", log.String("path", input), log.Err(err))
		os.Exit(2)
	}

	logger.Info("decomposing",
		log.Int("poses", len(poses)),
		log.String("policy", helpers.GetConfiguredPolicy().String()),
		log.Float32("tolerance", helpers.GetConfiguredTolerance()))

	failed := 0
	for _, p := range poses {
		if !processPose(logger.With(log.String("pose", p.Name)), p, cfg) {
			failed++
		}
	}

	if failed > 0 {
		logger.Warn("some poses failed", log.Int("failed", failed))
		logger.Sync()
		os.Exit(1)
	}
}

func loadConfig(path, policy string) (*helpers.Config, error) {
	cfg := helpers.DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open config")
		}
		defer f.Close()
		if cfg, err = helpers.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	if policy != "" {
		cfg.POLICY = policy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func processPose(logger log.Log, p Pose, cfg *helpers.Config) bool {
	m, err := p.Mat4()
	if err != nil {
		logger.Error("bad pose", log.Err(err))
		return false
	}

	iso, err := pxmath.Decompose(m, cfg.DecomposeOptions()...)
	if err != nil {
		var axisErr *pxmath.AxisError
		if errors.As(err, &axisErr) {
			logger.Error("decomposition rejected",
				log.String("axis", axisErr.Axis.String()),
				log.String("check", axisErr.Check.String()),
				log.Float32("value", axisErr.Value),
				log.Err(err))
		} else {
			logger.Error("decomposition failed", log.Err(err))
		}
		return false
	}

	tf := pxmath.ToPxTransform(iso.Mat4())
	drift := helpers.MaxDrift(iso.Mat4(), pxmath.FromPxTransform(tf))

	logger.Info("decomposed",
		log.Vec3("translation", iso.Translation.Col(3).Vec3()),
		log.Mat4("rotation", iso.Rotation),
		log.String("engine_transform", tf.String()),
		log.Float32("round_trip_drift", drift))
	return true
}
