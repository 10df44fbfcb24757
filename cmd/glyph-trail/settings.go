package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/fx"
	"github.com/lixenwraith/glyph-trail/host"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/store"
)

// Config keys, shared by flags, env (GLYPHTRAIL_*) and .glyph-trail.toml
const (
	keyDebug        = "debug"
	keyDataDir      = "data_dir"
	keyReduceMotion = "reduce_motion"
	keyPointer      = "pointer"
	keyPixelRatio   = "pixel_ratio"
	keyShockwaves   = "shockwaves"
	keyCapacity     = "capacity"
	keyFrames       = "frames"
	keySeed         = "seed"
	keyHUD          = "hud"
)

// settings is the resolved configuration for one invocation
type settings struct {
	Debug        bool
	DataDir      string
	ReduceMotion bool
	Pointer      host.PointerMode
	PixelRatio   float64
	Shockwaves   bool
	Capacity     int
	Frames       int
	Seed         uint64
	HUD          bool
}

func registerFlags(fs *pflag.FlagSet) {
	fs.Bool("debug", false, "write logs to logs/glyph-trail.log")
	fs.String("data-dir", store.DefaultDir, "preference directory")
	fs.Bool("reduce-motion", false, "report a system reduced motion preference")
	fs.String("pointer", "auto", "pointer capability: auto, fine or coarse")
	fs.Float64("pixel-ratio", parameter.MinPixelRatio, "device pixel ratio, clamped to [1, 1.75]")
	fs.Bool("shockwaves", false, "emit rings on click")
	fs.Int("capacity", parameter.ParticleCapacity, "maximum live particles")
	fs.Int("frames", 600, "frames to run for simulate")
	fs.Uint64("seed", 0, "random seed, 0 picks one")
	fs.Bool("hud", false, "show the metrics panel at startup")
}

// newViper binds flags, environment and the optional config file
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	bindings := map[string]string{
		keyDebug:        "debug",
		keyDataDir:      "data-dir",
		keyReduceMotion: "reduce-motion",
		keyPointer:      "pointer",
		keyPixelRatio:   "pixel-ratio",
		keyShockwaves:   "shockwaves",
		keyCapacity:     "capacity",
		keyFrames:       "frames",
		keySeed:         "seed",
		keyHUD:          "hud",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetConfigName(".glyph-trail")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("GLYPHTRAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func loadSettings(v *viper.Viper) (settings, error) {
	pointer, err := host.ParsePointerMode(v.GetString(keyPointer))
	if err != nil {
		return settings{}, err
	}
	s := settings{
		Debug:        v.GetBool(keyDebug),
		DataDir:      v.GetString(keyDataDir),
		ReduceMotion: v.GetBool(keyReduceMotion),
		Pointer:      pointer,
		PixelRatio:   v.GetFloat64(keyPixelRatio),
		Shockwaves:   v.GetBool(keyShockwaves),
		Capacity:     v.GetInt(keyCapacity),
		Frames:       v.GetInt(keyFrames),
		Seed:         v.GetUint64(keySeed),
		HUD:          v.GetBool(keyHUD),
	}
	if s.Capacity < 1 {
		return settings{}, fmt.Errorf("capacity must be positive, got %d", s.Capacity)
	}
	if s.Frames < 0 {
		return settings{}, fmt.Errorf("frames must not be negative, got %d", s.Frames)
	}
	if s.PixelRatio <= 0 {
		s.PixelRatio = parameter.MinPixelRatio
	}
	return s, nil
}

func (s settings) fxConfig() fx.Config {
	cfg := fx.DefaultConfig()
	cfg.Capacity = s.Capacity
	cfg.Seed = s.Seed
	cfg.Emitter.Shockwaves = s.Shockwaves
	return cfg
}

func (s settings) hostConfig(mode core.MotionMode) host.Config {
	cfg := host.DefaultConfig()
	cfg.FX = s.fxConfig()
	cfg.Motion = mode
	cfg.SystemReducedMotion = s.ReduceMotion
	cfg.Pointer = s.Pointer
	cfg.PixelRatio = s.PixelRatio
	cfg.HUD = s.HUD
	return cfg
}
