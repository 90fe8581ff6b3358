package scan

import (
	"fmt"

	"github.com/sgostarter/libhypotests/parameter"
	"github.com/sgostarter/libhypotests/poi"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// KeyPrefix separates memoised values of different quantities, e.g. "obs_nll".
	KeyPrefix    string `yaml:"keyPrefix" json:"keyPrefix"`
	DisableCache bool   `yaml:"disableCache" json:"disableCache"`
}

// GridConfig describes the values scanned for one parameter: either explicit
// values, num points of a linspace, or an arange with step.
type GridConfig struct {
	Parameter string    `yaml:"parameter" json:"parameter"`
	Values    []float64 `yaml:"values,omitempty" json:"values,omitempty"`
	Start     float64   `yaml:"start,omitempty" json:"start,omitempty"`
	Stop      float64   `yaml:"stop,omitempty" json:"stop,omitempty"`
	Num       int       `yaml:"num,omitempty" json:"num,omitempty"`
	Step      float64   `yaml:"step,omitempty" json:"step,omitempty"`
}

type gridFile struct {
	Grids []*GridConfig `yaml:"grids"`
}

func LoadGridConfigs(d []byte) (cfgs []*GridConfig, err error) {
	var f gridFile

	err = yaml.Unmarshal(d, &f)
	if err != nil {
		return
	}

	cfgs = f.Grids

	return
}

func (cfg *GridConfig) Build(set *parameter.Set) (poi.POIArray, error) {
	if set == nil {
		return poi.POIArray{}, fmt.Errorf("%w: no parameter set", ErrInvalidConfig)
	}

	p, ok := set.Get(cfg.Parameter)
	if !ok {
		return poi.POIArray{}, fmt.Errorf("%w: parameter %s", ErrNotFound, cfg.Parameter)
	}

	modes := 0

	for _, used := range []bool{len(cfg.Values) > 0, cfg.Num > 0, cfg.Step != 0} {
		if used {
			modes++
		}
	}

	if modes != 1 {
		return poi.POIArray{}, fmt.Errorf("%w: %s needs exactly one of values, num or step", ErrInvalidConfig, cfg.Parameter)
	}

	switch {
	case len(cfg.Values) > 0:
		return poi.NewArray(p, cfg.Values)
	case cfg.Num > 0:
		return poi.Linspace(p, cfg.Start, cfg.Stop, cfg.Num)
	default:
		return poi.Arange(p, cfg.Start, cfg.Stop, cfg.Step)
	}
}
