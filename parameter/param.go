package parameter

import (
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Name  string   `yaml:"name" json:"name"`
	Value float64  `yaml:"value" json:"value"`
	Lower *float64 `yaml:"lower,omitempty" json:"lower,omitempty"`
	Upper *float64 `yaml:"upper,omitempty" json:"upper,omitempty"`
	Fixed bool     `yaml:"fixed,omitempty" json:"fixed,omitempty"`
}

type configFile struct {
	Parameters []*Config `yaml:"parameters"`
}

// LoadConfigs decodes a yaml document with a top level `parameters` list.
func LoadConfigs(d []byte) (cfgs []*Config, err error) {
	var f configFile

	err = yaml.Unmarshal(d, &f)
	if err != nil {
		return
	}

	cfgs = f.Parameters

	return
}

// FitParameter is a plain Parameter with optional limits.
type FitParameter struct {
	name  string
	lower float64
	upper float64

	lock     sync.RWMutex
	value    float64
	floating bool
}

func NewFitParameter(cfg *Config) (*FitParameter, error) {
	if cfg == nil || cfg.Name == "" {
		return nil, fmt.Errorf("%w: no name", ErrInvalidConfig)
	}

	lower, upper := math.Inf(-1), math.Inf(1)

	if cfg.Lower != nil {
		lower = *cfg.Lower
	}

	if cfg.Upper != nil {
		upper = *cfg.Upper
	}

	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return nil, fmt.Errorf("%w: %s limits [%v, %v]", ErrInvalidConfig, cfg.Name, lower, upper)
	}

	p := &FitParameter{
		name:     cfg.Name,
		lower:    lower,
		upper:    upper,
		floating: !cfg.Fixed,
	}

	if err := p.SetValue(cfg.Value); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *FitParameter) Name() string {
	return p.name
}

func (p *FitParameter) Value() float64 {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.value
}

func (p *FitParameter) SetValue(v float64) error {
	if math.IsNaN(v) || v < p.lower || v > p.upper {
		return fmt.Errorf("%w: %s=%v not in [%v, %v]", ErrOutOfLimits, p.name, v, p.lower, p.upper)
	}

	p.lock.Lock()
	p.value = v
	p.lock.Unlock()

	return nil
}

func (p *FitParameter) Floating() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.floating
}

func (p *FitParameter) SetFloating(floating bool) {
	p.lock.Lock()
	p.floating = floating
	p.lock.Unlock()
}

func (p *FitParameter) Limits() (lower, upper float64) {
	return p.lower, p.upper
}

func (p *FitParameter) String() string {
	return fmt.Sprintf("FitParameter('%s', value=%v)", p.name, p.Value())
}
