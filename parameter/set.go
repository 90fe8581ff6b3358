package parameter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sgostarter/i/l"
)

// Set indexes the parameters of one model by name.
type Set struct {
	logger l.Wrapper

	lock   sync.RWMutex
	params map[string]Parameter
}

func NewSet(logger l.Wrapper, params ...Parameter) (*Set, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	s := &Set{
		logger: logger.WithFields(l.StringField(l.ClsKey, "parameterSet")),
		params: make(map[string]Parameter),
	}

	for _, p := range params {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func NewSetFromConfigs(cfgs []*Config, logger l.Wrapper) (*Set, error) {
	s, _ := NewSet(logger)

	for _, cfg := range cfgs {
		p, err := NewFitParameter(cfg)
		if err != nil {
			s.logger.WithFields(l.ErrorField(err)).Error("new fit parameter failed")

			return nil, err
		}

		if err = s.Add(p); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Set) Add(p Parameter) error {
	if !IsValid(p) {
		return fmt.Errorf("%w: %v is not a valid parameter", ErrInvalidConfig, p)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.params[p.Name()]; ok {
		s.logger.WithFields(l.StringField("name", p.Name())).Error("duplicated parameter")

		return fmt.Errorf("%w: %s", ErrExists, p.Name())
	}

	s.params[p.Name()] = p

	return nil
}

func (s *Set) Get(name string) (Parameter, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	p, ok := s.params[name]

	return p, ok
}

func (s *Set) Names() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, 0, len(s.params))
	for name := range s.params {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (s *Set) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.params)
}
