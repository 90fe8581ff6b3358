package poi

import "gopkg.in/yaml.v3"

var (
	_ yaml.Marshaler = POIArray{}
	_ yaml.Marshaler = POI{}
)

type arrayYAML struct {
	Name   string    `yaml:"name" json:"name"`
	Values []float64 `yaml:"values" json:"values"`
}

type scalarYAML struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

func (a POIArray) MarshalYAML() (interface{}, error) {
	return arrayYAML{
		Name:   a.name,
		Values: a.Values(),
	}, nil
}

func (poi POI) MarshalYAML() (interface{}, error) {
	return scalarYAML{
		Name:  poi.arr.name,
		Value: poi.value,
	}, nil
}
