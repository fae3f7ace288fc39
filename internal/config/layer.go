package config

import (
	"sort"

	"github.com/dshills/sneak/internal/config/loader"
)

// Layer priorities. Higher values override lower.
const (
	PriorityDefaults = 0
	PriorityFile     = 10
	PriorityEnv      = 20
	PriorityRuntime  = 30
)

// Layer names.
const (
	LayerDefaults = "defaults"
	LayerFile     = "file"
	LayerEnv      = "environment"
	LayerRuntime  = "runtime"
)

// Layer is one named source of settings.
type Layer struct {
	Name     string
	Priority int
	Data     map[string]any
}

// layerStack keeps layers ordered by priority and caches the merge.
type layerStack struct {
	layers []*Layer
	merged map[string]any
}

// set adds or replaces the layer with l.Name.
func (s *layerStack) set(l *Layer) {
	for i, existing := range s.layers {
		if existing.Name == l.Name {
			s.layers[i] = l
			s.merged = nil
			return
		}
	}
	s.layers = append(s.layers, l)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Priority < s.layers[j].Priority
	})
	s.merged = nil
}

func (s *layerStack) get(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func (s *layerStack) remove(name string) {
	for i, l := range s.layers {
		if l.Name == name {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			s.merged = nil
			return
		}
	}
}

// merge returns the merged view, lowest priority first. The result is
// shared; callers must not modify it.
func (s *layerStack) merge() map[string]any {
	if s.merged != nil {
		return s.merged
	}
	merged := make(map[string]any)
	for _, l := range s.layers {
		merged = loader.DeepMerge(merged, l.Data)
	}
	s.merged = merged
	return merged
}

func (s *layerStack) names() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.Name
	}
	return names
}
