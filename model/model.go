package model

import (
	"fmt"
	"sort"
)

var constructors = make(map[string]ArchitectureCtor)

// Architecture is the common interface a training objective follows. Step
// trains on the window around sen[pos] shrunk by b positions on each side,
// i.e. on positions [pos-window+b, pos+window-b] without pos itself.
type Architecture interface {
	Step(net *Network, s *State, sen []int32, pos, window, b int, alpha float32)
}

// new architectures should register themselves using this function
func Register(name string, ctor ArchitectureCtor) {
	constructors[name] = ctor
}

type ArchitectureCtor func() Architecture

func GetArchitecture(name string) (ArchitectureCtor, error) {
	if _, ok := constructors[name]; !ok {
		return nil, fmt.Errorf("architecture %s not registered", name)
	}
	return constructors[name], nil
}

// Architectures lists the registered names in order.
func Architectures() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// context calls fn for every position of the shrunk window around pos
// that falls inside the sentence.
func context(n, pos, window, b int, fn func(c int)) {
	for a := b; a < window*2+1-b; a++ {
		if a == window {
			continue
		}
		c := pos - window + a
		if c < 0 || c >= n {
			continue
		}
		fn(c)
	}
}
