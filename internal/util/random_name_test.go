package util

import (
	"drawpoker/internal/rng"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)

	name := GetRandomName(rng.NewSeeded(1))
	parts := strings.Split(name, " ")
	if a.Len(parts, 2) {
		a.Contains(adjectives, parts[0])
		a.Contains(animals, parts[1])
	}

	// the same seed always gives the same name
	a.Equal(name, GetRandomName(rng.NewSeeded(1)))
}

func TestGetRandomNames(t *testing.T) {
	a := assert.New(t)

	first := GetRandomName(rng.NewSeeded(7))
	names := GetRandomNames(rng.NewSeeded(7), 4, first)
	a.Len(names, 4)
	a.NotContains(names, first)

	seen := make(map[string]bool)
	for _, name := range names {
		a.False(seen[name], "%s was returned twice", name)
		seen[name] = true
	}
}
