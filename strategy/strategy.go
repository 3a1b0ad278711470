// SPDX-License-Identifier: MIT
// Package: strategy
//
// strategy.go - sentinels, Stay and name resolution.

package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/copsrobbers/game"
)

var (
	// ErrUnknownStrategy is returned by ByName for an unrecognized name.
	ErrUnknownStrategy = errors.New("strategy: unknown strategy")

	// ErrNoPaths indicates a distance-driven policy ran without View.Paths.
	ErrNoPaths = errors.New("strategy: view has no path table")
)

// DefaultCacheSize is the Evade memo capacity used when none is given.
const DefaultCacheSize = 1024

// Names lists the values accepted by ByName.
var Names = []string{"stay", "chase", "evade", "auto"}

// Stay keeps every token where it is.
func Stay() game.Strategy { return game.Hold }

// ByName returns the policy called name for a process playing role.
// "auto" picks Chase for cops and Evade for robbers. cacheSize is passed to
// Evade; non-positive means DefaultCacheSize.
func ByName(name string, role game.Role, cacheSize int) (game.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stay", "hold":
		return Stay(), nil
	case "chase":
		return Chase(), nil
	case "evade":
		return Evade(cacheSize)
	case "auto":
		if role == game.Cops {
			return Chase(), nil
		}
		return Evade(cacheSize)
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names, ", "))
}

// NeedsPaths reports whether the named policy reads View.Paths.
func NeedsPaths(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chase", "evade", "auto":
		return true
	}
	return false
}
