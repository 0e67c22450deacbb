package module

import "errors"

// ErrModuleNotFound is returned when a lookup by ID or coordinate fails to
// find a registered module.
var ErrModuleNotFound = errors.New("module: not found")

// ErrStaticModuleMoved is returned when code attempts to relocate a module
// marked Static (spec.md §3: static modules never move once registered).
var ErrStaticModuleMoved = errors.New("module: static module cannot move")
