// Package hostlib holds the host surfaces scripts are run against: the
// traverser used in gameplay and the builder used when making maps.
package hostlib

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/script"
)

// Host registers its methods and variables on a script
type Host interface {
	Register(s *script.Script) error
}

const (
	Gameplay  = "gameplay"
	MapMaking = "mapmaking"
	None      = "none"
)

// ByName returns a fresh host for a configuration name
func ByName(name string) (Host, error) {
	switch strings.ToLower(name) {
	case Gameplay:
		return NewTraverser(), nil
	case MapMaking:
		return NewMapBuilder(), nil
	case None, "":
		return nil, nil
	}
	return nil, errors.Errorf("unknown host %q", name)
}

var scriptParam = script.Param{Name: "script", Type: script.HostScript}

func params(extra ...script.Param) []script.Param {
	return append([]script.Param{scriptParam}, extra...)
}

func number(name string) script.Param {
	return script.Param{Name: name, Type: script.HostNumber}
}

func text(name string) script.Param {
	return script.Param{Name: name, Type: script.HostString}
}

// whole converts a script number to an int, rejecting fractions
func whole(name string, value any) (int, error) {
	f, ok := value.(float64)
	if !ok {
		return 0, errors.Errorf("%s must be a number, got %T", name, value)
	}
	if f != math.Trunc(f) {
		return 0, errors.Errorf("%s must be a whole number, got %v", name, f)
	}
	return int(f), nil
}

func register(s *script.Script, specs []script.MethodSpec) error {
	for _, spec := range specs {
		if err := s.RegisterMethod(spec); err != nil {
			return errors.Wrapf(err, "registering %s", strings.Join(spec.Names, "/"))
		}
	}
	return nil
}
