// Package serializer renders values in their canonical textual form.
//
// Emission is depth-first and incremental: scalars print through their
// String method, containers write their delimiters and recurse. The
// serializer is the cycle-checked entry point; the String methods on
// container values assume an acyclic graph.
package serializer

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rdnlang/rdn/types"
	"golang.org/x/exp/slices"
)

// ErrCyclicStructure is returned when a container reaches itself through
// its own children.
var ErrCyclicStructure = errors.New("cyclic structure")

// Serialize renders v in canonical form. The output is deterministic for
// a given value and parses back to an equal one; the only failure mode is
// a value graph with a cycle.
func Serialize(v types.Value) (string, error) {
	var e emitter
	if err := e.emit(v); err != nil {
		return "", err
	}

	return e.sb.String(), nil
}

// emitter walks the value graph, keeping the containers currently being
// written on a stack so a container reached twice on one path is caught
// instead of recursing forever.
type emitter struct {
	sb    strings.Builder
	stack []types.Value
}

func (e *emitter) emit(v types.Value) error {
	if types.IsNull(v) {
		e.sb.WriteString("null")
		return nil
	}

	if !v.Type().IsContainer() {
		e.sb.WriteString(v.String())
		return nil
	}

	// Containers are pointer types, so interface equality is identity.
	if slices.ContainsFunc(e.stack, func(open types.Value) bool { return open == v }) {
		return errors.WithStack(ErrCyclicStructure)
	}
	e.stack = append(e.stack, v)
	defer func() {
		e.stack = e.stack[:len(e.stack)-1]
	}()

	switch v.Type() {
	case types.TypeArray:
		return e.emitArray(v.(*types.ArrayValue))
	case types.TypeObject:
		return e.emitObject(v.(*types.ObjectValue))
	case types.TypeMap:
		return e.emitMap(v.(*types.MapValue))
	default:
		return e.emitSet(v.(*types.SetValue))
	}
}

func (e *emitter) emitArray(v *types.ArrayValue) error {
	e.sb.WriteByte('[')
	var notFirst bool
	err := v.Iterate(func(_ int, vv types.Value) error {
		if notFirst {
			e.sb.WriteString(", ")
		}
		notFirst = true

		return e.emit(vv)
	})
	if err != nil {
		return err
	}
	e.sb.WriteByte(']')

	return nil
}

func (e *emitter) emitObject(v *types.ObjectValue) error {
	e.sb.WriteByte('{')
	var notFirst bool
	err := v.Iterate(func(key string, vv types.Value) error {
		if notFirst {
			e.sb.WriteString(", ")
		}
		notFirst = true

		e.sb.WriteString(types.QuoteText(key))
		e.sb.WriteString(": ")

		return e.emit(vv)
	})
	if err != nil {
		return err
	}
	e.sb.WriteByte('}')

	return nil
}

func (e *emitter) emitMap(v *types.MapValue) error {
	e.sb.WriteString("Map{")
	var notFirst bool
	err := v.Iterate(func(key, vv types.Value) error {
		if notFirst {
			e.sb.WriteString(", ")
		}
		notFirst = true

		if err := e.emit(key); err != nil {
			return err
		}
		e.sb.WriteString(" => ")

		return e.emit(vv)
	})
	if err != nil {
		return err
	}
	e.sb.WriteByte('}')

	return nil
}

func (e *emitter) emitSet(v *types.SetValue) error {
	e.sb.WriteString("Set{")
	var notFirst bool
	err := v.Iterate(func(_ int, vv types.Value) error {
		if notFirst {
			e.sb.WriteString(", ")
		}
		notFirst = true

		return e.emit(vv)
	})
	if err != nil {
		return err
	}
	e.sb.WriteByte('}')

	return nil
}
