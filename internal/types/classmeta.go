package types

import "fmt"

// NewClassMeta resolves the effective property table for a class being
// defined with the given immediate parents and own-declared properties
// (name -> Property, each already carrying Source == id). It is the
// transitive merge: iterating parents in any order produces an equal
// result, because each step only ever promotes entries toward clashing
// or shadowed, never the reverse, and diamond-originated duplicates are
// deduplicated by (id, source) before they can double-count.
//
// reg must already have metadata for every parent (i.e. parents were
// resolved and defined before this call) — referencing an unresolved
// parent is a contract violation and panics rather than returning a
// zero-value ClassMeta a caller could mistake for an empty class.
func NewClassMeta(reg Registry, id ClassID, parents map[ClassID]struct{}, ownProps map[string]Property) ClassMeta {
	ancestors := make(map[ClassID]struct{}, len(parents))
	for p := range parents {
		ancestors[p] = struct{}{}
	}

	accessible := make(map[string]Property, len(ownProps))
	for name, prop := range ownProps {
		accessible[name] = prop
	}

	clashing := make(map[string]PropertySet)
	shadowed := make(map[string]PropertySet)

	for parentID := range parents {
		parent, ok := reg.GetClass(parentID)
		if !ok {
			panic(fmt.Sprintf("types: class %d lists unresolved parent %d", id, parentID))
		}

		for ancestor := range parent.Ancestors {
			ancestors[ancestor] = struct{}{}
		}

		// Shadowing is sticky: once hidden in an ancestor, stays hidden.
		for name, set := range parent.Shadowed {
			dst := ensurePropertySet(shadowed, name)
			dst.addAll(set)
		}

		// A clash in an ancestor either stays a clash, or gets promoted
		// to shadowed if this class's own declaration now wins the name.
		for name, set := range parent.Clashing {
			existing, hasAccessible := accessible[name]
			switch {
			case !hasAccessible:
				ensurePropertySet(clashing, name).addAll(set)
			case existing.Source == id:
				ensurePropertySet(shadowed, name).addAll(set)
			default:
				dst := ensurePropertySet(clashing, name)
				dst.addAll(set)
				dst[existing] = struct{}{}
				delete(accessible, name)
			}
		}

		// An ancestor's accessible entry either merges in cleanly, is
		// shadowed by this class's own declaration, unifies with an
		// already-accessible diamond sibling of the same origin, or
		// clashes with whatever is currently accessible under that name.
		for name, prop := range parent.Accessible {
			existing, hasAccessible := accessible[name]
			switch {
			case !hasAccessible:
				if set, clashed := clashing[name]; clashed {
					// Already ambiguous via an earlier parent: stays a clash.
					set[prop] = struct{}{}
				} else {
					accessible[name] = prop
				}
			case existing.Source == id:
				ensurePropertySet(shadowed, name)[prop] = struct{}{}
			case prop.Source == existing.Source:
				// Same originating definition reached via two paths.
			default:
				dst := ensurePropertySet(clashing, name)
				dst[prop] = struct{}{}
				dst[existing] = struct{}{}
				delete(accessible, name)
			}
		}
	}

	return ClassMeta{
		ID:         id,
		Parents:    copyClassIDSet(parents),
		Ancestors:  ancestors,
		Accessible: accessible,
		Clashing:   clashing,
		Shadowed:   shadowed,
	}
}

func ensurePropertySet(m map[string]PropertySet, name string) PropertySet {
	dst, ok := m[name]
	if !ok {
		dst = newPropertySet()
		m[name] = dst
	}
	return dst
}

func copyClassIDSet(s map[ClassID]struct{}) map[ClassID]struct{} {
	out := make(map[ClassID]struct{}, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
