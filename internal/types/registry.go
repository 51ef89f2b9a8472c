package types

import (
	"errors"
	"fmt"
)

// ErrDuplicateDef is returned by AddClass and AddProperty when the target
// id already carries a non-sentinel definition. Callers check it with
// errors.Is; it carries no payload because the id is already known to
// the caller that triggered the redefinition.
var ErrDuplicateDef = errors.New("types: duplicate definition")

// Registry is the contract a caller uses to intern class and property
// names, define their metadata, and look both up again afterward. Every
// (ClassID, PropertyID) slot moves through Absent -> Reserved -> Defined;
// only the final transition is protected against being repeated.
type Registry interface {
	// GetType resolves a name to Int/Float/String for those literal
	// spellings, or to Class(id) if name is an interned class, or
	// reports ok=false if name is not a known type at all.
	GetType(name string) (Type, bool)

	GetClass(id ClassID) (*ClassMeta, bool)
	GetProperty(id PropertyID) (*Property, bool)
	GetClassID(name string) (ClassID, bool)
	GetPropertyID(name string, declaringClass ClassID) (PropertyID, bool)

	// AddClassID returns the existing id for name if already interned,
	// otherwise mints and returns the next sequential ClassID.
	AddClassID(name string) ClassID

	// AddPropertyID mints a fresh PropertyID for (name, declaringClass)
	// and reserves its slot with the sentinel Property. Panics if
	// declaringClass was never interned, or if (name, declaringClass)
	// was already interned: both are contract violations, not user
	// errors.
	AddPropertyID(name string, declaringClass ClassID) PropertyID

	// AddClass attaches meta to id. Fails with ErrDuplicateDef if id
	// already has meta. Panics if id was never interned via AddClassID
	// (a mismatch between an interned id and its name is a caller bug).
	AddClass(id ClassID, meta ClassMeta) error

	// AddProperty fills a reserved property slot. Fails with
	// ErrDuplicateDef if the slot already holds a non-sentinel value.
	// Panics if id was never reserved via AddPropertyID.
	AddProperty(id PropertyID, value Property) error

	GetClassAndName(id ClassID) (*ClassMeta, string, bool)
	GetPropertyAndName(id PropertyID) (*Property, string, bool)
}

// InMemoryRegistry is the Registry implementation backing a single
// tokenize-and-resolve run: nothing here is safe for concurrent writers,
// matching the single-owner mutable store the registry is specified as.
type InMemoryRegistry struct {
	classes    map[ClassID]classEntry
	properties map[PropertyID]propertyEntry

	// classNames maps a name to its interned ClassID. There is
	// deliberately no id-to-name side table: AddClass recovers a
	// class's name by scanning classNames for the matching id, the same
	// reverse-lookup the algorithm this registry ports uses, rather
	// than keeping a second map in sync.
	classNames map[string]ClassID

	// propertyNames maps name -> declaring class -> PropertyID, since
	// (name, declaringClass) pairs, not bare names, are what's unique.
	propertyNames map[string]map[ClassID]PropertyID

	nextClassID    ClassID
	nextPropertyID PropertyID
}

type classEntry struct {
	meta ClassMeta
	name string
}

type propertyEntry struct {
	prop Property
	name string
}

// NewInMemoryRegistry returns an empty registry with id counters starting
// at 1; id 0 stays reserved and is never handed out.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{
		classes:        make(map[ClassID]classEntry),
		properties:     make(map[PropertyID]propertyEntry),
		classNames:     make(map[string]ClassID),
		propertyNames:  make(map[string]map[ClassID]PropertyID),
		nextClassID:    1,
		nextPropertyID: 1,
	}
}

func (r *InMemoryRegistry) GetType(name string) (Type, bool) {
	switch name {
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "string":
		return TypeString, true
	}
	if id, ok := r.GetClassID(name); ok {
		return NewClassType(id), true
	}
	return Type{}, false
}

func (r *InMemoryRegistry) GetClass(id ClassID) (*ClassMeta, bool) {
	meta, _, ok := r.GetClassAndName(id)
	return meta, ok
}

func (r *InMemoryRegistry) GetProperty(id PropertyID) (*Property, bool) {
	prop, _, ok := r.GetPropertyAndName(id)
	return prop, ok
}

func (r *InMemoryRegistry) GetClassID(name string) (ClassID, bool) {
	id, ok := r.classNames[name]
	return id, ok
}

func (r *InMemoryRegistry) GetPropertyID(name string, declaringClass ClassID) (PropertyID, bool) {
	byClass, ok := r.propertyNames[name]
	if !ok {
		return 0, false
	}
	id, ok := byClass[declaringClass]
	return id, ok
}

func (r *InMemoryRegistry) AddClassID(name string) ClassID {
	if id, ok := r.GetClassID(name); ok {
		return id
	}
	id := r.nextClassID
	r.nextClassID++
	r.classNames[name] = id
	return id
}

func (r *InMemoryRegistry) AddPropertyID(name string, declaringClass ClassID) PropertyID {
	if _, ok := r.classNameByID(declaringClass); !ok {
		panic(fmt.Sprintf("types: interning property %q for unknown class %d", name, declaringClass))
	}

	byClass, ok := r.propertyNames[name]
	if !ok {
		byClass = make(map[ClassID]PropertyID)
		r.propertyNames[name] = byClass
	}
	if _, exists := byClass[declaringClass]; exists {
		panic(fmt.Sprintf("types: duplicate property %q on class %d", name, declaringClass))
	}

	id := r.nextPropertyID
	r.nextPropertyID++
	byClass[declaringClass] = id

	if _, exists := r.properties[id]; exists {
		panic(fmt.Sprintf("types: duplicate property id %d minted", id))
	}
	r.properties[id] = propertyEntry{
		prop: Property{ID: id, InnerType: Type{Kind: Invalid}, Source: 0},
		name: name,
	}

	return id
}

func (r *InMemoryRegistry) AddClass(id ClassID, meta ClassMeta) error {
	if _, exists := r.classes[id]; exists {
		return ErrDuplicateDef
	}

	name, ok := r.classNameByID(id)
	if !ok {
		panic(fmt.Sprintf("types: defining class %d that was never interned", id))
	}

	r.classes[id] = classEntry{meta: meta, name: name}
	return nil
}

func (r *InMemoryRegistry) AddProperty(id PropertyID, value Property) error {
	entry, ok := r.properties[id]
	if !ok {
		panic(fmt.Sprintf("types: defining property %d that was never reserved", id))
	}

	if !entry.prop.IsSentinel() {
		return ErrDuplicateDef
	}

	entry.prop = value
	r.properties[id] = entry
	return nil
}

func (r *InMemoryRegistry) GetClassAndName(id ClassID) (*ClassMeta, string, bool) {
	entry, ok := r.classes[id]
	if !ok {
		return nil, "", false
	}
	meta := entry.meta
	return &meta, entry.name, true
}

func (r *InMemoryRegistry) GetPropertyAndName(id PropertyID) (*Property, string, bool) {
	entry, ok := r.properties[id]
	if !ok {
		return nil, "", false
	}
	prop := entry.prop
	return &prop, entry.name, true
}

// classNameByID recovers a class's name by scanning classNames for the
// matching id, exactly mirroring the reverse-lookup the algorithm's own
// add_class uses instead of maintaining a second id-to-name map.
func (r *InMemoryRegistry) classNameByID(id ClassID) (string, bool) {
	for name, classID := range r.classNames {
		if classID == id {
			return name, true
		}
	}
	return "", false
}
