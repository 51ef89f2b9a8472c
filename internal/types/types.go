// Package types implements the per-class effective property table: dense
// identifier interning for classes and properties, and the transitive
// merge that partitions every name a class can see into accessible,
// clashing, and shadowed under multiple inheritance.
package types

// ClassID and PropertyID are dense, sequentially assigned identifiers.
// Both start at 1; 0 is reserved and never handed out by AddClassID or
// AddPropertyID.
type ClassID uint32
type PropertyID uint32

// Kind discriminates the cases of Type. Invalid is the zero value on
// purpose: a freshly reserved property slot is a zero-value Type before
// AddProperty fills it in, so the sentinel falls out of Go's zero value
// instead of needing explicit construction everywhere a slot is reserved.
type Kind int

const (
	Invalid Kind = iota
	Int
	Float
	String
	Class
)

var kindNames = map[Kind]string{
	Invalid: "Invalid",
	Int:     "Int",
	Float:   "Float",
	String:  "String",
	Class:   "Class",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Type is Int, Float, String, Class(ClassID), or the sentinel Invalid.
// ClassID is only meaningful when Kind == Class.
type Type struct {
	Kind    Kind
	ClassID ClassID
}

// IsValid reports whether t is anything other than the Invalid sentinel.
func (t Type) IsValid() bool {
	return t.Kind != Invalid
}

var (
	TypeInt    = Type{Kind: Int}
	TypeFloat  = Type{Kind: Float}
	TypeString = Type{Kind: String}
)

// NewClassType builds the Type naming class id.
func NewClassType(id ClassID) Type {
	return Type{Kind: Class, ClassID: id}
}

// Property is a single property slot: the id minted for it, its type
// (Invalid until defined), and the class that originally declared it.
// Two Propertys are equal, and hash equal for use as a set element
// (map[Property]struct{}), iff id, type, and source all match — per the
// registry's dedup rule, (id, source) equality is what actually matters,
// since a PropertyID is unique registry-wide and so already determines
// the type.
type Property struct {
	ID        PropertyID
	InnerType Type
	Source    ClassID
}

// IsSentinel reports whether p is a reserved-but-undefined slot.
func (p Property) IsSentinel() bool {
	return !p.InnerType.IsValid()
}

// PropertySet is a set of Property records, used where two or more
// ancestors contribute incompatible or hidden definitions under one name.
type PropertySet map[Property]struct{}

func newPropertySet() PropertySet {
	return make(PropertySet)
}

func (s PropertySet) addAll(other PropertySet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// ClassMeta is the resolved, per-class view of every property name
// reachable through inheritance: what it resolves to (Accessible), what's
// ambiguous (Clashing), and what's been overridden out of visibility
// (Shadowed). Built once by NewClassMeta and never mutated afterward.
type ClassMeta struct {
	ID         ClassID
	Parents    map[ClassID]struct{}
	Ancestors  map[ClassID]struct{}
	Accessible map[string]Property
	Clashing   map[string]PropertySet
	Shadowed   map[string]PropertySet
}
