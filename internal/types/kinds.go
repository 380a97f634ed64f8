package types

// Kind is a SandScript value type. The order matches registration order.
type Kind int

const (
	Nothing Kind = iota
	Variable
	Boolean
	Character
	Number
	Method
	String
)

// HostType names the Go representation a kind is backed by at the host boundary
type HostType string

const (
	HostVoid   HostType = "void"
	HostBool   HostType = "bool"
	HostChar   HostType = "rune"
	HostNumber HostType = "float64"
	HostString HostType = "string"
	HostValue  HostType = "Value"
	HostMethod HostType = "*Method"
	HostScript HostType = "*Script"
)

type kindInfo struct {
	name       string
	identifier string
	display    string
	host       HostType
}

var kindTable = [...]kindInfo{
	Nothing:   {name: "Nothing", identifier: "void", display: "Nothing", host: HostVoid},
	Variable:  {name: "Variable", identifier: "var", display: "Any", host: HostValue},
	Boolean:   {name: "Boolean", identifier: "bool", display: "Boolean", host: HostBool},
	Character: {name: "Character", identifier: "char", display: "Character", host: HostChar},
	Number:    {name: "Number", identifier: "number", display: "Number", host: HostNumber},
	Method:    {name: "Method", display: "Method", host: HostMethod},
	String:    {name: "String", identifier: "string", display: "String", host: HostString},
}

// LiteralKinds lists the kinds with a literal grammar in the order the lexer tries them.
var LiteralKinds = []Kind{Boolean, Character, Number, String}

// All returns every kind in registration order
func All() []Kind {
	return []Kind{Nothing, Variable, Boolean, Character, Number, Method, String}
}

func (k Kind) valid() bool {
	return k >= Nothing && k <= String
}

// Name is the type name used in diagnostics about operators
func (k Kind) Name() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindTable[k].name
}

// Identifier is the source keyword declaring a variable of this kind, empty if none
func (k Kind) Identifier() string {
	if !k.valid() {
		return ""
	}
	return kindTable[k].identifier
}

// String is the display name used in signatures and type mismatch messages
func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindTable[k].display
}

func (k Kind) Host() HostType {
	if !k.valid() {
		return ""
	}
	return kindTable[k].host
}

// IsLiteral reports whether the kind has a literal grammar
func (k Kind) IsLiteral() bool {
	switch k {
	case Boolean, Character, Number, String:
		return true
	}
	return false
}

// Default returns the zero value of a declaration with no initializer
func (k Kind) Default() any {
	switch k {
	case Boolean:
		return false
	case Character:
		return rune(0)
	case Number:
		return float64(0)
	case String:
		return ""
	default:
		return nil
	}
}

// ByIdentifier finds the kind declared by a type keyword
func ByIdentifier(identifier string) (Kind, bool) {
	if identifier == "" {
		return Nothing, false
	}
	for _, k := range All() {
		if kindTable[k].identifier == identifier {
			return k, true
		}
	}
	return Nothing, false
}

// ByHost finds the kind backed by a host type. HostScript has no kind.
func ByHost(host HostType) (Kind, bool) {
	for _, k := range All() {
		if kindTable[k].host == host {
			return k, true
		}
	}
	return Nothing, false
}

// Typed is implemented by host objects that carry their own kind, like methods
type Typed interface {
	ScriptKind() Kind
}

// Of returns the kind of a raw interpreter value
func Of(value any) (Kind, bool) {
	switch v := value.(type) {
	case nil:
		return Nothing, true
	case bool:
		return Boolean, true
	case rune:
		return Character, true
	case float64:
		return Number, true
	case string:
		return String, true
	case Typed:
		return v.ScriptKind(), true
	}
	return Nothing, false
}

// Compatible is the loose check: equal kinds, or either side is Variable
func Compatible(a, b Kind) bool {
	return a == b || a == Variable || b == Variable
}
