package interop

import (
	"strings"

	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Signature identifies a method overload by name and parameter kinds
type Signature struct {
	Name   string
	Params []types.Kind
}

func NewSignature(name string, params ...types.Kind) Signature {
	return Signature{Name: name, Params: params}
}

// DeclarationSignature builds the signature a script method declares
func DeclarationSignature(decl *ast.MethodDeclaration) Signature {
	params := make([]types.Kind, len(decl.Parameters))
	for i, p := range decl.Parameters {
		params[i] = p.Type.Kind
	}
	return Signature{Name: decl.Name.Name(), Params: params}
}

// CallSignature builds the signature a call site asks for
func CallSignature(call *ast.MethodCall) Signature {
	params := make([]types.Kind, len(call.ArgumentTypes))
	copy(params, call.ArgumentTypes)
	return Signature{Name: call.MethodName(), Params: params}
}

// Matches compares two signatures. Variable matches any kind on either side.
func (s Signature) Matches(other Signature) bool {
	if s.Name != other.Name || len(s.Params) != len(other.Params) {
		return false
	}
	for i, k := range s.Params {
		if !types.Compatible(k, other.Params[i]) {
			return false
		}
	}
	return true
}

// SignatureMatches is the key equality used by method containers
func SignatureMatches(a, b Signature) bool {
	return a.Matches(b)
}

func (s Signature) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteByte('(')
	for i, k := range s.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
