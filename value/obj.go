package value

import "fmt"

// Obj is a declared object type (spec.md's `obj name do ... end`): a
// name plus its methods, split into bound (first param named `self`)
// and static. Grounded on std.GoMixStruct's Name/Methods shape,
// trimmed of the const/let/type-checked-field machinery spec.md never
// asks for.
type Obj struct {
	Name    string
	Bound   map[string]*Callable // methods whose first param is `self`, plus init
	Static  map[string]*Callable // methods with no `self` param, other than init
	Init    *Callable             // constructor, nil if the obj declares none
}

func NewObj(name string) *Obj {
	return &Obj{Name: name, Bound: make(map[string]*Callable), Static: make(map[string]*Callable)}
}

func (*Obj) Kind() Kind { return KindObj }

func (o *Obj) String() string { return fmt.Sprintf("<obj %s>", o.Name) }

// Instance is a per-object value with its own field table, produced by
// calling an Obj as a constructor (spec.md section 4.4). Grounded on
// std.GoMixObjectInstance's Struct/Fields shape.
type Instance struct {
	Obj    *Obj
	Fields map[string]Value
}

func NewInstance(o *Obj) *Instance {
	return &Instance{Obj: o, Fields: make(map[string]Value)}
}

func (*Instance) Kind() Kind { return KindInstance }

func (inst *Instance) String() string { return fmt.Sprintf("<%s instance>", inst.Obj.Name) }

// Bind returns a Callable closing over inst as the implicit `self`
// receiver of a bound method, so `instance.method` can be evaluated to
// a first-class callable (spec.md section 4.4, "member access").
func (o *Obj) Bind(name string, inst *Instance) (*Callable, bool) {
	m, ok := o.Bound[name]
	if !ok {
		return nil, false
	}
	bound := *m
	bound.BoundSelf = inst
	return &bound, true // Value, not *Instance, but inst satisfies Value
}
