package builtin

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nasl/runtime"
)

var coreTable = Table{
	"display":        display,
	"typeof":         typeOf,
	"isnull":         isNull,
	"defined_func":   definedFunc,
	"make_list":      makeList,
	"make_array":     makeArray,
	"max_index":      maxIndex,
	"keys":           keys,
	"get_preference": getPreference,
}

// display prints its arguments, followed by a newline.
func display(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	var b strings.Builder
	for _, v := range reg.Positional() {
		b.WriteString(v.String())
	}
	b.WriteByte('\n')
	if _, err := fmt.Fprint(ctx.Output(), b.String()); err != nil {
		return nil, runtime.ErrDiagnostic("display", err)
	}
	return runtime.Null{}, nil
}

func typeOf(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	v, err := requireArg("typeof", reg, 0, "value")
	if err != nil {
		return nil, err
	}
	switch v.Type() {
	case runtime.NullType:
		return runtime.String("undef"), nil
	case runtime.StringType:
		return runtime.String("data"), nil
	case runtime.DictType:
		return runtime.String("array"), nil
	}
	return runtime.String(v.Type().String()), nil
}

func isNull(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	v, ok := arg(reg, 0)
	if !ok {
		return runtime.Boolean(true), nil
	}
	_, null := v.(runtime.Null)
	return runtime.Boolean(null), nil
}

// definedFunc checks for script functions first, then for built-ins.
func definedFunc(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	name, err := stringArg("defined_func", reg, 0, "name")
	if err != nil {
		return nil, err
	}
	if _, ok := reg.Function(name); ok {
		return runtime.Boolean(true), nil
	}
	_, ok := ctx.Functions().Lookup(name)
	return runtime.Boolean(ok), nil
}

// makeList concatenates its arguments into an array. Arrays are flattened
// one level, dictionaries contribute their values.
func makeList(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	list := runtime.Array{}
	for _, v := range reg.Positional() {
		switch x := v.(type) {
		case runtime.Array:
			for _, e := range x {
				list = append(list, runtime.Clone(e))
			}
		case *runtime.Dict:
			for _, e := range x.Values() {
				list = append(list, runtime.Clone(e))
			}
		case runtime.Null:
		default:
			list = append(list, v)
		}
	}
	return list, nil
}

// makeArray builds a dictionary from alternating keys and values.
func makeArray(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	args := reg.Positional()
	if len(args)%2 != 0 {
		return nil, runtime.ErrWrongArgument("make_array", "odd number of arguments (%d)", len(args))
	}
	d := runtime.NewDict()
	for i := 0; i < len(args); i += 2 {
		d.Put(args[i].String(), runtime.Clone(args[i+1]))
	}
	return d, nil
}

func maxIndex(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	v, err := requireArg("max_index", reg, 0, "array")
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case runtime.Array:
		return runtime.Number(len(x)), nil
	case *runtime.Dict:
		return runtime.Number(x.Len()), nil
	}
	return runtime.Null{}, nil
}

func keys(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	v, err := requireArg("keys", reg, 0, "array")
	if err != nil {
		return nil, err
	}
	result := runtime.Array{}
	switch x := v.(type) {
	case runtime.Array:
		for i := range x {
			result = append(result, runtime.Number(i))
		}
	case *runtime.Dict:
		for _, k := range x.Keys() {
			result = append(result, runtime.String(k))
		}
	default:
		return nil, runtime.ErrWrongArgument("keys", "expected an array, got %s", v.Type())
	}
	return result, nil
}

func getPreference(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	name, err := stringArg("get_preference", reg, 0, "name")
	if err != nil {
		return nil, err
	}
	if v, ok := ctx.Preference(name); ok {
		return runtime.String(v), nil
	}
	return runtime.Null{}, nil
}
