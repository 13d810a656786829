package builtin

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nasl/runtime"
)

var stringTable = Table{
	"strlen":  strlen,
	"string":  toString,
	"int":     toInt,
	"tolower": toLower,
	"toupper": toUpper,
	"substr":  substr,
	"strstr":  strstr,
	"hex":     hex,
	"chomp":   chomp,
}

func strlen(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	s, err := stringArg("strlen", reg, 0, "string")
	if err != nil {
		return nil, err
	}
	return runtime.Number(len(s)), nil
}

// toString concatenates the textual forms of all arguments.
func toString(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	var b strings.Builder
	for _, v := range reg.Positional() {
		b.WriteString(v.String())
	}
	return runtime.String(b.String()), nil
}

// toInt converts to a number; values without a numeric reading become 0.
func toInt(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	v, err := requireArg("int", reg, 0, "value")
	if err != nil {
		return nil, err
	}
	n, _ := runtime.AsNumber(v)
	return runtime.Number(n), nil
}

func toLower(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	s, err := stringArg("tolower", reg, 0, "string")
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.ToLower(s)), nil
}

func toUpper(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	s, err := stringArg("toupper", reg, 0, "string")
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.ToUpper(s)), nil
}

// substr(s, start [, end]) returns s[start..end], end inclusive.
func substr(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	s, err := stringArg("substr", reg, 0, "string")
	if err != nil {
		return nil, err
	}
	start, err := numberArg("substr", reg, 1, "start")
	if err != nil {
		return nil, err
	}
	end := int64(len(s)) - 1
	if _, ok := arg(reg, 2); ok {
		if end, err = numberArg("substr", reg, 2, "end"); err != nil {
			return nil, err
		}
	}
	if start < 0 {
		start = 0
	}
	if end >= int64(len(s)) {
		end = int64(len(s)) - 1
	}
	if start > end {
		return runtime.Null{}, nil
	}
	return runtime.String(s[start : end+1]), nil
}

// strstr returns the rest of s starting with the first occurrence of sub.
func strstr(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	s, err := stringArg("strstr", reg, 0, "string")
	if err != nil {
		return nil, err
	}
	sub, err := stringArg("strstr", reg, 1, "substring")
	if err != nil {
		return nil, err
	}
	i := strings.Index(s, sub)
	if i < 0 {
		return runtime.Null{}, nil
	}
	return runtime.String(s[i:]), nil
}

func hex(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	n, err := numberArg("hex", reg, 0, "value")
	if err != nil {
		return nil, err
	}
	// negative numbers print in two's complement
	return runtime.String(fmt.Sprintf("0x%02x", uint64(n))), nil
}

func chomp(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	s, err := stringArg("chomp", reg, 0, "string")
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.TrimRight(s, " \t\r\n")), nil
}
