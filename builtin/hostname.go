package builtin

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/npillmayer/nasl/runtime"
)

// Localhost is assumed as target if a context has none.
const Localhost = "127.0.0.1"

var hostnameTable = Table{
	"get_host_name":  getHostName,
	"get_host_names": getHostNames,
	"get_host_ip":    getHostIP,
}

func target(ctx *runtime.Context) string {
	if t := ctx.Target(); t != "" {
		return t
	}
	return Localhost
}

// hostName resolves the name of the target. Targets which are not IP
// addresses are taken as names already. Failing reverse lookups leave the
// address as it is.
func hostName(ctx *runtime.Context) string {
	t := target(ctx)
	if net.ParseIP(t) == nil {
		return t
	}
	lookup, cancel := context.WithTimeout(context.Background(), ctx.ResolveTimeout())
	defer cancel()
	names, err := ctx.Resolver().LookupAddr(lookup, t)
	if err != nil || len(names) == 0 {
		tracer().Debugf("no reverse lookup for %s: %v", t, err)
		return t
	}
	return strings.TrimSuffix(names[0], ".")
}

func getHostName(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	return runtime.String(hostName(ctx)), nil
}

func getHostNames(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	return runtime.Array{runtime.String(hostName(ctx))}, nil
}

func getHostIP(reg *runtime.Register, ctx *runtime.Context) (runtime.Value, error) {
	t := target(ctx)
	ip := net.ParseIP(t)
	if ip == nil {
		return nil, runtime.ErrDiagnostic("get_host_ip", fmt.Errorf("target %q is not an IP address", t))
	}
	return runtime.String(ip.String()), nil
}
