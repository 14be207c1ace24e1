package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/infinite-iroha/pathmaker"
)

// callFlags collects the arguments of a single builder invocation.
type callFlags struct {
	payload []string
	query   []string
	args    string
}

func (f *callFlags) register(flags *pflag.FlagSet) {
	flags.StringArrayVarP(&f.payload, "payload", "p", nil, "token value as key=value (repeatable)")
	flags.StringArrayVarP(&f.query, "query", "q", nil, "query parameter as key=value, order is kept (repeatable)")
	flags.StringVar(&f.args, "args", "", `raw JSON array of builder arguments, e.g. '["users/:id", {"id": 1}]'`)
}

// call turns the flags into a resolved invocation.
// --args goes through the positional resolver, the other flags build the call directly.
func (f *callFlags) call(fragment []string) (pathmaker.Call, error) {
	if f.args != "" {
		if len(f.payload) > 0 || len(f.query) > 0 || len(fragment) > 0 {
			return pathmaker.Call{}, fmt.Errorf("--args cannot be combined with a fragment, --payload or --query")
		}
		args, err := pathmaker.DecodeArgs([]byte(f.args))
		if err != nil {
			return pathmaker.Call{}, err
		}
		return pathmaker.Resolve(args...), nil
	}

	var c pathmaker.Call
	if len(fragment) > 0 {
		c.Fragment, c.HasFragment = fragment[0], true
	}
	if len(f.payload) > 0 {
		c.Payload = make(pathmaker.Payload, len(f.payload))
		for _, kv := range f.payload {
			k, v, err := splitPair(kv)
			if err != nil {
				return pathmaker.Call{}, fmt.Errorf("--payload: %w", err)
			}
			c.Payload[k] = v
		}
	}
	if len(f.query) > 0 {
		q := make(pathmaker.Query, 0, len(f.query))
		for _, kv := range f.query {
			k, v, err := splitPair(kv)
			if err != nil {
				return pathmaker.Call{}, fmt.Errorf("--query: %w", err)
			}
			q = append(q, pathmaker.Param{Key: k, Value: v})
		}
		c.Query = q
	}
	return c, nil
}

func splitPair(kv string) (string, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", kv)
	}
	return k, v, nil
}
