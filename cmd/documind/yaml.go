package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong configuration loader for YAML files. Keys match flag names
// with dashes or underscores, either at the top level or nested under the
// command name:
//
//	log-level: debug
//	serve:
//	  port: 8080
//	  jwt_secret: change-me
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		scopes := []map[string]any{values}
		if parent != nil && parent.Command != nil {
			if nested, ok := values[parent.Command.Name].(map[string]any); ok {
				scopes = append([]map[string]any{nested}, scopes...)
			}
		}
		for _, scope := range scopes {
			if v, ok := lookup(scope, flag.Name); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookup(values map[string]any, name string) (any, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if v, ok := values[key]; ok {
			return v, true
		}
	}
	return nil, false
}
