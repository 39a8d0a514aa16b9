package descript

import "strings"

// rule matches one directive at the start of in.
type rule func(in string) (d Directive, rest string, ok bool)

// grammar lists the rule table of each namespace in dispatch order:
// identity, representation, balloon, menu, binding, alpha. Within a table
// the first matching rule wins.
var grammar = [][]rule{
	identityRules,
	representationRules,
	balloonRules,
	menuRules,
	bindingRules,
	alphaRules,
}

// parseDirective runs the namespace grammars in order and returns the
// first match.
func parseDirective(in string) (Directive, string, bool) {
	for _, table := range grammar {
		for _, r := range table {
			if d, rest, ok := r(in); ok {
				return d, rest, true
			}
		}
	}
	return nil, in, false
}

// prefixed binds the literal key prefix to a value matcher.
func prefixed[T any](prefix string, value matcher[T], build func(T) Directive) rule {
	return func(in string) (Directive, string, bool) {
		rest, ok := strings.CutPrefix(in, prefix)
		if !ok {
			return nil, in, false
		}
		v, rest, ok := value(rest)
		if !ok {
			return nil, in, false
		}
		return build(v), rest, true
	}
}

// inScope binds a fixed role prefix ("sakura", "kero") followed by suffix
// to a value matcher.
func inScope[T any](s Scope, suffix string, value matcher[T], build func(Scope, T) Directive) rule {
	return prefixed(s.String()+suffix, value, func(v T) Directive { return build(s, v) })
}

// inChar binds charN followed by suffix to a value matcher.
func inChar[T any](suffix string, value matcher[T], build func(Scope, T) Directive) rule {
	return func(in string) (Directive, string, bool) {
		id, rest, ok := charID(in)
		if !ok {
			return nil, in, false
		}
		rest, ok = strings.CutPrefix(rest, suffix)
		if !ok {
			return nil, in, false
		}
		v, rest, ok := value(rest)
		if !ok {
			return nil, in, false
		}
		return build(Char(id), v), rest, true
	}
}

// named instantiates one payload grammar for the sakura and kero roles.
func named[T any](suffix string, value matcher[T], build func(Scope, T) Directive) []rule {
	return []rule{
		inScope(Sakura, suffix, value, build),
		inScope(Kero, suffix, value, build),
	}
}

// scoped instantiates one payload grammar for sakura, kero and charN.
func scoped[T any](suffix string, value matcher[T], build func(Scope, T) Directive) []rule {
	return append(named(suffix, value, build), inChar(suffix, value, build))
}

// rules flattens rule groups into one ordered table.
func rules(groups ...[]rule) []rule {
	var out []rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// one wraps a single rule as a group.
func one(r rule) []rule { return []rule{r} }
