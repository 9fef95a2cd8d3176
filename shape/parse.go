// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shape

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gx-org/shaping/fmterr"
)

const (
	broadcastMod = '#'
	variadicMod  = '*'
	anonymousMod = '_'
	treePathMod  = '?'

	ellipsis = "..."
)

type bodyKind int

const (
	namedBody bodyKind = iota
	fixedBody
	symbolicBody
)

type parser struct {
	spec string

	// variadic is the index of the variadic axis or -1 if none has been parsed yet.
	variadic int
	// anonymousVariadic is true if the variadic axis has no name.
	anonymousVariadic bool
}

// axis is a token being parsed.
type axis struct {
	index int
	token string
	body  string

	broadcastable bool
	variadic      bool
	anonymous     bool
}

// Parse a shape specification, e.g. "batch 3 224 224".
func Parse(spec string) (Shape, error) {
	p := &parser{spec: spec, variadic: -1}
	tokens := strings.Fields(spec)
	s := make(Shape, 0, len(tokens))
	for i, token := range tokens {
		d, err := p.parseAxis(i, token)
		if err != nil {
			return nil, err
		}
		s = append(s, d)
	}
	return s, nil
}

// MustParse parses a shape specification and panics if the specification is invalid.
func MustParse(spec string) Shape {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func (p *parser) parseError(ax *axis, reason fmterr.Reason) *fmterr.ParseError {
	return fmterr.NewParseError(p.spec, ax.index, ax.token, reason)
}

func (p *parser) unsupported(ax *axis, feature fmterr.Feature) error {
	return fmterr.NewUnsupportedError(p.spec, ax.index, ax.token, feature)
}

func (p *parser) parseAxis(index int, token string) (Dim, error) {
	ax := &axis{index: index, token: token, body: token}
	if strings.Contains(token, ",") && !strings.Contains(token, "(") {
		// Disabled when there are brackets to allow for function calls
		// in symbolic axes, e.g. `min(a,b)`.
		return nil, p.parseError(ax, fmterr.CommaSeparator)
	}
	if strings.HasSuffix(token, string(broadcastMod)) {
		return nil, p.parseError(ax, fmterr.LegacyBroadcast)
	}
	if strings.HasSuffix(token, string(treePathMod)) {
		return nil, p.unsupported(ax, fmterr.TreePath)
	}
	kind := namedBody
	if strings.Contains(token, ellipsis) {
		if token != ellipsis {
			return nil, p.parseError(ax, fmterr.MalformedEllipsis)
		}
		ax.body = ""
		ax.variadic = true
		ax.anonymous = true
	} else {
		if err := p.parseModifiers(ax); err != nil {
			return nil, err
		}
		kind = classify(ax.body)
	}
	if ax.variadic {
		if err := p.checkVariadic(ax, kind); err != nil {
			return nil, err
		}
	}
	switch kind {
	case fixedBody:
		return p.fixedAxis(ax)
	case namedBody:
		return p.namedAxis(ax)
	default:
		return nil, p.symbolicAxis(ax)
	}
}

// parseModifiers consumes the modifiers and the alias at the beginning of the token.
func (p *parser) parseModifiers(ax *axis) error {
	for len(ax.body) > 0 {
		var flag *bool
		switch ax.body[0] {
		case broadcastMod:
			flag = &ax.broadcastable
		case variadicMod:
			flag = &ax.variadic
		case anonymousMod:
			flag = &ax.anonymous
		case treePathMod:
			return p.unsupported(ax, fmterr.TreePath)
		}
		if flag != nil {
			if *flag {
				return p.parseError(ax, fmterr.DuplicateModifier).WithModifier(rune(ax.body[0]))
			}
			*flag = true
			ax.body = ax.body[1:]
			continue
		}
		switch strings.Count(ax.body, "=") {
		case 0:
			return nil
		case 1:
			// `rows=3` is an alternative syntax for `3`.
			name, value, _ := strings.Cut(ax.body, "=")
			if !isIdentifier(name) || value == "" {
				return p.parseError(ax, fmterr.MalformedAlias)
			}
			ax.body = value
		default:
			return p.parseError(ax, fmterr.MalformedAlias)
		}
	}
	return nil
}

func (p *parser) checkVariadic(ax *axis, kind bodyKind) error {
	if p.variadic < 0 {
		p.variadic = ax.index
		p.anonymousVariadic = ax.anonymous
		return nil
	}
	if kind == namedBody && p.anonymousVariadic != ax.anonymous {
		return p.unsupported(ax, fmterr.MixedVariadic)
	}
	return p.parseError(ax, fmterr.MultipleVariadic)
}

func (p *parser) fixedAxis(ax *axis) (Dim, error) {
	if ax.variadic {
		return nil, p.parseError(ax, fmterr.FixedModifier).WithModifier(variadicMod)
	}
	if ax.anonymous {
		return nil, p.parseError(ax, fmterr.FixedModifier).WithModifier(anonymousMod)
	}
	// The body only has digits so conversion can only fail on overflow.
	size, err := strconv.Atoi(ax.body)
	if err != nil {
		return nil, p.parseError(ax, fmterr.SizeOverflow)
	}
	return Fixed{Size: size}, nil
}

func (p *parser) namedAxis(ax *axis) (Dim, error) {
	if ax.anonymous {
		if ax.broadcastable {
			return nil, p.parseError(ax, fmterr.AnonymousBroadcast)
		}
		if ax.variadic {
			return AnonymousVariadic{}, nil
		}
		return Anonymous{}, nil
	}
	if ax.variadic {
		return NamedVariadic{Name: ax.body, Broadcastable: ax.broadcastable}, nil
	}
	return Named{Name: ax.body, Broadcastable: ax.broadcastable}, nil
}

func (p *parser) symbolicAxis(ax *axis) error {
	if ax.anonymous {
		return p.parseError(ax, fmterr.SymbolicModifier).WithModifier(anonymousMod)
	}
	if ax.variadic {
		return p.parseError(ax, fmterr.SymbolicModifier).WithModifier(variadicMod)
	}
	return p.unsupported(ax, fmterr.SymbolicAxis)
}

func classify(body string) bodyKind {
	if body == "" || isIdentifier(body) {
		return namedBody
	}
	if isNumber(body) {
		return fixedBody
	}
	return symbolicBody
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
