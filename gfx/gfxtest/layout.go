package gfxtest

import (
	"regexp"
	"strconv"
	"strings"
)

// The recorder doesn't compile GLSL, but it reads declarations so that linked programs report the
// attributes, uniforms and uniform blocks a driver would. Everything declared is treated as active.

type uniformInfo struct {
	name   string
	offset int // byte offset inside its block, -1 for default-block uniforms
}

type blockInfo struct {
	name string
	size int
}

type layout struct {
	attribLocations  map[string]int
	uniformLocations map[string]int
	uniforms         []uniformInfo
	blocks           []blockInfo
}

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	glslToken    = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*|[0-9]+|[{}()\[\];=,]`)
)

// std140 size and base alignment per type.
var std140 = map[string][2]int{
	"float": {4, 4}, "int": {4, 4}, "uint": {4, 4}, "bool": {4, 4},
	"vec2": {8, 8}, "ivec2": {8, 8},
	"vec3": {12, 16}, "ivec3": {12, 16},
	"vec4": {16, 16}, "ivec4": {16, 16},
	"mat3": {48, 16},
	"mat4": {64, 16},
}

func tokenize(src string) []string {
	src = blockComment.ReplaceAllString(src, " ")
	src = lineComment.ReplaceAllString(src, " ")
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "#") {
			lines[i] = ""
		}
	}
	return glslToken.FindAllString(strings.Join(lines, "\n"), -1)
}

func parseLayout(vertexSrc, fragmentSrc string) *layout {

	l := &layout{
		attribLocations:  map[string]int{},
		uniformLocations: map[string]int{},
	}

	type attrib struct {
		name     string
		location int
	}
	var attribs []attrib

	addUniform := func(name string) {
		if _, exists := l.uniformLocations[name]; exists {
			return
		}
		l.uniformLocations[name] = len(l.uniformLocations)
		l.uniforms = append(l.uniforms, uniformInfo{name: name, offset: -1})
	}

	for stage, src := range []string{vertexSrc, fragmentSrc} {

		tokens := tokenize(src)
		var stmt []string

		for i := 0; i < len(tokens); i++ {

			switch t := tokens[i]; t {

			case "{":
				if contains(stmt, "uniform") {
					name := stmt[len(stmt)-1]
					i = l.parseBlock(name, tokens, i+1)
					// Skip an optional instance name up to the closing semicolon.
					for i < len(tokens) && tokens[i] != ";" {
						i++
					}
				} else {
					i = skipBody(tokens, i+1)
				}
				stmt = stmt[:0]

			case ";":
				decl, location := stripLayout(stmt)
				stmt = stmt[:0]
				if len(decl) < 2 || contains(decl, "(") {
					continue
				}
				name := decl[len(decl)-1]
				if contains(decl, "uniform") {
					addUniform(name)
				} else if stage == 0 && (contains(decl, "attribute") || contains(decl, "in")) {
					attribs = append(attribs, attrib{name, location})
				}

			default:
				stmt = append(stmt, t)
			}

		}

	}

	used := map[int]bool{}
	for _, a := range attribs {
		if a.location >= 0 {
			l.attribLocations[a.name] = a.location
			used[a.location] = true
		}
	}
	next := 0
	for _, a := range attribs {
		if a.location >= 0 {
			continue
		}
		for used[next] {
			next++
		}
		l.attribLocations[a.name] = next
		used[next] = true
	}

	return l

}

// parseBlock reads block members starting after the opening brace and returns the index of the closing brace.
func (l *layout) parseBlock(name string, tokens []string, i int) int {

	offset := 0
	var member []string

	for ; i < len(tokens) && tokens[i] != "}"; i++ {
		if tokens[i] != ";" {
			member = append(member, tokens[i])
			continue
		}
		if len(member) >= 2 {
			ty, memberName := member[len(member)-2], member[len(member)-1]
			sa, ok := std140[ty]
			if !ok {
				sa = [2]int{16, 16}
			}
			offset = align(offset, sa[1])
			l.uniforms = append(l.uniforms, uniformInfo{name: memberName, offset: offset})
			offset += sa[0]
		}
		member = member[:0]
	}

	l.blocks = append(l.blocks, blockInfo{name: name, size: align(offset, 16)})

	return i

}

func skipBody(tokens []string, i int) int {
	depth := 1
	for ; i < len(tokens); i++ {
		switch tokens[i] {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return i
}

// stripLayout removes a leading layout(...) qualifier, returning the remaining tokens and the declared location (or -1).
func stripLayout(stmt []string) ([]string, int) {
	location := -1
	if len(stmt) < 2 || stmt[0] != "layout" || stmt[1] != "(" {
		return stmt, location
	}
	end := 2
	for ; end < len(stmt) && stmt[end] != ")"; end++ {
		if stmt[end] == "location" && end+2 < len(stmt) && stmt[end+1] == "=" {
			if v, err := strconv.Atoi(stmt[end+2]); err == nil {
				location = v
			}
		}
	}
	if end >= len(stmt) {
		return nil, location
	}
	return stmt[end+1:], location
}

func contains(tokens []string, s string) bool {
	for _, t := range tokens {
		if t == s {
			return true
		}
	}
	return false
}

func align(v, to int) int {
	return (v + to - 1) / to * to
}
