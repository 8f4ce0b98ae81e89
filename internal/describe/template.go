// Package describe renders definition description templates into styled
// line fragments that any presentation layer can paint.
//
// Placeholders:
//
//	{damage:N}  damages[N]
//	{kind:N}    damage_kinds[N]
//	{value:N}   other_values[N]
//	{stacks}    max_stacks
//
// "{{" and "}}" produce literal braces. Every substituted value is returned
// as a highlighted fragment; surrounding text is passed through unchanged.
package describe

import (
	"strconv"
	"strings"

	"github.com/samdwyer/spellbook/internal/gamedata"
)

// Field identifies where a fragment's text came from.
type Field int

const (
	FieldText Field = iota
	FieldDamage
	FieldDamageKind
	FieldValue
	FieldStacks
)

// String returns the placeholder name of the field.
func (f Field) String() string {
	switch f {
	case FieldText:
		return "text"
	case FieldDamage:
		return "damage"
	case FieldDamageKind:
		return "kind"
	case FieldValue:
		return "value"
	case FieldStacks:
		return "stacks"
	default:
		return "unknown"
	}
}

// Fragment is a run of text within a rendered line.
type Fragment struct {
	Text      string
	Highlight bool
	Field     Field
	Index     int // Source index for indexed fields, -1 otherwise

	// DamageKind is set for damage and kind fragments so renderers can
	// colour them by element.
	DamageKind string
}

// Line is one rendered template line.
type Line []Fragment

// String returns the line's text without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Plain flattens rendered lines to unstyled strings.
func Plain(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// Render renders every template line of def. On any error no lines are
// returned.
func Render(def *gamedata.AbilityDefinition) ([]Line, error) {
	lines := make([]Line, 0, len(def.DescriptionTemplate))
	for i, tmpl := range def.DescriptionTemplate {
		line, err := renderLine(def, i, tmpl)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func renderLine(def *gamedata.AbilityDefinition, lineNo int, tmpl string) (Line, error) {
	var (
		line Line
		text strings.Builder
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}
		line = append(line, Fragment{Text: text.String(), Field: FieldText, Index: -1})
		text.Reset()
	}

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			text.WriteByte('{')
			i++
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			text.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return nil, &TemplateSyntaxError{Line: lineNo, Pos: i, Msg: "unterminated placeholder"}
			}
			frag, err := substitute(def, lineNo, i, tmpl[i+1:i+1+end])
			if err != nil {
				return nil, err
			}
			flush()
			line = append(line, frag)
			i += end + 1
		default:
			text.WriteByte(c)
		}
	}
	flush()
	return line, nil
}

// substitute resolves a single placeholder body such as "damage:1".
func substitute(def *gamedata.AbilityDefinition, lineNo, pos int, body string) (Fragment, error) {
	name, arg, indexed := strings.Cut(strings.TrimSpace(body), ":")

	if name == "stacks" {
		if indexed {
			return Fragment{}, &TemplateSyntaxError{Line: lineNo, Pos: pos, Msg: "{stacks} takes no index"}
		}
		return Fragment{
			Text:      strconv.Itoa(def.MaxStacks),
			Highlight: true,
			Field:     FieldStacks,
			Index:     -1,
		}, nil
	}

	var field Field
	var size int
	switch name {
	case "damage":
		field, size = FieldDamage, len(def.Damages)
	case "kind":
		field, size = FieldDamageKind, len(def.DamageKinds)
	case "value":
		field, size = FieldValue, len(def.OtherValues)
	default:
		return Fragment{}, &TemplateSyntaxError{Line: lineNo, Pos: pos, Msg: "unknown placeholder {" + body + "}"}
	}

	if !indexed {
		return Fragment{}, &TemplateSyntaxError{Line: lineNo, Pos: pos, Msg: "{" + name + "} needs an index"}
	}
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return Fragment{}, &TemplateSyntaxError{Line: lineNo, Pos: pos, Msg: "bad index in {" + body + "}"}
	}
	if idx < 0 || idx >= size {
		return Fragment{}, &TemplateIndexError{Line: lineNo, Field: field, Index: idx, Len: size}
	}

	frag := Fragment{Highlight: true, Field: field, Index: idx}
	switch field {
	case FieldDamage:
		frag.Text = strconv.Itoa(def.Damages[idx])
		frag.DamageKind = def.DamageKinds[idx]
	case FieldDamageKind:
		frag.Text = def.DamageKinds[idx]
		frag.DamageKind = def.DamageKinds[idx]
	case FieldValue:
		frag.Text = def.OtherValues[idx]
	}
	return frag, nil
}
