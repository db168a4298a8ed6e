package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/token"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/scylladb/go-set/strset"
	"golang.org/x/tools/go/packages"
)

var errMalformedField = errors.New("malformed enum comment field")

var funcMap = template.FuncMap{
	"join": strings.Join,
}

type GeneratorOptions struct {
	Args         []string
	BuildTags    string
	GenerateFlag bool
	GenerateText bool
	Output       string
	Type         string
	Pointer      bool
}

type Generator struct {
	generateIDs    bool
	options        GeneratorOptions
	pkgDefs        map[*ast.Ident]types.Object
	pkgName        string
	underlyingType string
	values         []Value
}

type Value struct {
	ID           string
	Name         string
	OriginalName string
	Value        int64
	String       string
}

func NewGenerator(options GeneratorOptions) *Generator {
	return &Generator{options: options}
}

func (g *Generator) Run() ([]byte, error) {
	var tags []string

	if g.options.BuildTags != "" {
		tags = strings.Split(g.options.BuildTags, ",")
	}

	output := g.options.Output
	if output == "" {
		output = "."
	}

	cfg := &packages.Config{
		Mode:       packages.LoadSyntax,
		Tests:      false,
		BuildFlags: []string{fmt.Sprintf("-tags=%s", strings.Join(tags, " "))},
	}

	pkgs, err := packages.Load(cfg, output)
	if err != nil {
		return nil, err
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found", len(pkgs))
	}

	g.pkgName = pkgs[0].Name
	g.pkgDefs = pkgs[0].TypesInfo.Defs

	for _, file := range pkgs[0].Syntax {
		ast.Inspect(file, g.findType)
	}

	if len(g.values) == 0 {
		return nil, fmt.Errorf("no constants of type %q found", g.options.Type)
	}

	data := struct {
		Args           []string
		GenerateFlag   bool
		GenerateIDs    bool
		GenerateText   bool
		PackageName    string
		Pointer        bool
		Type           string
		UnderlyingType string
		Values         []Value
	}{
		Args:           g.options.Args,
		GenerateFlag:   g.options.GenerateFlag,
		GenerateIDs:    g.generateIDs,
		GenerateText:   g.options.GenerateText,
		PackageName:    g.pkgName,
		Pointer:        g.options.Pointer,
		Type:           g.options.Type,
		UnderlyingType: g.underlyingType,
		Values:         g.values,
	}

	var buf bytes.Buffer

	if err := _tmpl.Execute(&buf, data); err != nil {
		return buf.Bytes(), err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), err
	}

	filename := filepath.Join(output, fmt.Sprintf("%s_enum.go", strings.ToLower(g.options.Type)))

	if err := os.WriteFile(filename, src, 0o644); err != nil {
		return src, err
	}

	return src, nil
}

func (g *Generator) findType(node ast.Node) bool {
	decl, ok := node.(*ast.GenDecl)
	if !ok || decl.Tok != token.CONST {
		// Enum declarations need to be const.
		return true
	}

	typ := "" // name of the constant

	for _, spec := range decl.Specs {
		vspec := spec.(*ast.ValueSpec) // we've already determined this is a const
		if vspec.Type != nil {
			ident, ok := vspec.Type.(*ast.Ident)
			if !ok {
				continue
			}

			typ = ident.Name
		}

		if g.options.Type != typ {
			// Not the type we want.
			continue
		}

		for _, ident := range vspec.Names {
			if ident.Name == "_" {
				continue // ignore
			}

			obj, ok := g.pkgDefs[ident]
			if !ok {
				log.Fatalf("no value for constant %q", typ)
			}

			info, ok := obj.Type().Underlying().(*types.Basic)
			if !ok || info.Info()&types.IsInteger == 0 {
				log.Fatalf("%q must be an integer type", typ)
			}

			g.underlyingType = info.String()

			value := obj.(*types.Const).Val()
			if value.Kind() != constant.Int {
				log.Fatalf("%q constant is not an integer", ident.Name)
			}

			v := Value{
				OriginalName: ident.Name,
				String:       value.String(),
			}

			if info.Info()&types.IsUnsigned != 0 {
				u64, _ := constant.Uint64Val(value)
				v.Value = int64(u64)
			} else {
				v.Value, _ = constant.Int64Val(value)
			}

			comment := vspec.Comment
			if comment != nil && len(comment.List) == 1 {
				name, id, err := parseValueComment(comment.Text())
				if err != nil {
					log.Fatalf("%s: %+v", ident.Name, err)
				}

				v.Name = name
				if id != "" {
					v.ID = id
					g.generateIDs = true
				}
			}

			if v.Name == "" {
				v.Name = defaultValueName(ident.Name)
			}

			g.values = append(g.values, v)
		}
	}

	return false
}

// parseValueComment reads the trailing comment of an enum constant, e.g.
//
//	// name=distinctIntersection, id=3
//
// Names may be quoted. Unknown keys are ignored.
func parseValueComment(text string) (name, id string, err error) {
	fields := strset.New(strings.Split(strings.TrimSpace(text), ", ")...)

	fields.Each(func(field string) bool {
		idx := strings.Index(field, "=")
		if idx <= 0 {
			err = fmt.Errorf("%w: %q", errMalformedField, field)
			return false
		}

		key, val := strings.TrimSpace(field[:idx]), strings.TrimSpace(field[idx+1:])
		if val == "" {
			err = fmt.Errorf("%w: %q", errMalformedField, field)
			return false
		}

		switch key {
		case "name":
			if val[0] == '"' {
				val, err = strconv.Unquote(val)
				if err != nil {
					return false
				}
			}

			name = val
		case "id":
			id = val
		}

		return true
	})

	return name, id, err
}

func defaultValueName(constName string) string {
	name := strings.ToLower(strings.TrimSpace(constName))
	return strings.ReplaceAll(name, "_", "-")
}

var _tmpl = template.Must(template.New("").Funcs(funcMap).Parse(`// Code generated by "gen-enum {{ join .Args " " }}"; DO NOT EDIT.
package {{ .PackageName }}

import (
	"errors"
	"fmt"
)

func _() {
	// An "invalid array index" compiler error signifies that the constant
	// values have changed. Run the generator again.
	var x [1]struct{}
        {{- range .Values }}
	_ = x[{{ .OriginalName }}-{{ .Value }}]
        {{- end }}
}

var _{{ .Type }}_string_to_type = map[string]{{ .Type }}{
	{{- range $i, $value := .Values }}
	"{{ $value.Name }}": {{ $value.OriginalName }},
	{{- end }}
}

var _{{ .Type }}_type_to_string = map[{{ .Type }}]string{
	{{- range $i, $value := .Values }}
	{{ $value.OriginalName }}: "{{ $value.Name }}",
	{{- end }}
}

{{ if .GenerateIDs }}
var _{{ .Type }}_id_to_type = map[{{ .UnderlyingType }}]{{ .Type }}{
	{{- range $i, $value := .Values }}
	{{ $value.ID }}: {{ $value.OriginalName }},
	{{- end }}
}

var _{{ .Type }}_type_to_id = map[{{ .Type }}]{{ .UnderlyingType }}{
	{{- range $i, $value := .Values }}
	{{ $value.OriginalName }}: {{ $value.ID }},
	{{- end }}
}
{{ end }}

var ErrInvalid{{ .Type }} = errors.New("invalid {{ .Type }}")

{{ if .GenerateIDs }}
{{ if .Pointer }}
func (i *{{ .Type }}) ID() {{ .UnderlyingType }} {
	return _{{ .Type }}_type_to_id[*i]
}
{{ else }}
func (i {{ .Type }}) ID() {{ .UnderlyingType }} {
	return _{{ .Type }}_type_to_id[i]
}
{{ end }}
{{ end }}

{{ if .Pointer }}
func (i *{{ .Type }}) String() string {
	return _{{ .Type }}_type_to_string[*i]
}
{{ else }}
func (i {{ .Type }}) String() string {
	return _{{ .Type }}_type_to_string[i]
}
{{ end }}

{{ if .GenerateFlag }}
func (i *{{ .Type }}) Set(s string) error {
	if t, ok := _{{ .Type }}_string_to_type[s]; ok {
		*i = t
		return nil
	}
	return ErrInvalid{{ .Type }}
}

func (i *{{ .Type }}) Type() string {
	return i.String()
}
{{ end }}

{{ if .GenerateText }}
func (i {{ .Type }}) MarshalText() ([]byte, error) {
	if s, ok := _{{ .Type }}_type_to_string[i]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalid{{ .Type }}, i)
}

func (i *{{ .Type }}) UnmarshalText(text []byte) error {
	t, err := Parse{{ .Type }}(string(text))
	if err != nil {
		return err
	}
	*i = t
	return nil
}
{{ end }}

{{ if .GenerateIDs }}
{{ if .Pointer }}
func IDTo{{ .Type }}(i {{ .UnderlyingType }}) *{{ .Type }} {
	if t, ok := _{{ .Type }}_id_to_type[i]; ok {
		return &t
	}
	return nil
}
{{ else }}
func IDTo{{ .Type }}(i {{ .UnderlyingType }}) {{ .Type }} {
	if t, ok := _{{ .Type }}_id_to_type[i]; ok {
		return t
	}
	return 0
}
{{ end }}
{{ end }}

{{ if .Pointer }}
func StringTo{{ .Type }}(s string) *{{ .Type }} {
	if t, ok := _{{ .Type }}_string_to_type[s]; ok {
		return &t
	}
	return nil
}
{{ else }}
func StringTo{{ .Type }}(s string) {{ .Type }} {
	if t, ok := _{{ .Type }}_string_to_type[s]; ok {
		return t
	}
	return 0
}
{{ end }}

func Parse{{ .Type }}(s string) ({{ .Type }}, error) {
	if t, ok := _{{ .Type }}_string_to_type[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid{{ .Type }}, s)
}

func Is{{ .Type }}(s string) bool {
	if _, ok := _{{ .Type }}_string_to_type[s]; ok {
		return true
	}
	return false
}

func {{ .Type }}List() []{{ .Type }} {
	return []{{ .Type }}{
		{{- range $i, $value := .Values }}
		{{ $value.OriginalName }},
		{{- end }}
	}
}
`))
