package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/gogpu/pga/internal/cayley"
)

// method is one generated method. Body holds the statements without
// surrounding braces.
type method struct {
	Doc     string
	Recv    string
	RecvVar string
	Name    string
	Params  string
	Result  string
	Body    string
}

// decl is one generated type with its methods.
type decl struct {
	Type    shapeType
	Methods []method
}

var fileTemplate = template.Must(template.New("shapes").Funcs(template.FuncMap{
	"comment": comment,
}).Parse(`// Code generated by shapegen. DO NOT EDIT.

package {{.Package}}
{{range .Decls}}
{{comment .Type.Doc}}
type {{.Type.Name}} struct{{if .Type.Fields}} {
{{- range .Type.Fields}}
	{{.}} float32
{{- end}}
}{{else}}{}{{end}}
{{range .Methods}}
{{comment .Doc}}
func ({{if .RecvVar}}{{.RecvVar}} {{end}}{{.Recv}}) {{.Name}}({{.Params}}) {{.Result}} {
{{.Body}}
}
{{end}}{{end}}`))

// comment turns text into a line comment, one "//" per line.
func comment(text string) string {
	return "// " + strings.ReplaceAll(text, "\n", "\n// ")
}

// generate renders the gofmt-ed source of the shapes file.
func generate(pkg string) ([]byte, error) {
	m := buildModel(pkg)

	var decls []decl
	for _, t := range m.Types {
		decls = append(decls, decl{Type: t, Methods: m.methods(t)})
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Decls   []decl
	}{pkg, decls})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// methods returns every method of t in emission order.
func (m *model) methods(t shapeType) []method {
	recvVar := "a"
	if t.Mask == 0 {
		recvVar = ""
	}
	out := []method{
		{
			Doc:     "Shape returns the Real slots of " + t.Name + ".",
			Recv:    t.Name,
			RecvVar: "",
			Name:    "Shape",
			Result:  "Shape",
			Body:    "\treturn " + t.ShapeExpr(),
		},
		{
			Doc:     "Neg returns -a.",
			Recv:    t.Name,
			RecvVar: recvVar,
			Name:    "Neg",
			Result:  t.Name,
			Body:    literal(t, func(i uint8) string { return "-a." + fieldName(i) }),
		},
		m.getter(t),
		{
			Doc:     "Generic returns the value with its shape carried at run time.",
			Recv:    t.Name,
			RecvVar: recvVar,
			Name:    "Generic",
			Result:  "Generic",
			Body:    genericBody(t),
		},
	}

	for _, n := range namedTypes {
		if n.Mask == t.Mask || n.Mask&t.Mask != t.Mask {
			continue
		}
		out = append(out, method{
			Doc:     "To" + n.Name + " widens a to " + n.Name + ". Slots Absent in " + t.Name + " become Real zeros.",
			Recv:    t.Name,
			RecvVar: recvVar,
			Name:    "To" + n.Name,
			Result:  n.Name,
			Body: literal(n, func(i uint8) string {
				if cayley.Has(t.Mask, i) {
					return "a." + fieldName(i)
				}
				return ""
			}),
		})
	}

	if !t.Named {
		return out
	}
	for _, b := range namedTypes {
		out = append(out, m.add(t, b), m.sub(t, b), m.mul(t, b))
	}
	return out
}

func (m *model) getter(t shapeType) method {
	g := method{
		Doc:     "Get returns the value of slot s. Absent slots read as 0.",
		Recv:    t.Name,
		RecvVar: "a",
		Name:    "Get",
		Params:  "s Slot",
		Result:  "float32",
	}
	if t.Mask == 0 {
		g.RecvVar = ""
		g.Params = "Slot"
		g.Body = "\treturn 0"
		return g
	}
	var b strings.Builder
	b.WriteString("\tswitch s {\n")
	for i := range uint8(cayley.NumSlots) {
		if cayley.Has(t.Mask, i) {
			fmt.Fprintf(&b, "\tcase Slot%s:\n\t\treturn a.%s\n", fieldName(i), fieldName(i))
		}
	}
	b.WriteString("\t}\n\treturn 0")
	g.Body = b.String()
	return g
}

func genericBody(t shapeType) string {
	if t.Mask == 0 {
		return "\treturn Generic{}"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\treturn newGeneric(%s, [NumSlots]float32{\n", t.ShapeExpr())
	for i := range uint8(cayley.NumSlots) {
		if cayley.Has(t.Mask, i) {
			fmt.Fprintf(&b, "\t\tSlot%s: a.%s,\n", fieldName(i), fieldName(i))
		}
	}
	b.WriteString("\t})")
	return b.String()
}

// literal renders "return T{...}" with one line per Real slot of t. A slot
// whose expression is empty is left out of the literal.
func literal(t shapeType, expr func(i uint8) string) string {
	var lines []string
	for i := range uint8(cayley.NumSlots) {
		if !cayley.Has(t.Mask, i) {
			continue
		}
		if e := expr(i); e != "" {
			lines = append(lines, "\t\t"+fieldName(i)+": "+e+",")
		}
	}
	if len(lines) == 0 {
		return "\treturn " + t.Name + "{}"
	}
	return "\treturn " + t.Name + "{\n" + strings.Join(lines, "\n") + "\n\t}"
}

func (m *model) add(a, b shapeType) method {
	r := m.lookup(a.Mask | b.Mask)
	return method{
		Doc:     "Add" + b.Name + " returns a + b.",
		Recv:    a.Name,
		RecvVar: "a",
		Name:    "Add" + b.Name,
		Params:  "b " + b.Name,
		Result:  r.Name,
		Body: literal(r, func(i uint8) string {
			f := fieldName(i)
			switch inA, inB := cayley.Has(a.Mask, i), cayley.Has(b.Mask, i); {
			case inA && inB:
				return "a." + f + " + b." + f
			case inA:
				return "a." + f
			default:
				return "b." + f
			}
		}),
	}
}

func (m *model) sub(a, b shapeType) method {
	r := m.lookup(a.Mask | b.Mask)
	return method{
		Doc:     "Sub" + b.Name + " returns a - b.",
		Recv:    a.Name,
		RecvVar: "a",
		Name:    "Sub" + b.Name,
		Params:  "b " + b.Name,
		Result:  r.Name,
		Body: literal(r, func(i uint8) string {
			f := fieldName(i)
			switch inA, inB := cayley.Has(a.Mask, i), cayley.Has(b.Mask, i); {
			case inA && inB:
				return "a." + f + " - b." + f
			case inA:
				return "a." + f
			default:
				return "-b." + f
			}
		}),
	}
}

func (m *model) mul(a, b shapeType) method {
	r := m.lookup(cayley.ProductMask(a.Mask, b.Mask))
	return method{
		Doc:     "Mul" + b.Name + " returns the geometric product a·b.",
		Recv:    a.Name,
		RecvVar: "a",
		Name:    "Mul" + b.Name,
		Params:  "b " + b.Name,
		Result:  r.Name,
		Body:    literal(r, func(i uint8) string { return productExpr(a.Mask, b.Mask, i) }),
	}
}

// productExpr sums the live Cayley terms of output blade out. Terms whose
// left or right factor is Absent are not emitted.
func productExpr(left, right, out uint8) string {
	var b strings.Builder
	for _, t := range cayley.Terms[out] {
		if !t.Live(left, right) {
			continue
		}
		switch {
		case b.Len() == 0 && t.Sign < 0:
			b.WriteString("-")
		case b.Len() > 0 && t.Sign < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "a.%s*b.%s", fieldName(t.Left), fieldName(t.Right))
	}
	return b.String()
}
