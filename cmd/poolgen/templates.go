package main

import "text/template"

var kernelTemplate = template.Must(template.New("kernel").Parse(`// Code generated by poolgen. DO NOT EDIT.
{{- if .Target.BuildTag}}
//go:build {{.Target.BuildTag}}
{{- end}}

package {{.Package}}

import (
{{- if .Target.VecImport}}
	"{{.Target.VecImport}}"
{{end}}
	"github.com/ajroetker/go-hwypool/hwy"
)

// kernels_{{.Suffix}} holds the {{.Target.Name}} variants indexed by [Kind][count-1].
var kernels_{{.Suffix}} = [numKinds][MaxOutputCount]KernelFunc{
{{- range .Kinds}}
	{{.Name}}: {
	{{- range .Variants}}
		pool{{.Kind}}{{.Count}}_{{$.Suffix}},
	{{- end}}
	},
{{- end}}
}
{{range $v := .Variants}}
// pool{{$v.Kind}}{{$v.Count}}_{{$.Suffix}} reduces {{$v.Count}} adjacent {{$v.Kind}} output block{{if gt $v.Count 1}}s{{end}}.
func pool{{$v.Kind}}{{$v.Count}}_{{$.Suffix}}(in []float32, w *Window, out []float32) []float32 {
	checkCall({{$v.Kind}}, {{$v.Count}}, in, w, out)
{{- if $v.IsMax}}
	acc0 := {{$.Vec}}.BroadcastFloat32x8(hwy.LowestFloat32)
{{- else}}
	acc0 := {{$.Vec}}.BroadcastFloat32x8(0)
{{- end}}
{{- range $v.Rest}}
	acc{{.Index}} := acc0
{{- end}}
{{- range $v.Rest}}
	p{{.Index}} := {{.Stride}}
{{- end}}
{{- if $v.CountsSamples}}
	n := 0
{{- else if $v.Denominator}}
	div := {{$.Vec}}.BroadcastFloat32x8(float32({{$v.Denominator}}))
{{- end}}

	for r, row := 0, 0; r < w.Rows; r, row = r+1, row+w.RowStride {
		for c, off := 0, row; c < w.Cols; c, off = c+1, off+w.ColStride {
{{- range $v.Positions}}
			acc{{.Index}} = acc{{.Index}}.{{$v.Op}}({{$.Vec}}.LoadFloat32x8Slice(in[{{.In}}:]))
{{- end}}
{{- if $v.CountsSamples}}
			n++
{{- end}}
		}
	}

{{- if $v.CountsSamples}}
	div := {{$.Vec}}.BroadcastFloat32x8(float32(n))
{{- end}}
{{- range $v.Positions}}
	acc{{.Index}}{{if not $v.IsMax}}.Div(div){{end}}.StoreSlice({{.Out}})
{{- end}}
	return out[{{$v.Advance}}:]
}
{{end -}}
`))

var dispatchTemplate = template.Must(template.New("dispatch").Parse(`// Code generated by poolgen. DO NOT EDIT.
//go:build {{.BuildTag}}

package {{.Package}}

import "github.com/ajroetker/go-hwypool/hwy"

func init() {
{{- range .ArchTargets}}
	if {{.Detect}} {
		init{{.Name}}()
		return
	}
{{- end}}
	initFallback()
}
{{range .ArchTargets}}
func init{{.Name}}() {
	kernelTable = kernels_{{.Suffix}}
	kernelTarget = "{{.Suffix}}"
}
{{end}}
func initFallback() {
	kernelTable = kernels_{{.Fallback.Suffix}}
	kernelTarget = "{{.Fallback.Suffix}}"
}
`))

var dispatchOtherTemplate = template.Must(template.New("dispatchOther").Parse(`// Code generated by poolgen. DO NOT EDIT.
{{- if .BuildTag}}
//go:build {{.BuildTag}}
{{- end}}

package {{.Package}}

func init() {
	initFallback()
}

func initFallback() {
	kernelTable = kernels_{{.Fallback.Suffix}}
	kernelTarget = "{{.Fallback.Suffix}}"
}
`))
