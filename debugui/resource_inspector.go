package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// fieldCache memoises the directly declared exported fields of struct
// types. It is only used from the render goroutine.
type fieldCache map[reflect.Type][]reflect.StructField

func (c fieldCache) fields(t reflect.Type) []reflect.StructField {
	if fields, ok := c[t]; ok {
		return fields
	}
	var fields []reflect.StructField
	if t.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(t) {
			if f.IsExported() && len(f.Index) == 1 {
				fields = append(fields, f)
			}
		}
	}
	c[t] = fields
	return fields
}

// ResourceInspector lists every frame resource and lets numeric, boolean
// and string fields be edited in place.
type ResourceInspector struct {
	cache fieldCache
}

func NewResourceInspector() *ResourceInspector {
	return &ResourceInspector{cache: make(fieldCache)}
}

func (ri *ResourceInspector) Render(resources *frame.Resources) {
	imgui.SetNextWindowPosV(imgui.NewVec2(830, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 500), imgui.CondOnce)
	if !imgui.BeginV("Resources", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	resources.Each(func(typ reflect.Type, ptr reflect.Value) {
		if imgui.TreeNodeStr(typ.String()) {
			ri.renderStruct(typ.String(), ptr.Elem())
			imgui.TreePop()
		}
	})

	imgui.End()
}

func (ri *ResourceInspector) renderStruct(id string, val reflect.Value) {
	for _, field := range ri.cache.fields(val.Type()) {
		fieldVal := val.Field(field.Index[0])
		if field.Type.Kind() == reflect.Ptr {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ri.renderField(id+"."+field.Name, field.Name, fieldVal)
	}
}

func (ri *ResourceInspector) renderField(id, name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", id), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", id), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", id), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(fmt.Sprintf("%s##%s", name, id), &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", id), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ri.renderStruct(id, val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Interface:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
		} else {
			imgui.Text(fmt.Sprintf("%s: %s", name, val.Elem().Type()))
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
