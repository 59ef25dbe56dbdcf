package sandbox

import (
	"strconv"

	"sandca/internal/core"
	"sandca/pkg/powder"
)

// Parameters reports the world settings, brush and material census.
func (w *World) Parameters() core.ParameterSnapshot {
	counts := w.Counts()
	census := make([]core.Parameter, 0, len(powder.Kinds()))
	for _, k := range powder.Kinds() {
		census = append(census, intParam("count_"+k.String(), k.String(), counts[k]))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", w.display.W),
				intParam("height", "Height", w.display.H),
				stringParam("seed", "Seed", strconv.FormatInt(w.seed, 10)),
				stringParam("scenario", "Scenario", w.cfg.Scenario),
				intParam("tick", "Tick", w.ticks),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				stringParam("brush", "Material", w.brush.String()),
				intParam("brush_radius", "Radius", w.radius),
			},
		},
		{Name: "Census", Params: census},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
