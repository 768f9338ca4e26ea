package hcl

import "github.com/specialistvlad/expandr/internal/config"

// translate overlays the attributes set in root onto model.
func translate(root *fileRoot, model *config.Model) {
	if b := root.Log; b != nil {
		setIf(&model.Log.Level, b.Level)
		setIf(&model.Log.Format, b.Format)
		setIf(&model.Log.Source, b.Source)
	}
	if b := root.Loader; b != nil {
		setIf(&model.Loader.Path, b.Path)
		setIf(&model.Loader.Pattern, b.Pattern)
		setIf(&model.Loader.FailFast, b.FailFast)
		setIf(&model.Loader.ParallelResolve, b.ParallelResolve)
		if b.Skip != nil {
			model.Loader.Skip = b.Skip
		}
	}
	if b := root.Telemetry; b != nil {
		t := &config.Telemetry{URL: b.URL, Namespace: "/", Event: "module"}
		setIf(&t.Namespace, b.Namespace)
		setIf(&t.Event, b.Event)
		setIf(&t.InsecureSkipVerify, b.InsecureSkipVerify)
		model.Telemetry = t
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
