//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/dsp/signal"
	"github.com/cwbudde/algo-wave/internal/webdemo"
	"github.com/cwbudde/algo-wave/pipeline"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		base := ""
		if len(args) > 0 {
			base = stringArg(args[0], "")
		}
		engine = webdemo.NewEngine(base)
		return js.Null()
	}))

	api.Set("setParams", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		if p.Type() != js.TypeObject {
			return "params must be an object"
		}
		err := engine.SetParams(webdemo.PlotParams{
			Limit:  intArg(p.Get("limit"), 0),
			Smooth: p.Get("smooth").Truthy(),
			Scale:  stringArg(p.Get("scale"), core.ScaleDecibel.String()),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("sources", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Array").New(0)
		}
		names := engine.Sources()
		arr := js.Global().Get("Array").New(len(names))
		for i, n := range names {
			arr.SetIndex(i, n)
		}
		return arr
	}))

	api.Set("upload", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		if args[1].Type() != js.TypeObject || !args[1].InstanceOf(js.Global().Get("Uint8Array")) {
			return "upload data must be a Uint8Array"
		}
		data := make([]byte, args[1].Length())
		js.CopyBytesToGo(data, args[1])
		name, err := engine.Upload(stringArg(args[0], ""), data)
		if err != nil {
			return err.Error()
		}
		return name
	}))

	api.Set("select", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		arr := args[0]
		if !isArrayLike(arr) {
			return js.Null()
		}
		names := make([]string, arr.Length())
		for i := range names {
			names[i] = stringArg(arr.Index(i), "")
		}
		engine.Select(names)
		return js.Null()
	}))

	// plot fetches over the network, so it must not block the event loop.
	api.Set("plot", export(func(args []js.Value) any {
		kind := "waveform"
		if len(args) > 0 {
			kind = stringArg(args[0], kind)
		}
		return promise(func() (any, error) {
			if engine == nil {
				return js.Null(), nil
			}
			k, err := pipeline.ParseKind(kind)
			if err != nil {
				return nil, err
			}
			traces, err := engine.Plot(context.Background(), k)
			if err != nil {
				return nil, err
			}
			out := js.Global().Get("Array").New(len(traces))
			for i, tr := range traces {
				out.SetIndex(i, traceValue(tr))
			}
			return out, nil
		})
	}))

	api.Set("normalize", export(func(args []js.Value) any {
		if len(args) < 1 {
			return float64Array(nil)
		}
		out, err := signal.Normalize(floats(args[0]))
		if err != nil {
			return err.Error()
		}
		return float64Array(out)
	}))

	api.Set("waveform", export(func(args []js.Value) any {
		return prepare(args, pipeline.KindWaveform)
	}))

	api.Set("spectrum", export(func(args []js.Value) any {
		return prepare(args, pipeline.KindFrequency)
	}))

	js.Global().Set("AlgoWave", api)
	select {}
}

// prepare handles waveform(samples, rate, limit) and
// spectrum(samples, rate, limit, smooth).
func prepare(args []js.Value, kind pipeline.Kind) any {
	if len(args) < 2 {
		return js.Null()
	}
	opts := []core.PipelineOption{}
	if len(args) > 2 && args[2].Truthy() {
		opts = append(opts, core.WithLimit(intArg(args[2], core.DefaultLimit)))
	}
	if len(args) > 3 {
		opts = append(opts, core.WithSmoothing(args[3].Truthy()))
	}

	s, err := pipeline.NewSeries(intArg(args[1], 0), floats(args[0]), "", "")
	if err != nil {
		return err.Error()
	}
	tr, err := pipeline.Prepare(s, kind, core.ApplyPipelineOptions(opts...))
	if err != nil {
		return err.Error()
	}
	return traceValue(tr)
}

func traceValue(tr pipeline.Trace) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("x", float64Array(tr.X))
	obj.Set("y", float64Array(tr.Y))
	obj.Set("color", tr.Color)
	obj.Set("label", tr.Label)
	return obj
}

// js.Value accessors panic on type mismatches, so arguments coming from
// JavaScript go through these checked readers.

func intArg(v js.Value, def int) int {
	if v.Type() != js.TypeNumber {
		return def
	}
	return v.Int()
}

func stringArg(v js.Value, def string) string {
	if v.Type() != js.TypeString {
		return def
	}
	return v.String()
}

func isArrayLike(v js.Value) bool {
	return v.Type() == js.TypeObject && v.Get("length").Type() == js.TypeNumber
}

func floats(v js.Value) []float64 {
	if !isArrayLike(v) {
		return nil
	}
	out := make([]float64, v.Length())
	for i := range out {
		if x := v.Index(i); x.Type() == js.TypeNumber {
			out[i] = x.Float()
		}
	}
	return out
}

func float64Array(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func promise(fn func() (any, error)) js.Value {
	var handler js.Func
	handler = js.FuncOf(func(_ js.Value, args []js.Value) any {
		resolve, reject := args[0], args[1]
		go func() {
			defer handler.Release()
			v, err := fn()
			if err != nil {
				reject.Invoke(js.Global().Get("Error").New(err.Error()))
				return
			}
			resolve.Invoke(v)
		}()
		return nil
	})
	return js.Global().Get("Promise").New(handler)
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
