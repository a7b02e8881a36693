package printer

import (
	"encoding/json"
	"io"
	"math"

	"github.com/joshuapare/ednkit/edn"
)

// jsonValue is the JSON projection of one node.
type jsonValue struct {
	Kind     string      `json:"kind"`
	Value    any         `json:"value,omitempty"`
	Tag      string      `json:"tag,omitempty"`
	Items    []jsonValue `json:"items,omitempty"`
	Entries  []jsonEntry `json:"entries,omitempty"`
	Count    int         `json:"count,omitempty"`
	Metadata *jsonValue  `json:"meta,omitempty"`
}

type jsonEntry struct {
	Key jsonValue `json:"key"`
	Val jsonValue `json:"val"`
}

func printJSON(w io.Writer, v *edn.Value) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(v))
}

func toJSON(v *edn.Value) jsonValue {
	out := jsonValue{Kind: v.Kind().String()}
	if m := v.Meta(); m != nil {
		jm := toJSON(m)
		out.Metadata = &jm
	}
	switch v.Kind() {
	case edn.KindList, edn.KindVector, edn.KindSet:
		out.Count = v.Count()
		for i := 0; i < v.Count(); i++ {
			out.Items = append(out.Items, toJSON(v.At(i)))
		}
	case edn.KindMap:
		out.Count = v.Count()
		for i := 0; i < v.Count(); i++ {
			out.Entries = append(out.Entries, jsonEntry{
				Key: toJSON(v.MapKeyAt(i)),
				Val: toJSON(v.MapValAt(i)),
			})
		}
	case edn.KindTagged:
		out.Tag = v.TagString()
		inner := toJSON(v.Inner())
		out.Items = []jsonValue{inner}
	case edn.KindInt:
		out.Value = v.Int()
	case edn.KindFloat:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			out.Value = Scalar(v)
		} else {
			out.Value = f
		}
	case edn.KindBool:
		out.Value = v.Bool()
	default:
		out.Value = Scalar(v)
	}
	return out
}
