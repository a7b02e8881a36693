package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/ednkit/edn"
)

func printText(w io.Writer, v *edn.Value, opts Options) error {
	return textNode(w, v, 0, opts)
}

func textNode(w io.Writer, v *edn.Value, depth int, opts Options) error {
	pad := strings.Repeat(" ", depth*opts.IndentSize)
	if opts.ShowMeta && v.Meta() != nil {
		if _, err := fmt.Fprintf(w, "%s^meta\n", pad); err != nil {
			return err
		}
		if err := textNode(w, v.Meta(), depth+1, opts); err != nil {
			return err
		}
	}
	switch v.Kind() {
	case edn.KindList, edn.KindVector, edn.KindSet:
		if _, err := fmt.Fprintf(w, "%s%s (%d)\n", pad, v.Kind(), v.Count()); err != nil {
			return err
		}
		for i := 0; i < v.Count(); i++ {
			if err := textNode(w, v.At(i), depth+1, opts); err != nil {
				return err
			}
		}
	case edn.KindMap:
		if _, err := fmt.Fprintf(w, "%smap (%d)\n", pad, v.Count()); err != nil {
			return err
		}
		for i := 0; i < v.Count(); i++ {
			if err := textNode(w, v.MapKeyAt(i), depth+1, opts); err != nil {
				return err
			}
			if err := textNode(w, v.MapValAt(i), depth+2, opts); err != nil {
				return err
			}
		}
	case edn.KindTagged:
		if _, err := fmt.Fprintf(w, "%stagged #%s\n", pad, v.TagString()); err != nil {
			return err
		}
		return textNode(w, v.Inner(), depth+1, opts)
	default:
		if _, err := fmt.Fprintf(w, "%s%s %s\n", pad, v.Kind(), Scalar(v)); err != nil {
			return err
		}
	}
	return nil
}

// Scalar renders a leaf value for display.
func Scalar(v *edn.Value) string {
	switch v.Kind() {
	case edn.KindNil:
		return "nil"
	case edn.KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case edn.KindInt:
		return fmt.Sprintf("%d", v.Int())
	case edn.KindFloat:
		return fmt.Sprintf("%g", v.Float())
	case edn.KindBigInt:
		return bigIntString(v)
	case edn.KindBigDec:
		return signPrefix(v) + string(v.CleanDigits()) + "M"
	case edn.KindRatio:
		return fmt.Sprintf("%d/%d", v.Num(), v.Den())
	case edn.KindBigRatio:
		return signPrefix(v) + string(v.RawString()) + "/" + string(v.NamespaceBytes())
	case edn.KindChar:
		return fmt.Sprintf("%q", v.Char())
	case edn.KindString:
		s, err := v.Str()
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}
		return fmt.Sprintf("%q", s)
	case edn.KindSymbol:
		return qualifiedName(v)
	case edn.KindKeyword:
		return ":" + qualifiedName(v)
	case edn.KindExternal:
		return fmt.Sprintf("external(%d)", v.ExtID())
	default:
		return v.Kind().String()
	}
}

func qualifiedName(v *edn.Value) string {
	if v.HasNamespace() {
		return v.Namespace() + "/" + v.Name()
	}
	return v.Name()
}

func signPrefix(v *edn.Value) string {
	if v.Negative() {
		return "-"
	}
	return ""
}

func bigIntString(v *edn.Value) string {
	z, err := v.BigIntValue()
	if err != nil {
		return signPrefix(v) + string(v.RawString())
	}
	return z.String() + "N"
}
