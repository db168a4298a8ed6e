package upset

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

type fontSizeKind uint8

const (
	fontSizeUnset fontSizeKind = iota
	fontSizeNumber
	fontSizeString
)

// FontSize is either unset (the zero value), a number, or a CSS-style size
// string such as "10px". The renderer interprets it; nothing is validated.
type FontSize struct {
	kind fontSizeKind
	num  float64
	str  string
}

// Px returns a numeric font size.
func Px(n float64) FontSize {
	return FontSize{kind: fontSizeNumber, num: n}
}

// CSS returns a font size given as a CSS size specifier.
func CSS(s string) FontSize {
	return FontSize{kind: fontSizeString, str: s}
}

func (f FontSize) IsSet() bool {
	return f.kind != fontSizeUnset
}

// Value returns a float64, a string, or nil when unset.
func (f FontSize) Value() any {
	switch f.kind {
	case fontSizeNumber:
		return f.num
	case fontSizeString:
		return f.str
	default:
		return nil
	}
}

func (f FontSize) String() string {
	switch f.kind {
	case fontSizeNumber:
		return strconv.FormatFloat(f.num, 'f', -1, 64)
	case fontSizeString:
		return f.str
	default:
		return "unset"
	}
}

func (f FontSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value())
}

// FontSizes holds optional font size overrides for the parts of the chart.
// Unset fields fall back to the renderer's defaults.
type FontSizes struct {
	ChartLabel  FontSize `mapstructure:"chartLabel"`
	AxisTick    FontSize `mapstructure:"axisTick"`
	SetLabel    FontSize `mapstructure:"setLabel"`
	BarLabel    FontSize `mapstructure:"barLabel"`
	ExportLabel FontSize `mapstructure:"exportLabel"`
	Legend      FontSize `mapstructure:"legend"`
	Title       FontSize `mapstructure:"title"`
	Description FontSize `mapstructure:"description"`
}

// Copy returns an independent copy.
func (f *FontSizes) Copy() *FontSizes {
	c := *f
	return &c
}

// ToTransportForm returns the set fields keyed by their transport names.
// Unset fields are omitted.
func (f *FontSizes) ToTransportForm() map[string]any {
	out := make(map[string]any)

	for _, field := range f.fields() {
		if field.size.IsSet() {
			out[field.key] = field.size.Value()
		}
	}

	return out
}

type fontSizeField struct {
	key  string
	size FontSize
}

func (f *FontSizes) fields() []fontSizeField {
	return []fontSizeField{
		{"chartLabel", f.ChartLabel},
		{"axisTick", f.AxisTick},
		{"setLabel", f.SetLabel},
		{"barLabel", f.BarLabel},
		{"exportLabel", f.ExportLabel},
		{"legend", f.Legend},
		{"title", f.Title},
		{"description", f.Description},
	}
}

// DecodeFontSizes builds FontSizes from its transport form. Unknown keys and
// values that are neither numbers nor strings are rejected; nil values leave
// the field unset.
func DecodeFontSizes(m map[string]any) (*FontSizes, error) {
	var out FontSizes

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  fontSizeHook,
		ErrorUnused: true,
		Result:      &out,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: font sizes: %s", ErrInvalidArgument, err)
	}

	return &out, nil
}

var fontSizeType = reflect.TypeOf(FontSize{})

func fontSizeHook(from, to reflect.Type, data any) (any, error) {
	if to != fontSizeType {
		return data, nil
	}

	switch v := data.(type) {
	case nil:
		return FontSize{}, nil
	case FontSize:
		return v, nil
	case string:
		return CSS(v), nil
	case int:
		return Px(float64(v)), nil
	case int64:
		return Px(float64(v)), nil
	case uint64:
		return Px(float64(v)), nil
	case float32:
		return Px(float64(v)), nil
	case float64:
		return Px(v), nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Px(n), nil
	default:
		return nil, fmt.Errorf("unsupported font size %v of type %s", data, from)
	}
}
