package ai

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Weights{}

const probeName = "probe_mobility"

var weightNames = map[string]func(*Weights) *int64{
	"corner":   func(w *Weights) *int64 { return &w.Corner },
	"edge":     func(w *Weights) *int64 { return &w.Edge },
	"mobility": func(w *Weights) *int64 { return &w.Mobility },
	"material": func(w *Weights) *int64 { return &w.Material },
}

func (ws *Weights) MarshalJSON() ([]byte, error) {
	h := make(map[string]interface{})
	for k, f := range weightNames {
		if v := *f(ws); v != 0 {
			h[k] = v
		}
	}
	if ws.ProbeMobility {
		h[probeName] = true
	}
	return json.Marshal(h)
}

// UnmarshalJSON overwrites only the weights named in bs, so decoding
// into a copy of DefaultWeights yields a partial override.
func (ws *Weights) UnmarshalJSON(bs []byte) error {
	h := make(map[string]json.RawMessage)
	if e := json.Unmarshal(bs, &h); e != nil {
		return e
	}
	for k, raw := range h {
		if k == probeName {
			if e := json.Unmarshal(raw, &ws.ProbeMobility); e != nil {
				return errors.Wrapf(e, "weight %q", k)
			}
			continue
		}
		f, ok := weightNames[k]
		if !ok {
			return errors.Errorf("unknown weight: %q", k)
		}
		if e := json.Unmarshal(raw, f(ws)); e != nil {
			return errors.Wrapf(e, "weight %q", k)
		}
	}
	return nil
}
