// Package payload models caller-supplied token payloads as typed JSON values.
//
// A Value is a closed tagged union mirroring JSON: null, bool, number, string,
// array and object. Objects keep their keys in insertion order, so a payload
// that goes through encode/decode comes back with the same key order it was
// created with. Numbers are stored as json.Number, which means integers such as
// user identifiers round-trip exactly instead of being widened to float64.
//
// # Usage
//
//	obj := payload.NewObject()
//	obj.Set("key", payload.String("test_key"))
//	obj.Set("attempts", payload.Int(3))
//
//	data, err := json.Marshal(obj) // {"key":"test_key","attempts":3}
//
//	var v payload.Value
//	if err := json.Unmarshal(data, &v); err != nil {
//		// handle error
//	}
//	if o, ok := v.AsObject(); ok {
//		s, _ := o.Get("key")
//		name, _ := s.AsString()
//	}
//
// Values coming from plain Go data (map[string]any, []any, numbers, ...) can be
// converted with FromAny. Map keys are sorted during conversion because Go maps
// have no order of their own.
package payload
