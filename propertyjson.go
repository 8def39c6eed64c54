// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes a Property, picking the concrete Value type from
// the sibling "type" tag before unmarshaling "value" into it. Without this,
// json.Unmarshal would leave Value as a map[string]interface{} and
// writePropertyValue's type switch would panic on the decode→JSON→encode
// path (§3, §4.3, §6).
func (p *Property) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name           string          `json:"name"`
		TypeTag        string          `json:"type"`
		DeclaredLength int32           `json:"length"`
		Value          json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, err := unmarshalPropertyValue(raw.TypeTag, raw.Value)
	if err != nil {
		return fmt.Errorf("property %q (%s): %w", raw.Name, raw.TypeTag, err)
	}

	p.Name = raw.Name
	p.TypeTag = raw.TypeTag
	p.DeclaredLength = raw.DeclaredLength
	p.Value = value
	return nil
}

func unmarshalPropertyValue(typeTag string, raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var err error
	switch typeTag {
	case "IntProperty":
		var v IntValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "FloatProperty":
		var v FloatValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "BoolProperty":
		var v BoolValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "StrProperty":
		var v StrValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "NameProperty":
		var v NameValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "TextProperty":
		var v TextValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "ByteProperty":
		var v ByteValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "EnumProperty":
		var v EnumValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "ObjectProperty":
		var v ObjectRefValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "StructProperty":
		var v StructValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "ArrayProperty":
		var v ArrayValue
		err = json.Unmarshal(raw, &v)
		return v, err

	case "MapProperty":
		var v MapValue
		err = json.Unmarshal(raw, &v)
		return v, err

	default:
		return nil, fmt.Errorf("type tag %q: %w", typeTag, ErrUnknownTag)
	}
}

// UnmarshalJSON decodes a StructValue, picking the concrete Body type from
// the sibling "struct_type" tag, mirroring writeStructBody's switch in
// structprop.go.
func (s *StructValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		StructType string          `json:"struct_type"`
		Unknown    []byte          `json:"unknown"`
		Body       json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	body, err := unmarshalStructBody(raw.StructType, raw.Body)
	if err != nil {
		return fmt.Errorf("struct %q: %w", raw.StructType, err)
	}

	s.StructType = raw.StructType
	s.Unknown = raw.Unknown
	s.Body = body
	return nil
}

func unmarshalStructBody(structType string, raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var err error
	switch structType {
	case "Vector", "Rotator":
		var b VectorBody
		err = json.Unmarshal(raw, &b)
		return b, err

	case "Box":
		var b BoxBody
		err = json.Unmarshal(raw, &b)
		return b, err

	case "LinearColor":
		var b LinearColorBody
		err = json.Unmarshal(raw, &b)
		return b, err

	case "Quat":
		var b QuatBody
		err = json.Unmarshal(raw, &b)
		return b, err

	case "Transform", "RemovedInstanceArray", "InventoryStack":
		var b PropertyListBody
		err = json.Unmarshal(raw, &b)
		return b, err

	case "InventoryItem":
		var b InventoryItemBody
		err = json.Unmarshal(raw, &b)
		return b, err

	default:
		return nil, fmt.Errorf("struct_type %q: %w", structType, ErrUnknownTag)
	}
}
