// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

// Header is the fixed sequence of typed fields at the start of every save
// (§3, §6).
type Header struct {
	SaveHeaderType     int32  `json:"save_header_type"`
	SaveVersion        int32  `json:"save_version"`
	BuildVersion       int32  `json:"build_version"`
	MapName            string `json:"map_name"`
	MapOptions         string `json:"map_options"`
	SessionName        string `json:"session_name"`
	PlayDurationSecond int32  `json:"play_duration_seconds"`
	SaveDateTime       int64  `json:"save_date_time"`
	SessionVisibility  int8   `json:"session_visibility"`
}

// ObjectKind distinguishes the two Object variants (§3).
type ObjectKind int32

// Known object kinds.
const (
	KindReference ObjectKind = 0
	KindActor     ObjectKind = 1
)

func (k ObjectKind) String() string {
	switch k {
	case KindReference:
		return "Reference"
	case KindActor:
		return "Actor"
	default:
		return "Unknown"
	}
}

// Transform is an Actor's placement in the world (§3).
type Transform struct {
	Rotation    [4]float32 `json:"rotation"`
	Translation [3]float32 `json:"translation"`
	Scale3D     [3]float32 `json:"scale3d"`
}

// Object is the tagged union of Actor and Reference records in the object
// table (§3, §4.4). Fields not meaningful for a given Kind are left zero.
type Object struct {
	Kind      ObjectKind `json:"type"`
	ClassName string     `json:"class_name"`
	LevelName string     `json:"level_name"`
	PathName  string     `json:"path_name"`

	// Actor-only fields.
	NeedTransform    int32     `json:"need_transform,omitempty"`
	PlacementTransform Transform `json:"transform,omitempty"`
	WasPlacedInLevel int32     `json:"was_placed_in_level,omitempty"`

	// Reference-only field.
	OuterPathName string `json:"outer_path_name,omitempty"`

	Entity Entity `json:"entity"`
}

// ChildRef names a child actor attached to an Entity (§3).
type ChildRef struct {
	LevelName string `json:"level_name"`
	PathName  string `json:"path_name"`
}

// Entity is the per-object payload block (§3, §4.5). HasNames records
// whether the names/children header was present on read; it is a decode
// convenience only, excluded from JSON, and must not be consulted when
// encoding — writeEntity takes the enclosing Object's Kind for that, since
// Kind is what JSON actually persists.
type Entity struct {
	HasNames bool `json:"-"`

	LevelName string     `json:"level_name,omitempty"`
	PathName  string     `json:"path_name,omitempty"`
	Children  []ChildRef `json:"children,omitempty"`

	Properties []Property `json:"properties"`

	TrailingBytes []byte `json:"trailing_bytes,omitempty"`
}

// Property is one entry in a property list, tagged by TypeTag (§3, §4.3).
// Value holds one of the concrete *Value types defined in propertyvalue.go,
// chosen by TypeTag.
type Property struct {
	Name           string      `json:"name"`
	TypeTag        string      `json:"type"`
	DeclaredLength int32       `json:"length"`
	Value          interface{} `json:"value"`
}

// Document is the full in-memory model of a save (§3).
type Document struct {
	Header        Header   `json:"header"`
	Objects       []Object `json:"objects"`
	TrailingBytes []byte   `json:"trailing_bytes,omitempty"`

	// Warnings accumulates non-fatal length disagreements found while
	// encoding in authoring mode (§4.7, §7 Kind 7).
	Warnings []string `json:"warnings,omitempty"`
}
