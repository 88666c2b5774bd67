// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package style defines the stylistic settings that control C# output.
package style

import (
	"fmt"
	"strings"
)

// Collection selects the collection type spelled in the output.
type Collection string

// Collection values.
const (
	CollectionArray         Collection = "array"
	CollectionList          Collection = "list"
	CollectionIList         Collection = "ilist"
	CollectionIEnumerable   Collection = "ienumerable"
	CollectionIReadOnlyList Collection = "ireadonlylist"
)

// TypeStyle selects the declaration form of generated types.
type TypeStyle string

// TypeStyle values.
const (
	TypeStyleClass        TypeStyle = "class"
	TypeStyleRecord       TypeStyle = "record"
	TypeStyleRecordParams TypeStyle = "record-params"
)

// Nullable selects the nullability strategy applied to reference-typed fields.
type Nullable string

// Nullable values.
const (
	NullableNone     Nullable = "none"
	NullableMarker   Nullable = "nullable"
	NullableDefaults Nullable = "defaults"
)

// Framework selects the serialization framework whose attributes are emitted.
type Framework string

// Framework values.
const (
	FrameworkNone           Framework = "none"
	FrameworkNewtonsoft     Framework = "newtonsoft"
	FrameworkSystemTextJSON Framework = "system-text-json"
)

// AttributeMode controls when a property-name attribute is kept.
type AttributeMode string

// AttributeMode values.
const (
	AttributeWhenDifferent AttributeMode = "when-different"
	AttributeAlways        AttributeMode = "always"
)

// Settings is the immutable configuration snapshot for one conversion.
// It is resolved fresh on every invocation and never mutated afterwards.
type Settings struct {
	Collection     Collection    `yaml:"collection"`
	TypeStyle      TypeStyle     `yaml:"typeStyle"`
	Nullable       Nullable      `yaml:"nullable"`
	Framework      Framework     `yaml:"framework"`
	Attributes     AttributeMode `yaml:"attributes"`
	Namespace      string        `yaml:"namespace,omitempty"`
	InferEnums     bool          `yaml:"inferEnums"`
	InferDateTimes bool          `yaml:"inferDateTimes"`
}

// Default returns the default settings: mutable classes, enumerable
// collections, no nullability, no serialization attributes.
func Default() Settings {
	return Settings{
		Collection: CollectionIEnumerable,
		TypeStyle:  TypeStyleClass,
		Nullable:   NullableNone,
		Framework:  FrameworkNone,
		Attributes: AttributeWhenDifferent,
	}
}

// Collections lists all accepted collection spellings.
func Collections() []Collection {
	return []Collection{
		CollectionArray,
		CollectionList,
		CollectionIList,
		CollectionIEnumerable,
		CollectionIReadOnlyList,
	}
}

// TypeStyles lists all accepted type-declaration styles.
func TypeStyles() []TypeStyle {
	return []TypeStyle{TypeStyleClass, TypeStyleRecord, TypeStyleRecordParams}
}

// Nullables lists all accepted nullability strategies.
func Nullables() []Nullable {
	return []Nullable{NullableNone, NullableMarker, NullableDefaults}
}

// Frameworks lists all accepted serialization frameworks.
func Frameworks() []Framework {
	return []Framework{FrameworkNone, FrameworkNewtonsoft, FrameworkSystemTextJSON}
}

// AttributeModes lists all accepted attribute rendering modes.
func AttributeModes() []AttributeMode {
	return []AttributeMode{AttributeWhenDifferent, AttributeAlways}
}

// Validate checks every enum field against its accepted values and the
// namespace against C# identifier rules.
func (s Settings) Validate() error {
	switch s.Collection {
	case CollectionArray, CollectionList, CollectionIList, CollectionIEnumerable, CollectionIReadOnlyList:
	default:
		return fmt.Errorf("unknown collection type %q", s.Collection)
	}
	switch s.TypeStyle {
	case TypeStyleClass, TypeStyleRecord, TypeStyleRecordParams:
	default:
		return fmt.Errorf("unknown type style %q", s.TypeStyle)
	}
	switch s.Nullable {
	case NullableNone, NullableMarker, NullableDefaults:
	default:
		return fmt.Errorf("unknown nullability strategy %q", s.Nullable)
	}
	switch s.Framework {
	case FrameworkNone, FrameworkNewtonsoft, FrameworkSystemTextJSON:
	default:
		return fmt.Errorf("unknown serialization framework %q", s.Framework)
	}
	switch s.Attributes {
	case AttributeWhenDifferent, AttributeAlways:
	default:
		return fmt.Errorf("unknown attribute mode %q", s.Attributes)
	}
	if s.Namespace != "" {
		for _, part := range strings.Split(s.Namespace, ".") {
			if !IsIdentifier(part) {
				return fmt.Errorf("namespace segment %q is not a valid identifier", part)
			}
		}
	}
	return nil
}

// IsIdentifier reports whether s is a legal C# identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
