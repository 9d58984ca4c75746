package generator

import "errors"

var ErrUnknownPart = errors.New("unknown part")

// Part restricts generation to one category of members.
type Part string

const (
	PartAll           Part = ""
	PartConstructor   Part = "constructor"
	PartCopyWith      Part = "copyWith"
	PartSerialization Part = "serialization"
	PartToString      Part = "toString"
	PartEquality      Part = "equality"
	PartEquatable     Part = "useEquatable"

	// PartJsonSerializable annotates the class for json_serializable code
	// generation instead of writing the members by hand. It is never part of
	// PartAll.
	PartJsonSerializable Part = "jsonSerializable"
)

var Parts = []Part{
	PartConstructor,
	PartCopyWith,
	PartSerialization,
	PartToString,
	PartEquality,
	PartEquatable,
	PartJsonSerializable,
}

func (p Part) Valid() bool {
	if p == PartAll {
		return true
	}
	for _, known := range Parts {
		if p == known {
			return true
		}
	}
	return false
}

type MemberOptions struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type ConstructorOptions struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled"`
	DefaultValues bool `mapstructure:"default_values" yaml:"default_values"`
}

type FromMapOptions struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled"`
	DefaultValues bool `mapstructure:"default_values" yaml:"default_values"`
	// CoerceNumbers converts decoded numbers to the declared int or double
	// precision instead of casting them.
	CoerceNumbers bool `mapstructure:"coerce_numbers" yaml:"coerce_numbers"`
}

type HashCodeOptions struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
	UseJenkins bool `mapstructure:"use_jenkins" yaml:"use_jenkins"`
}

// ProjectOptions are facts about the enclosing project.
type ProjectOptions struct {
	// Name is the package name; imports of package:<Name>/ are local.
	Name string `mapstructure:"name" yaml:"name"`
	// Flutter selects the collection helpers of package:flutter/foundation.dart.
	Flutter bool `mapstructure:"flutter" yaml:"flutter"`
}

type Options struct {
	Constructor       ConstructorOptions `mapstructure:"constructor" yaml:"constructor"`
	CopyWith          MemberOptions      `mapstructure:"copyWith" yaml:"copyWith"`
	ToMap             MemberOptions      `mapstructure:"toMap" yaml:"toMap"`
	FromMap           FromMapOptions     `mapstructure:"fromMap" yaml:"fromMap"`
	ToJson            MemberOptions      `mapstructure:"toJson" yaml:"toJson"`
	FromJson          MemberOptions      `mapstructure:"fromJson" yaml:"fromJson"`
	ToString          MemberOptions      `mapstructure:"toString" yaml:"toString"`
	Equality          MemberOptions      `mapstructure:"equality" yaml:"equality"`
	HashCode          HashCodeOptions    `mapstructure:"hashCode" yaml:"hashCode"`
	UseEquatable      bool               `mapstructure:"useEquatable" yaml:"useEquatable"`
	UseEquatableMixin bool               `mapstructure:"useEquatableMixin" yaml:"useEquatableMixin"`
	Part              Part               `mapstructure:"part" yaml:"part"`
	Project           ProjectOptions     `mapstructure:"project" yaml:"project"`
}

// DefaultOptions enables every member and leaves every refinement off.
func DefaultOptions() Options {
	on := MemberOptions{Enabled: true}
	return Options{
		Constructor: ConstructorOptions{Enabled: true},
		CopyWith:    on,
		ToMap:       on,
		FromMap:     FromMapOptions{Enabled: true},
		ToJson:      on,
		FromJson:    on,
		ToString:    on,
		Equality:    on,
		HashCode:    HashCodeOptions{Enabled: true},
	}
}

func (o *Options) selected(p Part) bool {
	return o.Part == PartAll || o.Part == p
}
