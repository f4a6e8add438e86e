package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Property is a single CSS declaration, i.e. a key and a raw value.
// For example, with
//
//     margin-top: 15px;
//
// the key is "margin-top" and the value is "15px".
//
// Properties are immutable once created. Clients usually do not construct
// properties by hand but receive them from a typed property generator.
type Property struct {
	key   string
	value string
}

// Create creates a property from a key and a value. No validation is
// performed and the strings are used verbatim.
func Create(key, value string) Property {
	return Property{key: key, value: value}
}

// Key returns the property's name, e.g. "margin-top".
func (p Property) Key() string {
	return p.key
}

// Value returns the property's raw value, e.g. "15px".
func (p Property) Value() string {
	return p.value
}

// AsString serializes a property to a CSS declaration, "key: value;".
func (p Property) AsString() string {
	return p.key + ": " + p.value + ";"
}

func (p Property) String() string {
	return p.AsString()
}
