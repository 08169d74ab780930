// SPDX-License-Identifier: EPL-2.0

package source

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind names a sound source variant in a score description.
type Kind string

const (
	KindSine     Kind = "sine"
	KindTriangle Kind = "triangle"
	KindSampler  Kind = "sampler"
	KindPluck    Kind = "pluck"
)

// spellings accepted when reading a score, beyond the canonical names
var kindAliases = map[string]Kind{
	"sin":            KindSine,
	"sampled":        KindSampler,
	"wav":            KindSampler,
	"karplus_strong": KindPluck,
	"karplusstrong":  KindPluck,
	"karpus_strong":  KindPluck,
	"karpusstrong":   KindPluck,
}

// Kinds lists the canonical kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindSine, KindTriangle, KindSampler, KindPluck}
}

// Valid reports whether k is one of the canonical kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSine, KindTriangle, KindSampler, KindPluck:
		return true
	}
	return false
}

// UnmarshalText folds case and known aliases onto the canonical names.
// Unrecognised text is kept verbatim so that New can report it.
func (k *Kind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if alias, ok := kindAliases[s]; ok {
		*k = alias
		return nil
	}

	*k = Kind(s)
	return nil
}

// Descriptor holds what is needed to rebuild a source: the variant plus the
// sample file path for KindSampler or the optional seed for KindPluck.
type Descriptor struct {
	Kind Kind    `json:"kind" yaml:"kind"`
	Path string  `json:"path,omitempty" yaml:"path,omitempty"`
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Besides the {kind, path, seed} object, a descriptor may be written as a
// bare variant name ("Sin", "triangle") or as a single-key object naming the
// variant with its argument ({"Sampler": "kick.wav"}, {"pluck": 7}). Both
// decode to the same Descriptor; encoding always uses the object form.
var descriptorFields = map[string]bool{"kind": true, "path": true, "seed": true}

func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*d = taggedDescriptor(name)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if name, arg, ok := singleTag(obj); ok {
		*d = taggedDescriptor(name)
		return d.setArgJSON(arg)
	}

	type plain Descriptor
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Descriptor(p)
	return nil
}

func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*d = taggedDescriptor(value.Value)
		return nil

	case yaml.MappingNode:
		if len(value.Content) == 2 && !descriptorFields[value.Content[0].Value] {
			*d = taggedDescriptor(value.Content[0].Value)
			return d.setArgYAML(value.Content[1])
		}
	}

	type plain Descriptor
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*d = Descriptor(p)
	return nil
}

func singleTag(obj map[string]json.RawMessage) (string, json.RawMessage, bool) {
	if len(obj) != 1 {
		return "", nil, false
	}
	for k, v := range obj {
		if !descriptorFields[k] {
			return k, v, true
		}
	}
	return "", nil, false
}

func taggedDescriptor(name string) Descriptor {
	var k Kind
	_ = k.UnmarshalText([]byte(name))
	return Descriptor{Kind: k}
}

// setArgJSON stores a tagged variant's argument: a string is a sample path,
// a number a pluck seed, null nothing.
func (d *Descriptor) setArgJSON(arg json.RawMessage) error {
	if string(arg) == "null" {
		return nil
	}

	var path string
	if err := json.Unmarshal(arg, &path); err == nil {
		d.Path = path
		return nil
	}

	var seed uint64
	if err := json.Unmarshal(arg, &seed); err != nil {
		return fmt.Errorf("source %q: argument must be a path or a seed: %w", d.Kind, err)
	}
	d.Seed = &seed
	return nil
}

func (d *Descriptor) setArgYAML(arg *yaml.Node) error {
	if arg.Kind != yaml.ScalarNode {
		return fmt.Errorf("source %q: argument must be a path or a seed", d.Kind)
	}

	switch arg.ShortTag() {
	case "!!null":
		return nil
	case "!!int":
		var seed uint64
		if err := arg.Decode(&seed); err != nil {
			return fmt.Errorf("source %q: %w", d.Kind, err)
		}
		d.Seed = &seed
		return nil
	}

	d.Path = arg.Value
	return nil
}
