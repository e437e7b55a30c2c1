package scrollkit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// fileProperty mirrors Property in descriptor files. Only named timing
// curves can be expressed in data.
type fileProperty struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Timing string `yaml:"timing,omitempty"`
}

// fileDescriptor mirrors Descriptor in descriptor files. Anchor elements
// cannot be named in data; attach them in code after loading.
type fileDescriptor struct {
	From  string                  `yaml:"from"`
	To    string                  `yaml:"to"`
	Props map[string]fileProperty `yaml:"props"`
}

// descriptorFile is the top-level YAML structure.
type descriptorFile struct {
	Animations map[string]fileDescriptor `yaml:"animations"`
}

// LoadDescriptors parses a YAML descriptor file into named raw descriptors,
// so animation setups can be authored as data:
//
//	animations:
//	  hero-fade:
//	    from: "0px"
//	    to: "480px"
//	    props:
//	      --opacity:
//	        from: "1"
//	        to: "0"
//	        timing: "quadOut"
//
// Only YAML shape is checked here; boundary and timing validation happens
// when a descriptor is handed to New, on the same path as descriptors built
// in code.
func LoadDescriptors(data []byte) (map[string]Descriptor, error) {
	var file descriptorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("scrollkit: parse descriptor file: %w", err)
	}
	if len(file.Animations) == 0 {
		return nil, fmt.Errorf("scrollkit: descriptor file has no animations")
	}

	out := make(map[string]Descriptor, len(file.Animations))
	for name, fd := range file.Animations {
		d := Descriptor{
			From:  fd.From,
			To:    fd.To,
			Props: make(map[string]Property, len(fd.Props)),
		}
		for key, fp := range fd.Props {
			d.Props[key] = Property{From: fp.From, To: fp.To, Timing: fp.Timing}
		}
		out[name] = d
	}
	return out, nil
}
