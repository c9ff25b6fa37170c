package main

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Chip describes which pins of each port a package exposes
type Chip struct {
	Chip    string              `yaml:"chip"`
	Package string              `yaml:"package"`
	Ports   map[uint32][]uint32 `yaml:"ports"`
}

type port struct {
	Number uint32
	Pins   []pin
}

type pin struct {
	Name   string
	Port   uint32
	Number uint32
}

// pinName is the chip's name for a pin: port digit, then two pin digits
func pinName(port, number uint32) string {
	return fmt.Sprintf("P%d%02d", port, number)
}

// Parse reads a chip description and checks it
func Parse(data []byte) (*Chip, error) {
	var c Chip
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse chip: %w", err)
	}
	if c.Package == "" {
		return nil, fmt.Errorf("parse chip: package name missing")
	}
	if len(c.Ports) == 0 {
		return nil, fmt.Errorf("parse chip: no ports")
	}
	for n, pins := range c.Ports {
		if n > 9 {
			return nil, fmt.Errorf("parse chip: port %d out of range", n)
		}
		seen := make(map[uint32]bool)
		for _, p := range pins {
			if p > 15 {
				return nil, fmt.Errorf("parse chip: %s out of range", pinName(n, p))
			}
			if seen[p] {
				return nil, fmt.Errorf("parse chip: %s listed twice", pinName(n, p))
			}
			seen[p] = true
		}
	}
	return &c, nil
}

func (c *Chip) ports() []port {
	numbers := maps.Keys(c.Ports)
	slices.Sort(numbers)

	ports := make([]port, 0, len(numbers))
	for _, n := range numbers {
		numbersOnPort := slices.Clone(c.Ports[n])
		slices.Sort(numbersOnPort)

		p := port{Number: n}
		for _, number := range numbersOnPort {
			p.Pins = append(p.Pins, pin{Name: pinName(n, number), Port: n, Number: number})
		}
		ports = append(ports, p)
	}
	return ports
}

var source = template.Must(template.New("ports").Parse(`// Code generated by pingen from {{.Input}}. DO NOT EDIT.

package {{.Chip.Package}}
{{range .Ports}}{{range .Pins}}
// {{.Name}} is pin {{.Number}} of port {{.Port}}
type {{.Name}} struct{}

func ({{.Name}}) Port() uint32 { return {{.Port}} }
func ({{.Name}}) Number() uint32 { return {{.Number}} }
{{end}}{{end}}{{range .Ports}}
// Port{{.Number}} owns the pins of I/O port {{.Number}}
type Port{{.Number}} struct{}

// Port{{.Number}}Pins holds every pin of port {{.Number}}, unconfigured
type Port{{.Number}}Pins struct {
{{range .Pins}}	{{.Name}} Unconfigured[{{.Name}}]
{{end}}}

// Split consumes the port and returns its pins
func (Port{{.Number}}) Split() Port{{.Number}}Pins {
	return Port{{.Number}}Pins{}
}
{{end}}`))

// Generate renders the Go source for c. input names the description in
// the generated header.
func Generate(c *Chip, input string) ([]byte, error) {
	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Input string
		Chip  *Chip
		Ports []port
	}{input, c, c.ports()})
	if err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}
