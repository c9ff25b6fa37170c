package pins

import (
	"fmt"
	"sync/atomic"
)

// Ports owns the I/O ports brought out on the board. There is one Ports
// value per program; get it from TakePorts.
type Ports struct {
	Port0 Port0
	Port1 Port1
	Port3 Port3
	Port4 Port4
}

var portsTaken atomic.Bool

// TakePorts returns the port registry the first time it is called and
// false on every call after that
func TakePorts() (Ports, bool) {
	if !portsTaken.CompareAndSwap(false, true) {
		return Ports{}, false
	}
	return Ports{}, true
}

// Arduino is every header pin of the UNO R4, named by its silkscreen label
type Arduino struct {
	D0  Unconfigured[P301]
	D1  Unconfigured[P302]
	D2  Unconfigured[P104]
	D3  Unconfigured[P105]
	D4  Unconfigured[P106]
	D5  Unconfigured[P107]
	D6  Unconfigured[P111]
	D7  Unconfigured[P112]
	D8  Unconfigured[P304]
	D9  Unconfigured[P303]
	D10 Unconfigured[P103]
	D11 Unconfigured[P411]
	D12 Unconfigured[P410]
	D13 Unconfigured[P102] // on-board LED

	A0 Unconfigured[P014]
	A1 Unconfigured[P000]
	A2 Unconfigured[P001]
	A3 Unconfigured[P002]
	A4 Unconfigured[P101]
	A5 Unconfigured[P100]
}

// Arduino splits every port and hands out the header pins
func (p Ports) Arduino() Arduino {
	p0 := p.Port0.Split()
	p1 := p.Port1.Split()
	p3 := p.Port3.Split()
	p4 := p.Port4.Split()

	return Arduino{
		D0:  p3.P301,
		D1:  p3.P302,
		D2:  p1.P104,
		D3:  p1.P105,
		D4:  p1.P106,
		D5:  p1.P107,
		D6:  p1.P111,
		D7:  p1.P112,
		D8:  p3.P304,
		D9:  p3.P303,
		D10: p1.P103,
		D11: p4.P411,
		D12: p4.P410,
		D13: p1.P102,

		A0: p0.P014,
		A1: p0.P000,
		A2: p0.P001,
		A3: p0.P002,
		A4: p1.P101,
		A5: p1.P100,
	}
}

// GetPins takes the port registry and returns the header pins. It
// returns false if the registry was already taken.
func GetPins() (Arduino, bool) {
	ports, ok := TakePorts()
	if !ok {
		return Arduino{}, false
	}
	return ports.Arduino(), true
}

// MustGetPins is GetPins for program start-up; it panics if the pins were
// already taken
func MustGetPins() Arduino {
	a, ok := GetPins()
	if !ok {
		panic("pins: ports already taken")
	}
	return a
}

// BoardPin maps a header label to the RA4M1 pin behind it
type BoardPin struct {
	Name string
	Port uint32
	Pin  uint32
	Note string
}

// Physical returns the chip pin name, e.g. "P102"
func (b BoardPin) Physical() string {
	return fmt.Sprintf("P%d%02d", b.Port, b.Pin)
}

// BoardMap lists the header pins in the order of the Arduino fields
var BoardMap = []BoardPin{
	{Name: "D0", Port: 3, Pin: 1},
	{Name: "D1", Port: 3, Pin: 2},
	{Name: "D2", Port: 1, Pin: 4},
	{Name: "D3", Port: 1, Pin: 5},
	{Name: "D4", Port: 1, Pin: 6},
	{Name: "D5", Port: 1, Pin: 7},
	{Name: "D6", Port: 1, Pin: 11},
	{Name: "D7", Port: 1, Pin: 12},
	{Name: "D8", Port: 3, Pin: 4},
	{Name: "D9", Port: 3, Pin: 3},
	{Name: "D10", Port: 1, Pin: 3},
	{Name: "D11", Port: 4, Pin: 11},
	{Name: "D12", Port: 4, Pin: 10},
	{Name: "D13", Port: 1, Pin: 2, Note: "LED"},
	{Name: "A0", Port: 0, Pin: 14},
	{Name: "A1", Port: 0, Pin: 0},
	{Name: "A2", Port: 0, Pin: 1},
	{Name: "A3", Port: 0, Pin: 2},
	{Name: "A4", Port: 1, Pin: 1},
	{Name: "A5", Port: 1, Pin: 0},
}
