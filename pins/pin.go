// Package pins drives the RA4M1 I/O pins through type-state handles.
//
// Every pin has an identity type (P102, P411, ...) and a state type
// wrapping it: Unconfigured, Output, Input or InputPullup. All handles are
// zero-size. Configuring a pin consumes the handle and returns a new one
// in the target state, so the operations available on a pin are decided
// at compile time: an Output has no IsHigh, an Input has no SetHigh.
//
// Handles are obtained once, through TakePorts or GetPins. After a
// transition the old handle must not be used again.
package pins

//go:generate go run ../host/cmd/pingen --in ra4m1.yaml --out ports_gen.go

// ID identifies a physical pin by port and pin number
type ID interface {
	Port() uint32
	Number() uint32
}

// Level is the logic level of a pin
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Pin is implemented by every pin handle regardless of state
type Pin interface {
	PortNumber() uint32
	PinNumber() uint32
}

// OutputPin is a pin that can be driven
type OutputPin interface {
	Pin
	IsSetHigh() bool
	SetHigh()
	SetLow()
	Set(Level)
	Toggle()
}

// InputPin is a pin that can be sampled
type InputPin interface {
	Pin
	IsHigh() bool
	IsLow() bool
	Level() Level
	IsInputPullup() bool
}

// InputPullupPin is an input with its internal pull-up enabled
type InputPullupPin interface {
	InputPin
	pullup()
}

// Unconfigured is a pin whose function has not been selected by this program
type Unconfigured[P ID] struct{}

// Output is a pin configured as a push-pull output
type Output[P ID] struct{}

// Input is a pin configured as a floating input
type Input[P ID] struct{}

// InputPullup is a pin configured as an input with the internal pull-up enabled
type InputPullup[P ID] struct{}

// pinOf returns the port and pin number of identity P
func pinOf[P ID]() (port, pin uint32) {
	var id P
	return id.Port(), id.Number()
}

func (Unconfigured[P]) PortNumber() uint32 { port, _ := pinOf[P](); return port }
func (Unconfigured[P]) PinNumber() uint32  { _, pin := pinOf[P](); return pin }
func (Output[P]) PortNumber() uint32       { port, _ := pinOf[P](); return port }
func (Output[P]) PinNumber() uint32        { _, pin := pinOf[P](); return pin }
func (Input[P]) PortNumber() uint32        { port, _ := pinOf[P](); return port }
func (Input[P]) PinNumber() uint32         { _, pin := pinOf[P](); return pin }
func (InputPullup[P]) PortNumber() uint32  { port, _ := pinOf[P](); return port }
func (InputPullup[P]) PinNumber() uint32   { _, pin := pinOf[P](); return pin }

// IntoOutput selects the output function for the pin
func (Unconfigured[P]) IntoOutput() Output[P] {
	setFunction[P](pfsOutput)
	return Output[P]{}
}

// IntoInput selects the input function for the pin, pull-up disabled
func (Unconfigured[P]) IntoInput() Input[P] {
	setFunction[P](pfsInput)
	return Input[P]{}
}

// IntoInputPullup selects the input function with the internal pull-up enabled
func (Unconfigured[P]) IntoInputPullup() InputPullup[P] {
	setFunction[P](pfsInputPullup)
	return InputPullup[P]{}
}

// IntoUnconfigured gives the pin back without touching the hardware.
// The pin keeps driving or sampling until it is configured again.
func (Unconfigured[P]) IntoUnconfigured() Unconfigured[P] { return Unconfigured[P]{} }
func (Output[P]) IntoUnconfigured() Unconfigured[P]       { return Unconfigured[P]{} }
func (Input[P]) IntoUnconfigured() Unconfigured[P]        { return Unconfigured[P]{} }
func (InputPullup[P]) IntoUnconfigured() Unconfigured[P]  { return Unconfigured[P]{} }

// IsSetHigh reports whether the output data bit is set
func (Output[P]) IsSetHigh() bool {
	port, pin := pinOf[P]()
	return outputData(port).HasBits(outputBit(pin))
}

// SetHigh drives the pin high
func (Output[P]) SetHigh() {
	port, pin := pinOf[P]()
	outputData(port).Or(outputBit(pin))
}

// SetLow drives the pin low
func (Output[P]) SetLow() {
	port, pin := pinOf[P]()
	outputData(port).And(^outputBit(pin))
}

// Set drives the pin to level
func (o Output[P]) Set(level Level) {
	if level {
		o.SetHigh()
	} else {
		o.SetLow()
	}
}

// Toggle inverts the output data bit
func (Output[P]) Toggle() {
	port, pin := pinOf[P]()
	outputData(port).Xor(outputBit(pin))
}

func (Input[P]) IsHigh() bool        { return readInput[P]() }
func (Input[P]) IsLow() bool         { return !readInput[P]() }
func (Input[P]) Level() Level        { return Level(readInput[P]()) }
func (Input[P]) IsInputPullup() bool { return false }

func (InputPullup[P]) IsHigh() bool        { return readInput[P]() }
func (InputPullup[P]) IsLow() bool         { return !readInput[P]() }
func (InputPullup[P]) Level() Level        { return Level(readInput[P]()) }
func (InputPullup[P]) IsInputPullup() bool { return true }
func (InputPullup[P]) pullup() {}

func readInput[P ID]() bool {
	port, pin := pinOf[P]()
	return inputData(port).HasBits(inputBit(pin))
}
