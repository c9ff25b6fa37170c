// Package rt is the bare-metal runtime for the RA4M1: the exception vector
// table, RAM initialisation at reset and the entry point contract.
package rt

import (
	"errors"
	"fmt"
)

// Table geometry
const (
	ExceptionSlots     = 16
	ExternalInterrupts = 32
	TableLen           = ExceptionSlots + ExternalInterrupts
)

// SlotKind says what a vector table slot must hold
type SlotKind uint8

const (
	StackPointer SlotKind = iota // initial main stack pointer
	ResetVector                  // reset handler address
	Handler                      // exception or interrupt handler address
	Reserved                     // must be zero
)

func (k SlotKind) String() string {
	switch k {
	case StackPointer:
		return "stack pointer"
	case ResetVector:
		return "reset"
	case Handler:
		return "handler"
	case Reserved:
		return "reserved"
	default:
		return fmt.Sprintf("SlotKind(%d)", uint8(k))
	}
}

// Slot describes one word of the vector table
type Slot struct {
	Index int
	Name  string
	Kind  SlotKind
}

// exceptionNames are the architectural exceptions; empty names are reserved
var exceptionNames = [ExceptionSlots]string{
	0:  "InitialSP",
	1:  "Reset",
	2:  "NMI",
	3:  "HardFault",
	4:  "MemManage",
	5:  "BusFault",
	6:  "UsageFault",
	11: "SVCall",
	12: "DebugMonitor",
	14: "PendSV",
	15: "SysTick",
}

// Layout is the vector table of the RA4M1: 16 architectural slots
// followed by 32 external interrupts
var Layout = buildLayout()

func buildLayout() [TableLen]Slot {
	var l [TableLen]Slot
	for i := range l {
		s := Slot{Index: i, Kind: Handler}
		switch {
		case i == 0:
			s.Name, s.Kind = exceptionNames[i], StackPointer
		case i == 1:
			s.Name, s.Kind = exceptionNames[i], ResetVector
		case i < ExceptionSlots && exceptionNames[i] == "":
			s.Name, s.Kind = fmt.Sprintf("Reserved%d", i), Reserved
		case i < ExceptionSlots:
			s.Name = exceptionNames[i]
		default:
			s.Name = fmt.Sprintf("IRQ%d", i-ExceptionSlots)
		}
		l[i] = s
	}
	return l
}

// Table is the vector table as it sits in flash
type Table [TableLen]uint32

// NewTable builds a table with every handler slot pointing at handler
// and every reserved slot zero
func NewTable(stack, reset, handler uint32) Table {
	var t Table
	for i, s := range Layout {
		switch s.Kind {
		case StackPointer:
			t[i] = stack
		case ResetVector:
			t[i] = reset
		case Handler:
			t[i] = handler
		}
	}
	return t
}

// Problems a vector table can have
var (
	ErrMissingStack    = errors.New("initial stack pointer is zero")
	ErrReservedSet     = errors.New("reserved slot is not zero")
	ErrMissingHandler  = errors.New("handler slot is zero")
	ErrNotThumb        = errors.New("handler address has the Thumb bit clear")
	ErrStackMisaligned = errors.New("initial stack pointer is not 8-byte aligned")
)

// Finding is one problem found in a table slot
type Finding struct {
	Slot  Slot
	Value uint32
	Err   error
}

func (f Finding) String() string {
	return fmt.Sprintf("slot %d (%s) = %#08x: %v", f.Slot.Index, f.Slot.Name, f.Value, f.Err)
}

// Validate checks every slot against Layout and returns what is wrong.
// An empty result means the table is usable.
func (t Table) Validate() []Finding {
	var findings []Finding
	for i, s := range Layout {
		v := t[i]
		var err error
		switch s.Kind {
		case StackPointer:
			switch {
			case v == 0:
				err = ErrMissingStack
			case v%8 != 0:
				err = ErrStackMisaligned
			}
		case ResetVector, Handler:
			switch {
			case v == 0:
				err = ErrMissingHandler
			case v&1 == 0:
				err = ErrNotThumb
			}
		case Reserved:
			if v != 0 {
				err = ErrReservedSet
			}
		}
		if err != nil {
			findings = append(findings, Finding{Slot: s, Value: v, Err: err})
		}
	}
	return findings
}
