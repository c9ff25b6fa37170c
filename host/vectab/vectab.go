// Package vectab reads the vector table out of a linked firmware image and
// checks it against the RA4M1 layout.
package vectab

import (
	"cmp"
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"r4rt/rt"
)

// SectionPrefix names the sections the vector table is linked from.
// Images linked with the stock TinyGo scripts use ISRVectorSection instead.
const (
	SectionPrefix    = ".vector_table"
	ISRVectorSection = ".isr_vector"
)

var (
	ErrNoVectorTable = errors.New("vectab: no vector table section")
	ErrNotARM        = errors.New("vectab: not an ARM image")
	ErrMisaligned    = errors.New("vectab: section is not word aligned")
)

// Image is a vector table found in an ELF file
type Image struct {
	Base     uint64   // address of slot 0
	Sections []string // in address order
	Table    rt.Table
}

// Read opens the ELF file at path and extracts its vector table
func Read(path string) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vectab: %w", err)
	}
	defer f.Close()
	return FromELF(f)
}

// FromELF extracts the vector table from every section whose name starts
// with SectionPrefix, or from ISRVectorSection. Slot 0 is at the lowest
// section address; words past the end of the table are ignored. Every
// section must start on a word boundary.
func FromELF(f *elf.File) (*Image, error) {
	if f.Machine != elf.EM_ARM {
		return nil, fmt.Errorf("%w: machine %v", ErrNotARM, f.Machine)
	}

	var secs []*elf.Section
	for _, s := range f.Sections {
		named := strings.HasPrefix(s.Name, SectionPrefix) || s.Name == ISRVectorSection
		if named && s.Type != elf.SHT_NOBITS {
			secs = append(secs, s)
		}
	}
	if len(secs) == 0 {
		return nil, ErrNoVectorTable
	}
	slices.SortFunc(secs, func(a, b *elf.Section) int { return cmp.Compare(a.Addr, b.Addr) })

	img := &Image{Base: secs[0].Addr}
	for _, s := range secs {
		if s.Addr%4 != 0 {
			return nil, fmt.Errorf("%w: %s at %#x", ErrMisaligned, s.Name, s.Addr)
		}
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("vectab: read %s: %w", s.Name, err)
		}
		img.place(s.Addr-img.Base, data, f.ByteOrder)
		img.Sections = append(img.Sections, s.Name)
	}
	return img, nil
}

func (img *Image) place(off uint64, data []byte, order binary.ByteOrder) {
	for i := 0; i+4 <= len(data); i += 4 {
		slot := (off + uint64(i)) / 4
		if slot >= rt.TableLen {
			return
		}
		img.Table[slot] = order.Uint32(data[i:])
	}
}

// Decode reads a raw little-endian table, as dumped from flash
func Decode(data []byte) rt.Table {
	var img Image
	img.place(0, data, binary.LittleEndian)
	return img.Table
}

// Audit validates the table
func (img *Image) Audit() []rt.Finding {
	return img.Table.Validate()
}
