// package ines implements a Reader for roms in the iNES file format, used for
// the distribution of NES binary programs.
package ines

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxRomSize is the largest rom file we accept.
const MaxRomSize = 1 << 20

const Magic = "NES\x1a"

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16 << 10
	chrBankSize = 8 << 10
)

var (
	ErrIO                 = errors.New("rom file unreadable")
	ErrTooLarge           = errors.New("rom file too large")
	ErrInvalidHeader      = errors.New("invalid iNES header")
	ErrUnsupportedVersion = errors.New("unsupported iNES version")
	ErrUnsupportedMapper  = errors.New("unsupported mapper")
	ErrTruncated          = errors.New("truncated rom file")
)

type Rom struct {
	header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRG     []byte // PRG is PRG ROM data (length is multiples of 16k)
	CHR     []byte // CHR is CHR ROM data (length is multiples of 8k)
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, err
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxRomSize+1))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(buf) > MaxRomSize {
		return 0, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxRomSize)
	}
	if err := rom.decode(buf); err != nil {
		return 0, err
	}
	return int64(len(buf)), nil
}

// Decode decodes an in-memory iNES image. The returned rom sections are
// slices of buf, not copies.
func Decode(buf []byte) (*Rom, error) {
	if len(buf) > MaxRomSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(buf))
	}
	rom := new(Rom)
	if err := rom.decode(buf); err != nil {
		return nil, err
	}
	return rom, nil
}

func (rom *Rom) decode(buf []byte) error {
	if err := rom.header.decode(buf); err != nil {
		return err
	}

	off := headerSize
	section := func(name string, size int) ([]byte, error) {
		if len(buf) < off+size {
			return nil, fmt.Errorf("%w: incomplete %s section (want %d bytes, have %d)",
				ErrTruncated, name, size, max(len(buf)-off, 0))
		}
		s := buf[off : off+size : off+size]
		off += size
		return s, nil
	}

	var err error
	rom.Trainer = nil
	if rom.HasTrainer() {
		if rom.Trainer, err = section("TRAINER", trainerSize); err != nil {
			return err
		}
	}
	if rom.PRG, err = section("PRG", rom.prgsz); err != nil {
		return err
	}
	if rom.CHR, err = section("CHR", rom.chrsz); err != nil {
		return err
	}
	return nil
}

type header struct {
	raw   [headerSize]byte
	prgsz int
	chrsz int
}

func (hdr *header) decode(p []byte) error {
	if len(p) < headerSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, headerSize, len(p))
	}
	if string(p[:4]) != Magic {
		return fmt.Errorf("%w: bad magic % x", ErrInvalidHeader, p[:4])
	}
	copy(hdr.raw[:], p[:headerSize])

	if v := hdr.raw[7] & 0x0F; v != 0 {
		return fmt.Errorf("%w: flags7 low nibble is %#x", ErrUnsupportedVersion, v)
	}
	if m := hdr.Mapper(); m != 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedMapper, m)
	}

	hdr.prgsz = int(hdr.raw[4]) * prgBankSize
	hdr.chrsz = int(hdr.raw[5]) * chrBankSize
	return nil
}

// HasTrainer indicates the presence of a trainer section in the rom.
func (hdr *header) HasTrainer() bool {
	return hdr.raw[6]&0x04 != 0
}

// HasPersistent indicates the presence of persistent memory in the rom.
func (hdr *header) HasPersistent() bool {
	return hdr.raw[6]&0x02 != 0
}

// Mapper returns the mapper number.
func (hdr *header) Mapper() uint8 {
	return hdr.raw[7]&0xF0 | hdr.raw[6]>>4
}

// PRGRAMSize returns the size of the PRG RAM, in bytes. A value of 0 in the
// header means 8KB for compatibility.
func (hdr *header) PRGRAMSize() int {
	if hdr.raw[8] == 0 {
		return 8 << 10
	}
	return int(hdr.raw[8]) * (8 << 10)
}

// Mirroring returns the nametable mirroring mode.
func (hdr *header) Mirroring() NTMirroring {
	switch {
	case hdr.raw[6]&0x08 != 0:
		return FourScreenMirroring
	case hdr.raw[6]&0x01 != 0:
		return VertMirroring
	}
	return HorzMirroring
}

// NTMirroring is a nametable mirroring mode.
type NTMirroring uint8

const (
	HorzMirroring NTMirroring = iota
	VertMirroring
	FourScreenMirroring
)

func (m NTMirroring) String() string {
	switch m {
	case HorzMirroring:
		return "horizontal"
	case VertMirroring:
		return "vertical"
	case FourScreenMirroring:
		return "four-screen"
	}
	return fmt.Sprintf("NTMirroring(%d)", uint8(m))
}
