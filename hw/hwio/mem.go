package hwio

import "fmt"

// Mem is a linear read-write memory area. Its physical size (len(Data)) must
// be a power of 2; when it is mapped over a bigger range (VSize), the
// physical buffer is mirrored over the whole range.
type Mem struct {
	Name  string // name of the memory area (for debugging)
	Data  []byte // actual memory buffer
	VSize int    // virtual size of the memory (can be bigger than physical size)
}

// NewMem allocates a zeroed memory area of size bytes, mirrored over vsize
// bytes.
func NewMem(name string, size, vsize int) *Mem {
	m := &Mem{
		Name:  name,
		Data:  make([]byte, size),
		VSize: vsize,
	}
	m.check()
	return m
}

func (m *Mem) check() {
	if len(m.Data) == 0 || len(m.Data)&(len(m.Data)-1) != 0 {
		panic(fmt.Sprintf("hwio.Mem %q: memory buffer size %d is not pow2", m.Name, len(m.Data)))
	}
}

func (m *Mem) mask() uint16 {
	return uint16(len(m.Data) - 1)
}

func (m *Mem) Read8(addr uint16) uint8 {
	return m.Data[addr&m.mask()]
}

func (m *Mem) Peek8(addr uint16) uint8 {
	return m.Data[addr&m.mask()]
}

func (m *Mem) Write8(addr uint16, val uint8) {
	m.Data[addr&m.mask()] = val
}
