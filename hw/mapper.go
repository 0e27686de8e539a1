package hw

// Mapper is the cartridge side of the CPU address space. It serves all
// accesses from $4020 to $FFFF.
type Mapper interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

// mapperPeeker is implemented by mappers whose reads have side effects, to
// provide a side-effect free read for tracing.
type mapperPeeker interface {
	Peek8(addr uint16) uint8
}
