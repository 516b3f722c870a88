package builder

import (
	"slices"

	"github.com/ezrec/c64asm/asm"
)

// InstructionBuilder builds an asm.Instructions stream.
//
// Comment attaches to the most recently added instruction. Comments added
// before any instruction are held and attached to the next one.
type InstructionBuilder struct {
	stream  asm.Instructions
	pending []string
}

// NewInstructions returns an empty instruction builder.
func NewInstructions() *InstructionBuilder {
	return &InstructionBuilder{}
}

// Add appends an instruction with an explicit operation and mode.
func (b *InstructionBuilder) Add(op asm.Operation, mode asm.AddressMode) *InstructionBuilder {
	b.stream = append(b.stream, asm.Instruction{
		Operation: op,
		Mode:      mode,
		Comments:  b.pending,
	})
	b.pending = nil
	return b
}

// Op appends a mnemonic with the given mode.
func (b *InstructionBuilder) Op(mnemonic string, mode asm.AddressMode) *InstructionBuilder {
	return b.Add(asm.Mnemonic(mnemonic), mode)
}

func (b *InstructionBuilder) Implied(mnemonic string) *InstructionBuilder {
	return b.Op(mnemonic, asm.Implied{})
}

func (b *InstructionBuilder) Acc(mnemonic string) *InstructionBuilder {
	return b.Op(mnemonic, asm.Accumulator{})
}

func (b *InstructionBuilder) Imm(mnemonic string, value byte) *InstructionBuilder {
	return b.Op(mnemonic, asm.ImmediateByte{Value: value})
}

// ImmLow loads the low byte of a named address.
func (b *InstructionBuilder) ImmLow(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.ImmediateLow{Ref: asm.Ref(name)})
}

// ImmHigh loads the high byte of a named address.
func (b *InstructionBuilder) ImmHigh(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.ImmediateHigh{Ref: asm.Ref(name)})
}

func (b *InstructionBuilder) Addr(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.Absolute{Ref: asm.Ref(name)})
}

// AddrOffset addresses name+offset.
func (b *InstructionBuilder) AddrOffset(mnemonic string, name string, offset int) *InstructionBuilder {
	return b.Op(mnemonic, asm.Absolute{Ref: asm.RefOffset(name, offset)})
}

func (b *InstructionBuilder) AddrX(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.AbsoluteX{Ref: asm.Ref(name)})
}

func (b *InstructionBuilder) AddrY(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.AbsoluteY{Ref: asm.Ref(name)})
}

// Branch is a relative branch to a label.
func (b *InstructionBuilder) Branch(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.Relative{Ref: asm.Ref(name)})
}

func (b *InstructionBuilder) Ind(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.Indirect{Ref: asm.Ref(name)})
}

func (b *InstructionBuilder) IndX(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.IndexedIndirect{Ref: asm.Ref(name)})
}

func (b *InstructionBuilder) IndY(mnemonic string, name string) *InstructionBuilder {
	return b.Op(mnemonic, asm.IndirectIndexed{Ref: asm.Ref(name)})
}

// Label records the current address under name.
func (b *InstructionBuilder) Label(name string) *InstructionBuilder {
	return b.Add(asm.Label(name), nil)
}

// Raw splices bytes into the output.
func (b *InstructionBuilder) Raw(data ...byte) *InstructionBuilder {
	return b.Add(asm.Raw(slices.Clone(data)), nil)
}

// Comment adds a comment line to the last instruction.
func (b *InstructionBuilder) Comment(text string) *InstructionBuilder {
	if len(b.stream) == 0 {
		b.pending = append(b.pending, text)
		return b
	}

	last := &b.stream[len(b.stream)-1]
	last.Comments = append(last.Comments, text)
	return b
}

// AddBasicHeader adds a BASIC stub `10 SYS 2062` that starts the machine
// code directly following it. The application must use the default entry
// point.
func (b *InstructionBuilder) AddBasicHeader() *InstructionBuilder {
	return b.Raw(0x00, 0x0C, 0x08).
		Comment("New basic line").
		Comment("10 SYS 2062").
		Raw(0x0A, 0x00, 0x9E, 0x20, 0x32, 0x30, 0x36, 0x32).
		Raw(0x00, 0x00, 0x00).
		Comment("End basic program")
}

// Build returns a copy of the stream built so far.
func (b *InstructionBuilder) Build() asm.Instructions {
	stream := make(asm.Instructions, len(b.stream))
	for n, ins := range b.stream {
		ins.Comments = slices.Clone(ins.Comments)
		stream[n] = ins
	}
	return stream
}
