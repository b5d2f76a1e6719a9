package fault

// Kind is the exception vector number, i.e. the vector's offset divided by 4.
type Kind uint32

const (
	Reset Kind = iota
	Undefined
	SupervisorCall
	PrefetchAbort
	DataAbort
	_
	IRQ
	FIQ
)

var kindNames = [8]string{
	Reset:          "Reset",
	Undefined:      "Undefined Instruction",
	SupervisorCall: "Supervisor Call",
	PrefetchAbort:  "Prefetch Abort",
	DataAbort:      "Data Abort",
	5:              "Hyp Trap",
	IRQ:            "IRQ",
	FIQ:            "FIQ",
}

func (k Kind) String() string {
	return kindNames[k&7]
}

// Regs holds the state saved by an exception vector.
type Regs struct {
	LR   uint32 // return address
	SPSR uint32
	FSR  uint32 // DFSR or IFSR
	FAR  uint32 // DFAR or IFAR
}

// Short-descriptor fault status encodings, FS[4] in bit 10 and FS[3:0] in
// bits 3:0 of DFSR and IFSR.
var statusNames = [32]string{
	0b00001: "Alignment fault",
	0b00010: "Debug event",
	0b00011: "Access flag fault, section",
	0b00100: "Instruction cache maintenance fault",
	0b00101: "Translation fault, section",
	0b00110: "Access flag fault, page",
	0b00111: "Translation fault, page",
	0b01000: "Synchronous external abort",
	0b01001: "Domain fault, section",
	0b01011: "Domain fault, page",
	0b01100: "External abort on translation, 1st level",
	0b01101: "Permission fault, section",
	0b01110: "External abort on translation, 2nd level",
	0b01111: "Permission fault, page",
	0b10110: "Asynchronous external abort",
	0b11000: "Asynchronous parity error",
	0b11001: "Synchronous parity error",
	0b11100: "Parity error on translation, 1st level",
	0b11110: "Parity error on translation, 2nd level",
}

// faultStatus decodes the fault status field of fsr.
//
//go:nosplit
func faultStatus(fsr uint32) string {
	fs := fsr&0xf | fsr>>6&0x10
	if s := statusNames[fs]; s != "" {
		return s
	}
	return "Unknown fault"
}

// Exception reports an unhandled exception and halts. It is intended to be
// called from exception vectors and neither allocates nor grows the stack.
//
//go:nosplit
func Exception(kind Kind, regs *Regs) {
	if enter() {
		printException(kind, regs)
	}
	Halt()
}

//go:nosplit
func printException(kind Kind, regs *Regs) {
	writeString("Unhandled ")
	writeString(kind.String())
	writeString(" Exception")

	writeString("\nlr   0x")
	writeHex(regs.LR)
	writeString("\nspsr 0x")
	writeHex(regs.SPSR)
	if kind == PrefetchAbort || kind == DataAbort {
		writeString("\nfsr  0x")
		writeHex(regs.FSR)
		writeString(" (")
		writeString(faultStatus(regs.FSR))
		writeString(")\nfar  0x")
		writeHex(regs.FAR)
	}
	writeString("\n")
}

//go:nosplit
func writeHex(num uint32) {
	var buf [8]byte
	for _, b := range itoa(buf[:], num) {
		word(uint32(b))
	}
}

// itoa formats num as 8 hex digits into buf.
//
//go:nosplit
func itoa(buf []byte, num uint32) []byte {
	for i := range 8 {
		char := byte(num>>(28-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf[:8]
}
