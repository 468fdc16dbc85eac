package cpu

// Hardware vector addresses, identical across NMOS and CMOS. BRK shares
// the IRQ vector — there is no separate software-interrupt vector.
const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
)
