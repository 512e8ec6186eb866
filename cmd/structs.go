package cmd

type Role int

const (
	Dispatcher Role = 0x00 + iota
	Worker
)

type Address int

const (
	Dispatch Address = 0x00 + iota
	Worker_0
	Worker_1
	Worker_2
	Worker_3
)

// Broadcast reaches every worker.
const Broadcast Address = -1

type Display int

const (
	Display_OLED Display = 0x00 + iota
	Display_Matrix
)

type Settings struct {
	Role    Role
	Address Address
	Display Display
}

// Command is one parsed intent line, e.g. `@worker-1 mood happy`.
type Command struct {
	Address Address
	Verb    string
	Args    []string
}

// For reports whether a worker at addr should act on the command.
func (c Command) For(addr Address) bool {
	return c.Address == Broadcast || c.Address == addr
}

const (
	OLEDWidth  = 128
	OLEDHeight = 64
)
