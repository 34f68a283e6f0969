package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 VM constants
const (
	totalMemory    = 0x1000
	addressMask    = totalMemory - 1
	pcStartAddr    = 0x200
	maxProgramSize = totalMemory - pcStartAddr
	registerCount  = 16
	flagRegister   = 0xF

	TimerFrequency = 60
	ScreenWidth    = 64
	ScreenHeight   = 32
)

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	regV       [registerCount]uint8 // 16 general purpose 8-bit registers, VF doubles as the flag register
	regI       uint16               // 16-bit register that is generally used to store memory addresses
	delayTimer uint8                // Delay timer
	soundTimer uint8                // Sound timer
	pc         uint16               // Program counter
	stack      []uint16             // Return addresses pushed by CALL
	memory     [totalMemory]uint8   // 4 KB global memory

	wait       keyWait     // Outstanding LD Vx, K
	drawFlag   bool        // Set for the tick following a clear or draw
	pixels     Framebuffer // 64 px x 32 px display
	lastOpcode uint16      // 16-bit opcode of the most recently fetched instruction

	rand   *rand.Rand
	logger *log.Logger
}

// Option configures optional VM behaviour.
type Option func(*C8VM)

// WithRandom sets the random source used by RND.
func WithRandom(r *rand.Rand) Option {
	return func(vm *C8VM) {
		vm.rand = r
	}
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM with the font
// preloaded and the program counter at the program start address.
func NewC8VM(logger *log.Logger, opts ...Option) *C8VM {
	vm := &C8VM{
		pc:     pcStartAddr,
		logger: logger,
	}
	copy(vm.memory[:], fontset)
	for _, opt := range opts {
		opt(vm)
	}
	if vm.rand == nil {
		vm.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}
	return vm
}

// LoadProgram loads a given CHIP-8 program into the VM's memory
func (vm *C8VM) LoadProgram(data []byte) error {
	size := len(data)
	if size > maxProgramSize {
		return fmt.Errorf("%w: %d bytes, at most %d fit", ErrProgramTooLarge, size, maxProgramSize)
	}
	copy(vm.memory[pcStartAddr:], data)
	return nil
}

// LoadFile reads a program image from disk and loads it.
func (vm *C8VM) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading program file: %w", err)
	}
	return vm.LoadProgram(data)
}

// Fetch returns the big-endian instruction word at the program counter and
// advances the program counter past it.
func (vm *C8VM) Fetch() uint16 {
	hi := vm.memory[vm.pc&addressMask]
	lo := vm.memory[(vm.pc+1)&addressMask]
	vm.pc += 2
	return uint16(hi)<<8 | uint16(lo)
}

// Tick runs one instruction cycle. While a key wait is outstanding no
// instruction is fetched, the key state is polled instead.
func (vm *C8VM) Tick(keys KeyState) error {
	vm.drawFlag = false

	if vm.wait.active {
		vm.pollKeyWait(keys)
		return nil
	}

	addr := vm.pc
	vm.lastOpcode = vm.Fetch()
	op := Decode(vm.lastOpcode)
	if op.Kind == OpNone {
		vm.logger.Debug("Unknown opcode",
			log.Hex("address", addr),
			log.Hex("opcode", vm.lastOpcode))
	}
	if err := vm.Execute(op, keys); err != nil {
		return fmt.Errorf("executing %04X at %03X: %w", vm.lastOpcode, addr, err)
	}
	return nil
}

// TickTimers decrements the delay and sound timers, stopping at zero.
func (vm *C8VM) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// IsDrawFlagSet returns whether the last tick cleared or drew on the screen
func (vm *C8VM) IsDrawFlagSet() bool {
	return vm.drawFlag
}

// ShouldBeep returns whether the sound timer is running
func (vm *C8VM) ShouldBeep() bool {
	return vm.soundTimer > 0
}

// Pixels returns a copy of the framebuffer
func (vm *C8VM) Pixels() Framebuffer {
	return vm.pixels
}

// PC returns the program counter
func (vm *C8VM) PC() uint16 {
	return vm.pc
}

// I returns the index register
func (vm *C8VM) I() uint16 {
	return vm.regI
}

// V returns the value of register x. Out of range indices wrap to 0-F.
func (vm *C8VM) V(x uint8) uint8 {
	return vm.regV[x&0xF]
}

// SetRegister stores value in register x. Only the register index is
// validated, any byte is a valid value.
func (vm *C8VM) SetRegister(x, value uint8) error {
	if x >= registerCount {
		return fmt.Errorf("%w: V%d", ErrRegisterIndex, x)
	}
	vm.regV[x] = value
	return nil
}

// SetIndex sets the index register
func (vm *C8VM) SetIndex(addr uint16) {
	vm.regI = addr
}

// DelayTimer returns the value of DT
func (vm *C8VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the value of ST
func (vm *C8VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// StackDepth returns the number of pending return addresses
func (vm *C8VM) StackDepth() int {
	return len(vm.stack)
}

// AwaitingKey returns the target register of an outstanding key wait.
func (vm *C8VM) AwaitingKey() (uint8, bool) {
	return vm.wait.register, vm.wait.active
}

// Memory returns the byte stored at addr.
func (vm *C8VM) Memory(addr uint16) uint8 {
	return vm.memory[addr&addressMask]
}

// LastOpcode returns the most recently fetched instruction word.
func (vm *C8VM) LastOpcode() uint16 {
	return vm.lastOpcode
}
