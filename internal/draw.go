package internal

// Framebuffer is the 64x32 monochrome display, indexed [y][x]. A pixel is
// either 0 or 1.
type Framebuffer [ScreenHeight][ScreenWidth]uint8

func (fb *Framebuffer) clear() {
	*fb = Framebuffer{}
}

// drawSprite XORs an n-row sprite read from memory at I onto the screen at
// (vx, vy). VF is set when a lit pixel is turned off. Sprites are clipped at
// the right and bottom edges, they do not wrap around.
func (vm *C8VM) drawSprite(vx, vy, n uint8) {
	startX := int(vx % ScreenWidth)
	y := int(vy % ScreenHeight)
	vm.regV[flagRegister] = 0

	// row 31 is drawn like column 63, clipping starts past the last row
	for row := uint16(0); row < uint16(n) && y < ScreenHeight; row++ {
		spriteByte := vm.memory[(vm.regI+row)&addressMask]
		for bit, x := 0, startX; bit < 8 && x < ScreenWidth; bit, x = bit+1, x+1 {
			if spriteByte&(0x80>>bit) == 0 {
				continue
			}
			px := &vm.pixels[y][x]
			if *px == 1 {
				*px = 0
				vm.regV[flagRegister] = 1
			} else {
				*px = 1
			}
		}
		y++
	}
}

// Lit returns whether the pixel at (x, y) is set.
func (fb *Framebuffer) Lit(x, y int) bool {
	return fb[y][x] == 1
}
