package emit

import "encoding/binary"

// Sizes of the encoded jump sequences in bytes.
const (
	// JumpSizeAMD64 covers two movabs instructions and an indirect jmp.
	JumpSizeAMD64 = 23
	// JumpSizeARM64 covers two movz/movk ladders and a br.
	JumpSizeARM64 = 36
)

// EncodeJumpAMD64 writes an amd64 trampoline body into dst and returns
// the number of bytes written. dst must hold at least JumpSizeAMD64
// bytes.
//
//	mov r10, params
//	mov r11, dispatch
//	jmp r11
func EncodeJumpAMD64(dst []byte, params, dispatch uintptr) int {
	dst[0] = 0x49 // REX.WB
	dst[1] = 0xBA // mov r10, imm64
	binary.LittleEndian.PutUint64(dst[2:], uint64(params))
	dst[10] = 0x49
	dst[11] = 0xBB // mov r11, imm64
	binary.LittleEndian.PutUint64(dst[12:], uint64(dispatch))
	dst[20] = 0x41
	dst[21] = 0xFF
	dst[22] = 0xE3 // jmp r11
	return JumpSizeAMD64
}

// EncodeJumpARM64 writes an arm64 trampoline body into dst and returns
// the number of bytes written. dst must hold at least JumpSizeARM64
// bytes.
//
//	movz/movk x16, params   (four 16-bit chunks)
//	movz/movk x17, dispatch
//	br x17
func EncodeJumpARM64(dst []byte, params, dispatch uintptr) int {
	off := encodeMov64ARM64(dst, 0, 16, uint64(params))
	off = encodeMov64ARM64(dst, off, 17, uint64(dispatch))
	binary.LittleEndian.PutUint32(dst[off:], 0xD61F0220) // br x17
	return off + 4
}

// encodeMov64ARM64 writes a movz followed by three movk instructions
// loading v into register rd, and returns the next write offset.
func encodeMov64ARM64(dst []byte, off int, rd uint32, v uint64) int {
	for hw := uint32(0); hw < 4; hw++ {
		op := uint32(0xF2800000) // movk
		if hw == 0 {
			op = 0xD2800000 // movz
		}
		imm := uint32(v>>(16*hw)) & 0xFFFF
		binary.LittleEndian.PutUint32(dst[off:], op|hw<<21|imm<<5|rd)
		off += 4
	}
	return off
}
