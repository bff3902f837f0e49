// Package script implements the Phantasma VM script builder: a fluent byte-stream emitter for the legacy opcode table. Only
// construction is in scope — the interpreter that executes this stream
// is an external collaborator.
package script

// Opcode is a single VM instruction byte.
type Opcode byte

const (
	NOP     Opcode = 0
	MOVE    Opcode = 1
	COPY    Opcode = 2
	PUSH    Opcode = 3
	POP     Opcode = 4
	SWAP    Opcode = 5
	CALL    Opcode = 6
	EXTCALL Opcode = 7
	JMP     Opcode = 8
	JMPIF   Opcode = 9
	JMPNOT  Opcode = 10
	RET     Opcode = 11
	THROW   Opcode = 12
	LOAD    Opcode = 13
	CAST    Opcode = 14
	CAT     Opcode = 15
	RANGE   Opcode = 16
	LEFT    Opcode = 17
	RIGHT   Opcode = 18
	SIZE    Opcode = 19
	COUNT   Opcode = 20
	NOT     Opcode = 21
	AND     Opcode = 22
	OR      Opcode = 23
	XOR     Opcode = 24
	EQUAL   Opcode = 25
	LT      Opcode = 26
	GT      Opcode = 27
	LTE     Opcode = 28
	GTE     Opcode = 29
	INC     Opcode = 30
	DEC     Opcode = 31
	SIGN    Opcode = 32
	NEGATE  Opcode = 33
	ABS     Opcode = 34
	ADD     Opcode = 35
	SUB     Opcode = 36
	MUL     Opcode = 37
	DIV     Opcode = 38
	MOD     Opcode = 39
	SHL     Opcode = 40
	SHR     Opcode = 41
	MIN     Opcode = 42
	MAX     Opcode = 43
	POW     Opcode = 44
	CTX     Opcode = 45
	SWITCH  Opcode = 46
	PUT     Opcode = 47
	GET     Opcode = 48
	CLEAR   Opcode = 49
	UNPACK  Opcode = 50
	PACK    Opcode = 51
	DEBUG   Opcode = 52
)
