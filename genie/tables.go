package genie

// consoles holds the code description of every system. The bit tables list
// the source of every code bit, starting with the most significant bit of
// the first code symbol, one line per symbol.
var consoles = [...]console{
	NES: {
		alphabet:    "APZLGITYEOXUKSVN",
		symbolBits:  4,
		addressBits: 15,
		addressBase: 0x8000,
		valueBits:   8,
		compareBits: 8,
		formats:     []format{nesShort, nesLong},
	},
	SNES: {
		alphabet:    "DF4709156BC8A23E",
		symbolBits:  4,
		addressBits: 24,
		valueBits:   8,
		formats:     []format{snes},
	},
	Genesis: {
		alphabet:    "ABCDEFGHJKLMNPRSTVWXYZ0123456789",
		symbolBits:  5,
		addressBits: 24,
		valueBits:   16,
		formats:     []format{genesis},
	},
	GameBoy: {
		alphabet:    "0123456789ABCDEF",
		symbolBits:  4,
		addressBits: 16,
		valueBits:   8,
		compareBits: 8,
		formats:     []format{gameBoyShort, gameBoyLong},
	},
}

// The top bit of the third NES symbol flags the 8 letter form.
var nesShort = format{
	layout: "XXXXXX",
	bits: []source{
		v(7), v(2), v(1), v(0),
		a(7), v(6), v(5), v(4),
		zero, a(6), a(5), a(4),
		a(3), a(14), a(13), a(12),
		a(11), a(2), a(1), a(0),
		v(3), a(10), a(9), a(8),
	},
}

var nesLong = format{
	layout:  "XXXXXXXX",
	compare: true,
	bits: []source{
		v(7), v(2), v(1), v(0),
		a(7), v(6), v(5), v(4),
		one, a(6), a(5), a(4),
		a(3), a(14), a(13), a(12),
		a(11), a(2), a(1), a(0),
		c(3), a(10), a(9), a(8),
		c(7), c(2), c(1), c(0),
		v(3), c(6), c(5), c(4),
	},
}

// The SNES value is stored plain, the address is transposed.
var snes = format{
	layout: "XXXX-XXXX",
	bits: []source{
		v(7), v(6), v(5), v(4),
		v(3), v(2), v(1), v(0),
		a(15), a(14), a(13), a(12),
		a(7), a(6), a(5), a(4),
		a(9), a(8), a(23), a(22),
		a(21), a(20), a(3), a(2),
		a(1), a(0), a(19), a(18),
		a(17), a(16), a(11), a(10),
	},
}

var genesis = format{
	layout: "XXXX-XXXX",
	bits: []source{
		v(7), v(6), v(5), v(4), v(3),
		v(2), v(1), v(0), a(15), a(14),
		a(13), a(12), a(11), a(10), a(9),
		a(8), a(23), a(22), a(21), a(20),
		a(19), a(18), a(17), a(16), v(12),
		v(11), v(10), v(9), v(8), v(15),
		v(14), v(13), a(7), a(6), a(5),
		a(4), a(3), a(2), a(1), a(0),
	},
}

// The Game Boy code is ABC-DEF-GHI: AB is the value, FCDE the address
// xor 0xF000 and GI the compare xor 0xBA rotated left by 2. H is a check
// digit that has to equal G xor 8.
var gameBoyShort = format{
	layout: "XXX-XXX",
	bits: []source{
		v(7), v(6), v(5), v(4),
		v(3), v(2), v(1), v(0),
		a(11), a(10), a(9), a(8),
		a(7), a(6), a(5), a(4),
		a(3), a(2), a(1), a(0),
		a(15), a(14), a(13), a(12),
	},
	xor: 0xF,
}

var gameBoyLong = format{
	layout:  "XXX-XXX-XXX",
	compare: true,
	bits: []source{
		v(7), v(6), v(5), v(4),
		v(3), v(2), v(1), v(0),
		a(11), a(10), a(9), a(8),
		a(7), a(6), a(5), a(4),
		a(3), a(2), a(1), a(0),
		a(15), a(14), a(13), a(12),
		c(5), c(4), c(3), c(2),
		c(5), c(4), c(3), c(2),
		c(1), c(0), c(7), c(6),
	},
	xor: 0xFE6A,
}
