package radx

import (
	"math"
	"sync"
)

// fracBits is the fixed-point fractional width used throughout the AHX
// analysis/synthesis pipeline.
const fracBits = 28

// bitAllocTable gives the fixed per-subband width, in bits, of the
// allocation-index field at the start of every AHX frame.
var bitAllocTable = [30]uint8{
	4, 4, 4, 4,
	3, 3, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
}

// ahxAllocWidths is the fixed schedule of allocation values the encoder
// writes; the decoder reads each one back as a bitAllocTable-wide
// allocation index.
var ahxAllocWidths = [30]uint32{
	6, 6, 6, 6,
	4, 4,
	3, 3, 3, 3, 3, 3,
	3,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

type quantizeSpec struct {
	nlevels int64
	group   uint32
	bits    uint8
	c, d    int64
}

var quantTableLow = [16]quantizeSpec{
	{nlevels: 3, group: 2, bits: 5, c: 0x15555555, d: 0x08000000},
	{nlevels: 5, group: 4, bits: 7, c: 0x1999999a, d: 0x08000000},
	{nlevels: 7, group: 0, bits: 3, c: 0x12492492, d: 0x04000000},
	{nlevels: 9, group: 4, bits: 10, c: 0x1c71c71c, d: 0x08000000},
	{nlevels: 15, group: 0, bits: 4, c: 0x11111111, d: 0x02000000},
	{nlevels: 31, group: 0, bits: 5, c: 0x10842108, d: 0x01000000},
	{nlevels: 63, group: 0, bits: 6, c: 0x10410410, d: 0x00800000},
	{nlevels: 127, group: 0, bits: 7, c: 0x10204081, d: 0x00400000},
	{nlevels: 255, group: 0, bits: 8, c: 0x10101010, d: 0x00200000},
	{nlevels: 511, group: 0, bits: 9, c: 0x10080402, d: 0x00100000},
	{nlevels: 1023, group: 0, bits: 10, c: 0x10040100, d: 0x00080000},
	{nlevels: 2047, group: 0, bits: 11, c: 0x10020040, d: 0x00040000},
	{nlevels: 4095, group: 0, bits: 12, c: 0x10010010, d: 0x00020000},
	{nlevels: 8191, group: 0, bits: 13, c: 0x10008004, d: 0x00010000},
	{nlevels: 16383, group: 0, bits: 14, c: 0x10004001, d: 0x00008000},
	{nlevels: 32767, group: 0, bits: 15, c: 0x10002000, d: 0x00004000},
}

var quantTableHigh = [16]quantizeSpec{
	{nlevels: 3, group: 2, bits: 5, c: 0x15555555, d: 0x08000000},
	{nlevels: 5, group: 4, bits: 7, c: 0x1999999a, d: 0x08000000},
	{nlevels: 9, group: 4, bits: 10, c: 0x1c71c71c, d: 0x08000000},
	{nlevels: 15, group: 0, bits: 4, c: 0x11111111, d: 0x02000000},
	{nlevels: 31, group: 0, bits: 5, c: 0x10842108, d: 0x01000000},
	{nlevels: 63, group: 0, bits: 6, c: 0x10410410, d: 0x00800000},
	{nlevels: 127, group: 0, bits: 7, c: 0x10204081, d: 0x00400000},
	{nlevels: 255, group: 0, bits: 8, c: 0x10101010, d: 0x00200000},
	{nlevels: 511, group: 0, bits: 9, c: 0x10080402, d: 0x00100000},
	{nlevels: 1023, group: 0, bits: 10, c: 0x10040100, d: 0x00080000},
	{nlevels: 2047, group: 0, bits: 11, c: 0x10020040, d: 0x00040000},
	{nlevels: 4095, group: 0, bits: 12, c: 0x10010010, d: 0x00020000},
	{nlevels: 8191, group: 0, bits: 13, c: 0x10008004, d: 0x00010000},
	{nlevels: 16383, group: 0, bits: 14, c: 0x10004001, d: 0x00008000},
	{nlevels: 32767, group: 0, bits: 15, c: 0x10002000, d: 0x00004000},
	{nlevels: 65535, group: 0, bits: 16, c: 0x10001000, d: 0x00002000},
}

var sfTable = [63]int64{
	0x20000000, 0x1965fea5, 0x1428a2fa, 0x10000000, 0x0cb2ff53, 0x0a14517d,
	0x08000000, 0x06597fa9, 0x050a28be, 0x04000000, 0x032cbfd5, 0x0285145f,
	0x02000000, 0x01965fea, 0x01428a30, 0x01000000, 0x00cb2ff5, 0x00a14518,
	0x00800000, 0x006597fb, 0x0050a28c, 0x00400000, 0x0032cbfd, 0x00285146,
	0x00200000, 0x001965ff, 0x001428a3, 0x00100000, 0x000cb2ff, 0x000a1451,
	0x00080000, 0x00065980, 0x00050a29, 0x00040000, 0x00032cc0, 0x00028514,
	0x00020000, 0x00019660, 0x0001428a, 0x00010000, 0x0000cb30, 0x0000a145,
	0x00008000, 0x00006598, 0x000050a3, 0x00004000, 0x000032cc, 0x00002851,
	0x00002000, 0x00001966, 0x00001429, 0x00001000, 0x00000cb3, 0x00000a14,
	0x00000800, 0x00000659, 0x0000050a, 0x00000400, 0x0000032d, 0x00000285,
	0x00000200, 0x00000196, 0x00000143,
}

// isfTable is the inverse scalefactor table used by the encoder.
var isfTable = [63]int64{
	0x00000008000000, 0x0000000A14517C, 0x0000000CB2FF52, 0x00000010000000,
	0x0000001428A2F8, 0x0000001965FEA4, 0x00000020000000, 0x000000285145F5,
	0x00000032CBFD4E, 0x00000040000000, 0x00000050A28BDD, 0x0000006597FA9C,
	0x00000080000000, 0x000000A14517ED, 0x000000CB2FF4E8, 0x00000100000000,
	0x000001428A2FDB, 0x000001965FE9D1, 0x00000200000000, 0x00000285145C8A,
	0x0000032CBFD3A3, 0x00000400000000, 0x0000050A28C5C7, 0x000006597FA747,
	0x00000800000000, 0x00000A145158C2, 0x00000CB2FF4E8E, 0x00001000000000,
	0x00001428A37CB4, 0x00001965FFDFA8, 0x00002000000000, 0x0000285143CCA8,
	0x000032CBFAB527, 0x00004000000000, 0x000050A2879951, 0x000065980992F3,
	0x00008000000000, 0x0000A1450F32A2, 0x0000CB301325E7, 0x00010000000000,
	0x0001428A1E6544, 0x00019660264BCF, 0x00020000000000, 0x000285143CCA88,
	0x00032CBB427564, 0x00040000000000, 0x00050A28799510, 0x0006598AAD93B4,
	0x00080000000000, 0x000A1450F32A20, 0x000CB2C4B983B2, 0x00100000000000,
	0x001428A1E65441, 0x001966CC01966C, 0x00200000000000, 0x00285470CC2B7B,
	0x0032CD98032CD9, 0x00400000000000, 0x00509C2E9A4AF1, 0x00659B300659B3,
	0x00800000000000, 0x00A16B312EA8FC, 0x00CAE5D85F1BBD,
}

type groupSpec struct {
	nlevels   int64
	groupBits uint8
}

type quantSpec struct {
	a, b    int64
	numBits uint8
	group   *groupSpec
}

// quantTable gives the encoder's per-subband quantization parameters,
// mirroring quantTableLow/quantTableHigh from the decoder's side.
var quantTable = buildQuantTable()

func buildQuantTable() [30]quantSpec {
	grouped9 := &groupSpec{nlevels: 9, groupBits: 10}
	grouped3 := &groupSpec{nlevels: 3, groupBits: 5}
	var t [30]quantSpec
	t[0] = quantSpec{a: 0x0F800000, b: -0x00800000, numBits: 5}
	t[1] = quantSpec{a: 0x0F800000, b: -0x00800000, numBits: 5}
	t[2] = quantSpec{a: 0x0F800000, b: -0x00800000, numBits: 5}
	t[3] = quantSpec{a: 0x0F800000, b: -0x00800000, numBits: 5}
	t[4] = quantSpec{a: 0x0F000000, b: -0x01000000, numBits: 4}
	t[5] = quantSpec{a: 0x0F000000, b: -0x01000000, numBits: 4}
	for i := 6; i <= 12; i++ {
		t[i] = quantSpec{a: 0x09000000, b: -0x07000000, numBits: 4, group: grouped9}
	}
	for i := 13; i <= 29; i++ {
		t[i] = quantSpec{a: 0x0C000000, b: -0x04000000, numBits: 2, group: grouped3}
	}
	return t
}

// ahxRadStep is pi/64 rounded to a float32 literal, matching the constant
// the reference encoder/decoder multiplies by.
const ahxRadStep float32 = 0.0490873852123405

// nMatrix is the fixed MPEG-style cosine matrix:
// N[i][j] = cos(((16+i)(2j+1))*pi/64) * 2^28, shared by analysis and
// synthesis. The angle and scale are carried in float32, as the reference
// does, since at the angle magnitudes involved here float64 cosine diverges
// from float32 cosine by more than a 2^28-scaled LSB. Computed once at first
// use.
var (
	nMatrixOnce sync.Once
	nMatrix     [64][32]int64
)

func getNMatrix() *[64][32]int64 {
	nMatrixOnce.Do(func() {
		for i := 0; i < 64; i++ {
			for j := 0; j < 32; j++ {
				angle := float32((16+i)*(2*j+1)) * ahxRadStep
				cos := float32(math.Cos(float64(angle)))
				nMatrix[i][j] = int64(cos * 268435456)
			}
		}
	})
	return &nMatrix
}

// dWindow is the 512-entry MPEG Layer I/II synthesis window, transcribed
// verbatim for bit-exact agreement with reference decoders (see
// SPEC_FULL.md's Fixed tables note).
var dWindow = [512]int64{
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, -0x00001000,
	-0x00001000, -0x00001000, -0x00001000, -0x00002000, -0x00002000, -0x00003000, -0x00003000, -0x00004000,
	-0x00004000, -0x00005000, -0x00006000, -0x00006000, -0x00007000, -0x00008000, -0x00009000, -0x0000A000,
	-0x0000C000, -0x0000D000, -0x0000F000, -0x00010000, -0x00012000, -0x00014000, -0x00017000, -0x00019000,
	-0x0001C000, -0x0001E000, -0x00022000, -0x00025000, -0x00028000, -0x0002C000, -0x00030000, -0x00034000,
	-0x00039000, -0x0003E000, -0x00043000, -0x00048000, -0x0004E000, -0x00054000, -0x0005A000, -0x00060000,
	-0x00067000, -0x0006E000, -0x00074000, -0x0007C000, -0x00083000, -0x0008A000, -0x00092000, -0x00099000,
	-0x000A0000, -0x000A8000, -0x000AF000, -0x000B6000, -0x000BD000, -0x000C3000, -0x000C9000, -0x000CF000,
	0x000D5000, 0x000DA000, 0x000DE000, 0x000E1000, 0x000E3000, 0x000E4000, 0x000E4000, 0x000E3000,
	0x000E0000, 0x000DD000, 0x000D7000, 0x000D0000, 0x000C8000, 0x000BD000, 0x000B1000, 0x000A3000,
	0x00092000, 0x0007F000, 0x0006A000, 0x00053000, 0x00039000, 0x0001D000, -0x00001000, -0x00023000,
	-0x00047000, -0x0006E000, -0x00098000, -0x000C4000, -0x000F3000, -0x00125000, -0x0015A000, -0x00190000,
	-0x001CA000, -0x00206000, -0x00244000, -0x00284000, -0x002C6000, -0x0030A000, -0x0034F000, -0x00396000,
	-0x003DE000, -0x00427000, -0x00470000, -0x004B9000, -0x00502000, -0x0054B000, -0x00593000, -0x005D9000,
	-0x0061E000, -0x00661000, -0x006A1000, -0x006DE000, -0x00718000, -0x0074D000, -0x0077E000, -0x007A9000,
	-0x007D0000, -0x007EF000, -0x00808000, -0x0081A000, -0x00824000, -0x00826000, -0x0081F000, -0x0080E000,
	0x007F5000, 0x007D0000, 0x007A0000, 0x00765000, 0x0071E000, 0x006CB000, 0x0066C000, 0x005FF000,
	0x00586000, 0x00500000, 0x0046B000, 0x003CA000, 0x0031A000, 0x0025D000, 0x00192000, 0x000B9000,
	-0x0002C000, -0x0011F000, -0x00220000, -0x0032D000, -0x00446000, -0x0056B000, -0x0069B000, -0x007D5000,
	-0x00919000, -0x00A66000, -0x00BBB000, -0x00D16000, -0x00E78000, -0x00FDE000, -0x01148000, -0x012B3000,
	-0x01420000, -0x0158C000, -0x016F6000, -0x0185C000, -0x019BC000, -0x01B16000, -0x01C66000, -0x01DAC000,
	-0x01EE5000, -0x02010000, -0x0212A000, -0x02232000, -0x02325000, -0x02402000, -0x024C7000, -0x02570000,
	-0x025FE000, -0x0266D000, -0x026BB000, -0x026E6000, -0x026ED000, -0x026CE000, -0x02686000, -0x02615000,
	-0x02577000, -0x024AC000, -0x023B2000, -0x02287000, -0x0212B000, -0x01F9B000, -0x01DD7000, -0x01BDD000,
	0x019AE000, 0x01747000, 0x014A8000, 0x011D1000, 0x00EC0000, 0x00B77000, 0x007F5000, 0x0043A000,
	0x00046000, -0x003E5000, -0x00849000, -0x00CE3000, -0x011B4000, -0x016B9000, -0x01BF1000, -0x0215B000,
	-0x026F6000, -0x02CBE000, -0x032B3000, -0x038D3000, -0x03F1A000, -0x04586000, -0x04C15000, -0x052C4000,
	-0x05990000, -0x06075000, -0x06771000, -0x06E80000, -0x0759F000, -0x07CCA000, -0x083FE000, -0x08B37000,
	-0x09270000, -0x099A7000, -0x0A0D7000, -0x0A7FD000, -0x0AF14000, -0x0B618000, -0x0BD05000, -0x0C3D8000,
	-0x0CA8C000, -0x0D11D000, -0x0D789000, -0x0DDC9000, -0x0E3DC000, -0x0E9BD000, -0x0EF68000, -0x0F4DB000,
	-0x0FA12000, -0x0FF09000, -0x103BD000, -0x1082C000, -0x10C53000, -0x1102E000, -0x113BD000, -0x116FB000,
	-0x119E8000, -0x11C82000, -0x11EC6000, -0x120B3000, -0x12248000, -0x12385000, -0x12467000, -0x124EF000,
	0x1251E000, 0x124F0000, 0x12468000, 0x12386000, 0x12249000, 0x120B4000, 0x11EC7000, 0x11C83000,
	0x119E9000, 0x116FC000, 0x113BE000, 0x1102F000, 0x10C54000, 0x1082D000, 0x103BE000, 0x0FF0A000,
	0x0FA13000, 0x0F4DC000, 0x0EF69000, 0x0E9BE000, 0x0E3DD000, 0x0DDCA000, 0x0D78A000, 0x0D11E000,
	0x0CA8D000, 0x0C3D9000, 0x0BD06000, 0x0B619000, 0x0AF15000, 0x0A7FE000, 0x0A0D8000, 0x099A8000,
	0x09271000, 0x08B38000, 0x083FF000, 0x07CCB000, 0x075A0000, 0x06E81000, 0x06772000, 0x06076000,
	0x05991000, 0x052C5000, 0x04C16000, 0x04587000, 0x03F1B000, 0x038D4000, 0x032B4000, 0x02CBF000,
	0x026F7000, 0x0215C000, 0x01BF2000, 0x016BA000, 0x011B5000, 0x00CE4000, 0x0084A000, 0x003E6000,
	-0x00045000, -0x00439000, -0x007F4000, -0x00B76000, -0x00EBF000, -0x011D0000, -0x014A7000, -0x01746000,
	0x019AE000, 0x01BDE000, 0x01DD8000, 0x01F9C000, 0x0212C000, 0x02288000, 0x023B3000, 0x024AD000,
	0x02578000, 0x02616000, 0x02687000, 0x026CF000, 0x026EE000, 0x026E7000, 0x026BC000, 0x0266E000,
	0x025FF000, 0x02571000, 0x024C8000, 0x02403000, 0x02326000, 0x02233000, 0x0212B000, 0x02011000,
	0x01EE6000, 0x01DAD000, 0x01C67000, 0x01B17000, 0x019BD000, 0x0185D000, 0x016F7000, 0x0158D000,
	0x01421000, 0x012B4000, 0x01149000, 0x00FDF000, 0x00E79000, 0x00D17000, 0x00BBC000, 0x00A67000,
	0x0091A000, 0x007D6000, 0x0069C000, 0x0056C000, 0x00447000, 0x0032E000, 0x00221000, 0x00120000,
	0x0002D000, -0x000B8000, -0x00191000, -0x0025C000, -0x00319000, -0x003C9000, -0x0046A000, -0x004FF000,
	-0x00585000, -0x005FE000, -0x0066B000, -0x006CA000, -0x0071D000, -0x00764000, -0x0079F000, -0x007CF000,
	0x007F5000, 0x0080F000, 0x00820000, 0x00827000, 0x00825000, 0x0081B000, 0x00809000, 0x007F0000,
	0x007D1000, 0x007AA000, 0x0077F000, 0x0074E000, 0x00719000, 0x006DF000, 0x006A2000, 0x00662000,
	0x0061F000, 0x005DA000, 0x00594000, 0x0054C000, 0x00503000, 0x004BA000, 0x00471000, 0x00428000,
	0x003DF000, 0x00397000, 0x00350000, 0x0030B000, 0x002C7000, 0x00285000, 0x00245000, 0x00207000,
	0x001CB000, 0x00191000, 0x0015B000, 0x00126000, 0x000F4000, 0x000C5000, 0x00099000, 0x0006F000,
	0x00048000, 0x00024000, 0x00002000, -0x0001C000, -0x00038000, -0x00052000, -0x00069000, -0x0007E000,
	-0x00091000, -0x000A2000, -0x000B0000, -0x000BC000, -0x000C7000, -0x000CF000, -0x000D6000, -0x000DC000,
	-0x000DF000, -0x000E2000, -0x000E3000, -0x000E3000, -0x000E2000, -0x000E0000, -0x000DD000, -0x000D9000,
	0x000D5000, 0x000D0000, 0x000CA000, 0x000C4000, 0x000BE000, 0x000B7000, 0x000B0000, 0x000A9000,
	0x000A1000, 0x0009A000, 0x00093000, 0x0008B000, 0x00084000, 0x0007D000, 0x00075000, 0x0006F000,
	0x00068000, 0x00061000, 0x0005B000, 0x00055000, 0x0004F000, 0x00049000, 0x00044000, 0x0003F000,
	0x0003A000, 0x00035000, 0x00031000, 0x0002D000, 0x00029000, 0x00026000, 0x00023000, 0x0001F000,
	0x0001D000, 0x0001A000, 0x00018000, 0x00015000, 0x00013000, 0x00011000, 0x00010000, 0x0000E000,
	0x0000D000, 0x0000B000, 0x0000A000, 0x00009000, 0x00008000, 0x00007000, 0x00007000, 0x00006000,
	0x00005000, 0x00005000, 0x00004000, 0x00004000, 0x00003000, 0x00003000, 0x00002000, 0x00002000,
	0x00002000, 0x00002000, 0x00001000, 0x00001000, 0x00001000, 0x00001000, 0x00001000, 0x00001000,
}

// enWindow is the 512-entry analysis window used by the encoder, the
// transform-pair of dWindow.
var enWindow = [512]int64{
	0x000000, -0x000080, -0x000080, -0x000080, -0x000080, -0x000080, -0x000080, -0x000100, -0x000100, -0x000100, -0x000100, -0x000180, -0x000180, -0x000200, -0x000200, -0x000280,
	-0x000280, -0x000300, -0x000380, -0x000380, -0x000400, -0x000480, -0x000500, -0x000580, -0x000680, -0x000700, -0x000800, -0x000880, -0x000980, -0x000A80, -0x000C00, -0x000D00,
	-0x000E80, -0x000F80, -0x001180, -0x001300, -0x001480, -0x001680, -0x001880, -0x001A80, -0x001D00, -0x001F80, -0x002200, -0x002480, -0x002780, -0x002A80, -0x002D80, -0x003080,
	-0x003400, -0x003780, -0x003A80, -0x003E80, -0x004200, -0x004580, -0x004980, -0x004D00, -0x005080, -0x005480, -0x005800, -0x005B80, -0x005F00, -0x006200, -0x006500, -0x006800,
	0x006A80, 0x006D00, 0x006F00, 0x007080, 0x007180, 0x007200, 0x007200, 0x007180, 0x007000, 0x006E80, 0x006B80, 0x006800, 0x006400, 0x005E80, 0x005880, 0x005180,
	0x004900, 0x003F80, 0x003500, 0x002980, 0x001C80, 0x000E80, -0x000100, -0x001200, -0x002400, -0x003780, -0x004C80, -0x006280, -0x007A00, -0x009300, -0x00AD80, -0x00C880,
	-0x00E580, -0x010380, -0x012280, -0x014280, -0x016380, -0x018580, -0x01A800, -0x01CB80, -0x01EF80, -0x021400, -0x023880, -0x025D00, -0x028180, -0x02A600, -0x02CA00, -0x02ED00,
	-0x030F80, -0x033100, -0x035100, -0x036F80, -0x038C80, -0x03A700, -0x03BF80, -0x03D500, -0x03E880, -0x03F800, -0x040480, -0x040D80, -0x041280, -0x041380, -0x041000, -0x040780,
	0x03FA80, 0x03E800, 0x03D000, 0x03B280, 0x038F00, 0x036580, 0x033600, 0x02FF80, 0x02C300, 0x028000, 0x023580, 0x01E500, 0x018D00, 0x012E80, 0x00C900, 0x005C80,
	-0x001680, -0x009000, -0x011080, -0x019700, -0x022380, -0x02B600, -0x034E00, -0x03EB00, -0x048D00, -0x053380, -0x05DE00, -0x068B80, -0x073C80, -0x07EF80, -0x08A480, -0x095A00,
	-0x0A1080, -0x0AC680, -0x0B7B80, -0x0C2E80, -0x0CDE80, -0x0D8B80, -0x0E3380, -0x0ED680, -0x0F7300, -0x100880, -0x109580, -0x111980, -0x119300, -0x120180, -0x126400, -0x12B880,
	-0x12FF80, -0x133700, -0x135E00, -0x137380, -0x137700, -0x136780, -0x134380, -0x130B00, -0x12BC00, -0x125680, -0x11D980, -0x114400, -0x109600, -0x0FCE00, -0x0EEC00, -0x0DEF00,
	0x0CD700, 0x0BA380, 0x0A5400, 0x08E880, 0x076000, 0x05BB80, 0x03FA80, 0x021D00, 0x002300, -0x01F300, -0x042500, -0x067200, -0x08DA80, -0x0B5D00, -0x0DF900, -0x10AE00,
	-0x137B80, -0x165F80, -0x195A00, -0x1C6A00, -0x1F8D80, -0x22C380, -0x260B00, -0x296280, -0x2CC880, -0x303B00, -0x33B900, -0x374080, -0x3AD000, -0x3E6580, -0x41FF80, -0x459C00,
	-0x493880, -0x4CD400, -0x506C00, -0x53FF00, -0x578A80, -0x5B0C80, -0x5E8300, -0x61EC80, -0x654680, -0x688F00, -0x6BC500, -0x6EE500, -0x71EE80, -0x74DF00, -0x77B480, -0x7A6E00,
	-0x7D0980, -0x7F8500, -0x81DF00, -0x841680, -0x862A00, -0x881780, -0x89DF00, -0x8B7E00, -0x8CF480, -0x8E4180, -0x8F6380, -0x905A00, -0x912480, -0x91C300, -0x923400, -0x927800,
	0x928F00, 0x927800, 0x923400, 0x91C300, 0x912480, 0x905A00, 0x8F6380, 0x8E4180, 0x8CF480, 0x8B7E00, 0x89DF00, 0x881780, 0x862A00, 0x841680, 0x81DF00, 0x7F8500,
	0x7D0980, 0x7A6E00, 0x77B480, 0x74DF00, 0x71EE80, 0x6EE500, 0x6BC500, 0x688F00, 0x654680, 0x61EC80, 0x5E8300, 0x5B0C80, 0x578A80, 0x53FF00, 0x506C00, 0x4CD400,
	0x493880, 0x459C00, 0x41FF80, 0x3E6580, 0x3AD000, 0x374080, 0x33B900, 0x303B00, 0x2CC880, 0x296280, 0x260B00, 0x22C380, 0x1F8D80, 0x1C6A00, 0x195A00, 0x165F80,
	0x137B80, 0x10AE00, 0x0DF900, 0x0B5D00, 0x08DA80, 0x067200, 0x042500, 0x01F300, -0x002300, -0x021D00, -0x03FA80, -0x05BB80, -0x076000, -0x08E880, -0x0A5400, -0x0BA380,
	0x0CD700, 0x0DEF00, 0x0EEC00, 0x0FCE00, 0x109600, 0x114400, 0x11D980, 0x125680, 0x12BC00, 0x130B00, 0x134380, 0x136780, 0x137700, 0x137380, 0x135E00, 0x133700,
	0x12FF80, 0x12B880, 0x126400, 0x120180, 0x119300, 0x111980, 0x109580, 0x100880, 0x0F7300, 0x0ED680, 0x0E3380, 0x0D8B80, 0x0CDE80, 0x0C2E80, 0x0B7B80, 0x0AC680,
	0x0A1080, 0x095A00, 0x08A480, 0x07EF80, 0x073C80, 0x068B80, 0x05DE00, 0x053380, 0x048D00, 0x03EB00, 0x034E00, 0x02B600, 0x022380, 0x019700, 0x011080, 0x009000,
	0x001680, -0x005C80, -0x00C900, -0x012E80, -0x018D00, -0x01E500, -0x023580, -0x028000, -0x02C300, -0x02FF80, -0x033600, -0x036580, -0x038F00, -0x03B280, -0x03D000, -0x03E800,
	0x03FA80, 0x040780, 0x041000, 0x041380, 0x041280, 0x040D80, 0x040480, 0x03F800, 0x03E880, 0x03D500, 0x03BF80, 0x03A700, 0x038C80, 0x036F80, 0x035100, 0x033100,
	0x030F80, 0x02ED00, 0x02CA00, 0x02A600, 0x028180, 0x025D00, 0x023880, 0x021400, 0x01EF80, 0x01CB80, 0x01A800, 0x018580, 0x016380, 0x014280, 0x012280, 0x010380,
	0x00E580, 0x00C880, 0x00AD80, 0x009300, 0x007A00, 0x006280, 0x004C80, 0x003780, 0x002400, 0x001200, 0x000100, -0x000E80, -0x001C80, -0x002980, -0x003500, -0x003F80,
	-0x004900, -0x005180, -0x005880, -0x005E80, -0x006400, -0x006800, -0x006B80, -0x006E80, -0x007000, -0x007180, -0x007200, -0x007200, -0x007180, -0x007080, -0x006F00, -0x006D00,
	0x006A80, 0x006800, 0x006500, 0x006200, 0x005F00, 0x005B80, 0x005800, 0x005480, 0x005080, 0x004D00, 0x004980, 0x004580, 0x004200, 0x003E80, 0x003A80, 0x003780,
	0x003400, 0x003080, 0x002D80, 0x002A80, 0x002780, 0x002480, 0x002200, 0x001F80, 0x001D00, 0x001A80, 0x001880, 0x001680, 0x001480, 0x001300, 0x001180, 0x000F80,
	0x000E80, 0x000D00, 0x000C00, 0x000A80, 0x000980, 0x000880, 0x000800, 0x000700, 0x000680, 0x000580, 0x000500, 0x000480, 0x000400, 0x000380, 0x000380, 0x000300,
	0x000280, 0x000280, 0x000200, 0x000200, 0x000180, 0x000180, 0x000100, 0x000100, 0x000100, 0x000100, 0x000080, 0x000080, 0x000080, 0x000080, 0x000080, 0x000080,
}
