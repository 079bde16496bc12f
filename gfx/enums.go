package gfx

// Enum is a GL enumerant. The values below match the OpenGL / WebGL headers so backends can pass them straight through.
type Enum uint32

const (
	POINTS    Enum = 0x0000
	LINES     Enum = 0x0001
	TRIANGLES Enum = 0x0004

	UNSIGNED_BYTE  Enum = 0x1401
	UNSIGNED_SHORT Enum = 0x1403
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	UNIFORM_OFFSET          Enum = 0x8A3B
	UNIFORM_BLOCK_DATA_SIZE Enum = 0x8A40

	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE0           Enum = 0x84C0
	RGBA               Enum = 0x1908
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803

	NEAREST              Enum = 0x2600
	LINEAR               Enum = 0x2601
	LINEAR_MIPMAP_LINEAR Enum = 0x2703
	REPEAT               Enum = 0x2901
	CLAMP_TO_EDGE        Enum = 0x812F

	DEPTH_BUFFER_BIT Enum = 0x00000100
	COLOR_BUFFER_BIT Enum = 0x00004000

	CULL_FACE  Enum = 0x0B44
	DEPTH_TEST Enum = 0x0B71
	LESS       Enum = 0x0201
	LEQUAL     Enum = 0x0203

	FALSE = 0
	TRUE  = 1
)

// INVALID_INDEX is returned by uniform block and uniform index queries for names the program doesn't use.
const INVALID_INDEX uint32 = 0xFFFFFFFF
