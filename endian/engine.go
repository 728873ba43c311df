// Package endian provides the byte order used by the flint binary format.
//
// The trace format is defined in host-native byte order: a stream written on
// a little-endian machine stores every multi-byte field little-endian, and a
// reader on a machine of the other order has to swap. This package detects
// the host order once and hands out an EndianEngine for it.
//
//	engine := endian.GetNativeEngine()
//	buf = engine.AppendUint32(buf, pid)
//	buf = endian.AppendFloat64(engine, buf, when)
//
// All functions are safe for concurrent use. The returned engines are the
// stateless binary.LittleEndian and binary.BigEndian values.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

func detectNative() EndianEngine {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	return nativeEngine
}

// AppendFloat64 appends v as IEEE 754 bits in the engine's order.
func AppendFloat64(engine EndianEngine, b []byte, v float64) []byte {
	return engine.AppendUint64(b, math.Float64bits(v))
}

// Float64 reads IEEE 754 bits from b[0:8] in the engine's order.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
