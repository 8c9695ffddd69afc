package slot

import (
	"encoding/binary"
	stderrors "errors"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/hostabi"
	"github.com/wippyai/hostabi/cstr"
	"github.com/wippyai/hostabi/errors"
)

// Narrow is an 8-bit character field of Cap bytes at Offset.
type Narrow struct {
	Name   string
	Offset uint32
	Cap    uint32
}

// Wide is a UTF-16 field of Cap code units at Offset.
type Wide struct {
	Name   string
	Offset uint32
	Cap    uint32
}

// Size returns the field size in bytes.
func (s Narrow) Size() uint64 { return uint64(s.Cap) }

// Size returns the field size in bytes.
func (s Wide) Size() uint64 { return uint64(s.Cap) * 2 }

// Write copies src into the field, truncating and terminating it.
// Only the copied prefix and its terminator are written.
func (s Narrow) Write(mem hostabi.Memory, src string) error {
	if err := checkRange(mem, errors.PhaseMemory, s.Name, s.Offset, s.Size()); err != nil {
		return err
	}
	if s.Cap == 0 {
		return nil
	}

	buf := make([]byte, min(s.Size(), uint64(len(src))+1))
	n := cstr.CopyNarrow(buf, src)
	if err := mem.Write(s.Offset, buf[:n+1]); err != nil {
		return accessFault(errors.PhaseMemory, s.Name, err)
	}
	return nil
}

// Read returns the field contents up to the terminator.
func (s Narrow) Read(mem hostabi.Memory) (string, error) {
	if err := checkRange(mem, errors.PhaseDecode, s.Name, s.Offset, s.Size()); err != nil {
		return "", err
	}
	data, err := mem.Read(s.Offset, s.Cap)
	if err != nil {
		return "", accessFault(errors.PhaseDecode, s.Name, err)
	}
	return cstr.Narrow(data), nil
}

// Write encodes src as UTF-16 into the field, truncating and terminating it.
// If src cannot be encoded the field is left untouched.
func (s Wide) Write(mem hostabi.Memory, src string) error {
	if err := checkRange(mem, errors.PhaseMemory, s.Name, s.Offset, s.Size()); err != nil {
		return err
	}
	if s.Cap == 0 {
		return nil
	}

	units, err := cstr.WideLen(src)
	if err != nil {
		return encodeFault(s.Name, err)
	}

	staged := make([]uint16, min(uint64(s.Cap), uint64(units)+1))
	n, err := cstr.CopyWide(staged, src)
	if err != nil {
		return encodeFault(s.Name, err)
	}

	buf := make([]byte, 2*(n+1))
	for i := 0; i <= n; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:], staged[i])
	}
	if err := mem.Write(s.Offset, buf); err != nil {
		return accessFault(errors.PhaseMemory, s.Name, err)
	}
	return nil
}

// Read decodes the field contents up to the terminator.
func (s Wide) Read(mem hostabi.Memory) (string, error) {
	if err := checkRange(mem, errors.PhaseDecode, s.Name, s.Offset, s.Size()); err != nil {
		return "", err
	}
	// checkRange bounds Size() by the 32-bit address space
	data, err := mem.Read(s.Offset, uint32(s.Size()))
	if err != nil {
		return "", accessFault(errors.PhaseDecode, s.Name, err)
	}
	units := make([]uint16, s.Cap)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return cstr.Wide(units), nil
}

// checkRange rejects fields that do not fit in mem before anything is
// written. Memories that cannot report their size are checked by the
// access itself.
func checkRange(mem hostabi.Memory, phase errors.Phase, name string, offset uint32, size uint64) error {
	if mem == nil {
		return errors.NilPointer(phase, path(name), "memory")
	}
	end := uint64(offset) + size
	if end > math.MaxUint32 {
		Logger().Debug("slot exceeds address space", zap.String("slot", name), zap.Uint64("end", end))
		return errors.New(phase, errors.KindOutOfBounds).
			Path(path(name)...).
			Detail("field end %d exceeds 32-bit address space", end).
			Build()
	}
	if sizer, ok := mem.(hostabi.MemorySizer); ok && end > uint64(sizer.Size()) {
		Logger().Debug("slot exceeds memory",
			zap.String("slot", name),
			zap.Uint64("end", end),
			zap.Uint32("size", sizer.Size()))
		return errors.OutOfBounds(phase, path(name), int(end), int(sizer.Size()))
	}
	return nil
}

func accessFault(phase errors.Phase, name string, cause error) error {
	Logger().Debug("slot access failed", zap.String("slot", name), zap.Error(cause))
	err := errors.Wrap(phase, errors.KindOutOfBounds, cause, "memory access failed")
	err.Path = path(name)
	return err
}

func encodeFault(name string, err error) error {
	Logger().Debug("slot encode failed", zap.String("slot", name), zap.Error(err))
	var e *errors.Error
	if stderrors.As(err, &e) && name != "" {
		e.Path = append([]string{name}, e.Path...)
	}
	return err
}

func path(name string) []string {
	if name == "" {
		return nil
	}
	return []string{name}
}
