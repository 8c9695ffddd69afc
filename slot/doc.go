// Package slot writes and reads fixed-capacity string fields that live inside
// foreign linear memory, such as the name fields of a descriptor struct a
// plugin guest hands to the host.
//
// A slot is an offset and a capacity in units. Writes go through the cstr
// copiers, so they keep the same guarantees: the field is always
// nul-terminated, overlong input is truncated, and no byte at or past the
// end of the field is touched.
//
//	mem := slot.WrapMemory(mod.ExportedMemory("memory"))
//	title := slot.Wide{Name: "title", Offset: 0x100, Cap: 128}
//	if err := title.Write(mem, "Output Gain"); err != nil {
//	    return err
//	}
//
// Wide slots store UTF-16 code units little-endian, matching WebAssembly.
package slot
