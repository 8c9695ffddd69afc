// Package paramid derives stable 32-bit parameter identifiers from parameter
// names.
//
// The hash is the JUCE String::hashCode Rabin fingerprint with the sign bit
// cleared, so ids computed here match ids computed by JUCE based plugins and
// stay stable across builds:
//
//	h = 0
//	for each byte b of the UTF-8 name:
//	    h = h*31 + b   (mod 2^32)
//	h &= 0x7FFFFFFF
//
// Some hosts (Studio One among them) treat ids with bit 31 set as negative
// parameter indices, hence the mask.
//
// The mapping is not collision free. Detecting duplicate ids across a
// parameter set is up to the caller.
package paramid
