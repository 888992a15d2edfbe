// Package compression implements the PackBits run-length encoding used by TIFF
// and a handful of related raster formats, plus a small container for storing
// PackBits-encoded images with a second compression stage on top.
//
// A PackBits stream is a sequence of chunks, each introduced by a signed control
// byte N:
//
//	0 <= N <= 127     the next N + 1 bytes are copied verbatim (a literal)
//	-128 <= N <= -1   the next byte is repeated 1 - N times (a run)
//
// Literals therefore hold 1 to 128 bytes and runs 2 to 129 bytes. Some PackBits
// writers use -128 as a no-op; here it is a run of 129, which the encoder emits
// for every full-length run. For example:
//
//	abcdef  =>  5 "abcdef"             (7 bytes)
//	abbbbc  =>  0 "a" -3 "b" 0 "c"     (6 bytes)
//	aabbcc  =>  -1 "a" -1 "b" -1 "c"   (6 bytes)
//	abbccd  =>  5 "abbccd"             (7 bytes)
//
// The encoder makes a single greedy pass. A run of two bytes is only broken out
// of the input when no literal is pending; once a literal has started, it takes a
// run of three or more to end it. Two repeated bytes cost the same either way
// and keeping them in the literal avoids paying for another control byte later.
//
// Encoded output never exceeds len + ceil(len / 128) bytes; see [MaxEncodedLen].
//
// Sparse images (mostly zero bytes) shrink a great deal under PackBits, and the
// result still compresses well. [CompressImage] chains PackBits with one of the
// codecs from [CreateCodec] and records a checksum of the raw data so that
// [DecompressImage] can verify what it produced.
package compression
