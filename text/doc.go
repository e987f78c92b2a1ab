// Package text reconstructs UTF-8 text from a chunked byte source.
//
// Assemble drives a chunk.Reader until the source is exhausted, decodes the
// chunks strictly as UTF-8 and joins them in order. The result is either
// the complete text or an error, never a truncated string:
//
//	s, err := text.Assemble(f, 4096)
//	switch errors.GetCode(err) {
//	case errors.CodeReadFault:
//	    // the source failed; errors.Is reaches the I/O error
//	case errors.CodeDecodeFailed:
//	    // the bytes are not UTF-8
//	}
//
// # Strategies
//
// PerChunk (the default) decodes every chunk on its own. It is correct only
// when no codepoint straddles a chunk boundary, for example when the chunk
// size exceeds the source length. Buffered collects the raw bytes of all
// chunks and decodes once at the end, which is correct for any chunk size.
//
// # Batches
//
// AssembleAll assembles several independent sources in parallel. Each
// source is read by exactly one goroutine.
package text
