// Package chunk reads fixed-size chunks from a byte source without losing
// bytes at end-of-file.
//
// io.Reader allows a Read call to return n > 0 bytes together with io.EOF,
// and readers built on io.ReadFull report io.ErrUnexpectedEOF after a partial
// transfer. A loop that checks the error before consuming p[:n] silently
// drops the tail of the file. Next always accounts for the transferred bytes
// first and only then inspects the error:
//
//   - bytes followed by EOF produce a short Data outcome and no error
//   - no bytes followed by EOF produce an Exhausted outcome and no error
//   - any other error is a read fault (errors.CodeReadFault)
//
// Example:
//
//	r, err := chunk.NewReader(f, 4096)
//	if err != nil {
//	    return err
//	}
//	for {
//	    out, err := r.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if out.Exhausted() {
//	        break
//	    }
//	    process(out.Bytes())
//	}
package chunk
