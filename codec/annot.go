package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Annotations travel as one length-prefixed UTF-8 blob holding the
// ordered annotation strings joined by a single space.

func appendAnnots(dst []byte, annots []string) ([]byte, error) {
	for _, a := range annots {
		if strings.ContainsRune(a, ' ') {
			return dst, fmt.Errorf("%w: %q contains the separator", ErrAnnot, a)
		}
	}
	return appendBlob(dst, []byte(strings.Join(annots, " "))), nil
}

// readAnnots reads an annotation blob. An empty blob decodes to no
// annotations; consequently a lone empty-string annotation is not
// representable on the wire, since it also joins to the empty blob.
func (r *reader) readAnnots() ([]string, error) {
	off := r.off
	blob, err := r.readBlob()
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, nil
	}
	if !utf8.Valid(blob) {
		return nil, fmt.Errorf("%w: annotations at offset %d", ErrUTF8, off)
	}
	return strings.Split(string(blob), " "), nil
}
