package jsontext

import (
	"bytes"
	"encoding/json"

	"github.com/jsonlens/jsonlens/internal/jsonpath"
)

// Locate resolves path inside doc and returns the byte range of the value it
// addresses. The empty path addresses the whole root value.
func Locate(doc []byte, path jsonpath.Path) (Span, error) {
	i := skipSpace(doc, 0)
	for k, seg := range path {
		var err error
		if seg.IsIndex {
			i, err = enterArray(doc, i, seg.Index)
		} else {
			i, err = enterObject(doc, i, seg.Key)
		}
		if err != nil {
			return Span{}, patchErr(path, k, err)
		}
	}
	end, err := scanValue(doc, i)
	if err != nil {
		return Span{}, patchErr(path, len(path), err)
	}
	i = skipSpace(doc, i)
	return Span{Start: i, End: end}, nil
}

// enterObject steps into the object starting at doc[i] and returns the start
// offset of the value for key.
func enterObject(d []byte, i int, key string) (int, error) {
	i = skipSpace(d, i)
	if i >= len(d) {
		return 0, errInvalid("unexpected end of document")
	}
	if d[i] != '{' {
		return 0, ErrPathNotFound
	}
	i++
	for {
		i = skipSpace(d, i)
		if i >= len(d) {
			return 0, errInvalid("unterminated object")
		}
		if d[i] == '}' {
			return 0, ErrPathNotFound
		}
		if d[i] != '"' {
			return 0, errInvalid("object key is not a string")
		}
		keyStart := i
		var err error
		if i, err = scanString(d, i); err != nil {
			return 0, err
		}
		k, ok := unquoteKey(d[keyStart:i])
		i = skipSpace(d, i)
		if i >= len(d) || d[i] != ':' {
			return 0, errInvalid("missing ':' after object key")
		}
		i = skipSpace(d, i+1)
		if ok && k == key {
			return i, nil
		}
		if i, err = scanValue(d, i); err != nil {
			return 0, err
		}
		i = skipSpace(d, i)
		if i < len(d) && d[i] == ',' {
			i++
		}
	}
}

// enterArray steps into the array starting at doc[i] and returns the start
// offset of the element at idx.
func enterArray(d []byte, i int, idx int) (int, error) {
	i = skipSpace(d, i)
	if i >= len(d) {
		return 0, errInvalid("unexpected end of document")
	}
	if d[i] != '[' {
		return 0, ErrPathNotFound
	}
	i++
	n := 0
	for {
		i = skipSpace(d, i)
		if i >= len(d) {
			return 0, errInvalid("unterminated array")
		}
		if d[i] == ']' {
			if idx >= n {
				return 0, ErrPathNotFound
			}
			return 0, errInvalid("unexpected ']'")
		}
		if n == idx {
			return i, nil
		}
		var err error
		if i, err = scanValue(d, i); err != nil {
			return 0, err
		}
		n++
		i = skipSpace(d, i)
		if i < len(d) && d[i] == ',' {
			i++
		}
	}
}

// Value decodes the value addressed by path. Numbers come back as
// json.Number so their textual form survives round trips.
func Value(doc []byte, path jsonpath.Path) (any, error) {
	span, err := Locate(doc, path)
	if err != nil {
		return nil, err
	}
	return decodeStrict(Standardize(doc[span.Start:span.End]))
}

// Decode parses the whole document, tolerating comments and trailing commas.
func Decode(doc []byte) (any, error) {
	return decodeStrict(Standardize(doc))
}

func decodeStrict(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errInvalid("decode: %v", err)
	}
	return v, nil
}
