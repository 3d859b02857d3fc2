package scrape

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractField returns the value attribute of the first <input> tag whose
// name attribute equals name. Matching is exact and case-sensitive.
//
// An empty value attribute is reported as ErrValueNotFound.
func ExtractField(page, name string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(page))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", &FieldError{Field: name, Err: err}
			}
			return "", &FieldError{Field: name, Err: ErrFieldNotFound}

		case html.StartTagToken, html.SelfClosingTagToken:
			tagName, hasAttr := z.TagName()
			if !hasAttr || string(tagName) != "input" {
				continue
			}

			value, matched := inputValue(z, name)
			if !matched {
				continue
			}
			if value == "" {
				return "", &FieldError{Field: name, Err: ErrValueNotFound}
			}
			return value, nil
		}
	}
}

// ExtractFields extracts each named field in order. It stops at the first
// field that cannot be extracted.
func ExtractFields(page string, names ...string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		v, err := ExtractField(page, name)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// inputValue walks the attributes of the current tag. matched reports whether
// the tag's name attribute equals name.
func inputValue(z *html.Tokenizer, name string) (value string, matched bool) {
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "name":
			matched = string(val) == name
		case "value":
			value = string(val)
		}
		if !more {
			return value, matched
		}
	}
}
