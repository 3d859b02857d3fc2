package clientcli

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FormField is a single multipart form value.
type FormField struct {
	Name  string
	Value string
}

// FormFields is an ordered set of form fields.
//
// Signed-POST endpoints check the submitted fields against the policy
// signature, and some of them also care about the order. Fields are written
// to the wire in insertion order.
type FormFields struct {
	fields []FormField
}

// Set replaces the value of an existing field in place, or appends a new one.
func (f *FormFields) Set(name, value string) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].Value = value
			return
		}
	}
	f.fields = append(f.fields, FormField{Name: name, Value: value})
}

// Get returns the value of name and whether it is present.
func (f *FormFields) Get(name string) (string, bool) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return f.fields[i].Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (f *FormFields) Len() int {
	return len(f.fields)
}

// Names returns the field names in order.
func (f *FormFields) Names() []string {
	names := make([]string, len(f.fields))
	for i := range f.fields {
		names[i] = f.fields[i].Name
	}
	return names
}

// Fields returns a copy of the fields in order.
func (f *FormFields) Fields() []FormField {
	out := make([]FormField, len(f.fields))
	copy(out, f.fields)
	return out
}

// multipartBody is a multipart/form-data body with a known length.
type multipartBody struct {
	io.Reader
	ContentType   string
	ContentLength int64
}

// newMultipartBody lays out fields in order followed by a single file part.
// The file content is streamed from file; only the part headers and the
// closing boundary are buffered.
func newMultipartBody(fields *FormFields, fileField, filename string, file io.Reader, size int64) (*multipartBody, error) {
	var head bytes.Buffer
	mw := multipart.NewWriter(&head)

	for _, field := range fields.fields {
		if err := mw.WriteField(field.Name, field.Value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", field.Name, err)
		}
	}
	if _, err := mw.CreateFormFile(fileField, filename); err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}

	// Everything written after this point is the closing boundary.
	prefix := bytes.Clone(head.Bytes())
	head.Reset()
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	suffix := bytes.Clone(head.Bytes())

	return &multipartBody{
		Reader:        io.MultiReader(bytes.NewReader(prefix), io.LimitReader(file, size), bytes.NewReader(suffix)),
		ContentType:   mw.FormDataContentType(),
		ContentLength: int64(len(prefix)) + size + int64(len(suffix)),
	}, nil
}
