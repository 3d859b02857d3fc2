package clientcli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sagarc03/bbdist"
)

// Formatter formats results for output.
type Formatter interface {
	FormatPublish(w io.Writer, result *bbdist.PublishResult) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatPublish formats publish results as human-readable text.
// In quiet mode only the download URL is printed.
func (f *HumanFormatter) FormatPublish(w io.Writer, result *bbdist.PublishResult) error {
	if f.Quiet {
		_, _ = fmt.Fprintln(w, result.DownloadURL)
		return nil
	}

	for i := range result.Uploads {
		u := &result.Uploads[i]
		if u.Target != "" {
			_, _ = fmt.Fprintf(w, "Uploaded: %s [%s %s]\n", u.Path, u.Command, u.Target)
		} else {
			_, _ = fmt.Fprintf(w, "Uploaded: %s [%s]\n", u.Path, u.Command)
		}
		_, _ = fmt.Fprintf(w, "  URL: %s\n", u.URL)
	}
	_, _ = fmt.Fprintf(w, "\nDownload URL: %s\n", result.DownloadURL)
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatPublish formats publish results as JSON.
func (f *JSONFormatter) FormatPublish(w io.Writer, result *bbdist.PublishResult) error {
	return writeJSON(w, result)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
