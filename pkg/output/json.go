package output

import (
	"io"

	"github.com/policylint/policylint/internal/jsonutil"
)

// WriteJSON renders a report as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	data, err := jsonutil.MarshalIndent(r, "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte{'\n'})
	return err
}
