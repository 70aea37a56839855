// Package report renders check results for people.
package report

import (
	"fmt"
	"io"

	"github.com/atinyakov/pwncheck/internal/models"
)

// Write prints one line describing r.
func Write(w io.Writer, r models.LeakResult) error {
	var err error
	if r.Pwned() {
		_, err = fmt.Fprintf(w, "%s was found %d times... you should probably change your password!\n", r.Password, r.Count)
	} else {
		_, err = fmt.Fprintf(w, "%s was NOT found. Carry on!\n", r.Password)
	}
	return err
}

// Writer returns an emit callback that writes each result to w.
func Writer(w io.Writer) func(models.LeakResult) error {
	return func(r models.LeakResult) error {
		return Write(w, r)
	}
}
