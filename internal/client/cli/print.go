package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/gobarber/internal/client/toast"
	"github.com/dmitrijs2005/gobarber/internal/client/validation"
)

func formatToast(m toast.Message) string {
	if m.Description == "" {
		return fmt.Sprintf("[%s] %s", m.Type, m.Title)
	}
	return fmt.Sprintf("[%s] %s: %s", m.Type, m.Title, m.Description)
}

// printFieldErrors writes one line per invalid field, sorted by name.
func printFieldErrors(w io.Writer, errs validation.FieldErrors) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, errs[name])
	}
}

// toastPrinter prints each queued message once.
type toastPrinter struct {
	queue *toast.Queue
	shown map[string]struct{}
}

func newToastPrinter(q *toast.Queue) *toastPrinter {
	return &toastPrinter{queue: q, shown: make(map[string]struct{})}
}

// flush writes messages not printed before and forgets the ones that have
// expired.
func (p *toastPrinter) flush(w io.Writer) {
	live := make(map[string]struct{})
	for _, m := range p.queue.Messages() {
		live[m.ID] = struct{}{}
		if _, ok := p.shown[m.ID]; ok {
			continue
		}
		fmt.Fprintln(w, formatToast(m))
	}
	p.shown = live
}

// all writes every live message with its ID.
func (p *toastPrinter) all(w io.Writer) {
	msgs := p.queue.Messages()
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No notifications")
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(w, "%s  %s\n", m.ID, formatToast(m))
		p.shown[m.ID] = struct{}{}
	}
}
