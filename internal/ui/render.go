package ui

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/tada/internal/model"
)

// EmptyMessage is shown by list when there is nothing to show.
const EmptyMessage = "No todos yet! Add some using `todo add <description>`"

// ListOptions tune list rendering.
type ListOptions struct {
	Group bool // pending first, then done
	IDs   bool // append the short id
	Panel bool // frame with a stats header
}

// Mark returns the status mark for an item.
func Mark(it model.Item) string {
	if it.Completed {
		return C(current.Success, current.MarkDone)
	}
	return C(current.Pending, current.MarkPending)
}

// ItemLine renders `<position> [<mark>] <description> (<created>)`.
func ItemLine(pos int, it model.Item, showID bool) string {
	line := fmt.Sprintf("%d [%s] %s (%s)", pos, Mark(it), it.Description,
		C(current.Date, it.CreatedAt.Local().Format(model.TimeLayout)))
	if showID && it.ID != "" {
		line += " " + C(current.Muted, it.ShortID())
	}
	return line
}

// ListLines renders every item; positions always refer to the stored order.
func ListLines(items []model.Item, opt ListOptions) []string {
	if !opt.Group {
		out := make([]string, 0, len(items))
		for i, it := range items {
			out = append(out, ItemLine(i+1, it, opt.IDs))
		}
		return out
	}

	var pend, done []string
	for i, it := range items {
		if it.Completed {
			done = append(done, ItemLine(i+1, it, opt.IDs))
		} else {
			pend = append(pend, ItemLine(i+1, it, opt.IDs))
		}
	}
	var lines []string
	lines = append(lines, C(current.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(current.Muted, "(none)"))
	} else {
		lines = append(lines, pend...)
	}
	lines = append(lines, "")
	lines = append(lines, C(current.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, C(current.Muted, "(none)"))
	} else {
		lines = append(lines, done...)
	}
	return lines
}

// RenderList writes the list (or the empty message) to w.
func RenderList(w io.Writer, items []model.Item, opt ListOptions) {
	if len(items) == 0 {
		fmt.Fprintln(w, C(current.Pending, EmptyMessage))
		return
	}
	lines := ListLines(items, opt)
	if !opt.Panel {
		for _, ln := range lines {
			fmt.Fprintln(w, ln)
		}
		return
	}

	var d, p int
	for _, it := range items {
		if it.Completed {
			d++
		} else {
			p++
		}
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(current.Title, "Todos"),
		C(current.Success, current.MarkDone), d,
		C(current.Pending, current.MarkPending), p,
		C(current.Accent, "Total"), len(items),
	)
	framed := []string{header, C(current.Muted, ProgressBar(d, d+p, 28)), ""}
	framed = append(framed, lines...)
	Panel(w, framed)
}
