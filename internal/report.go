package internal

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ReportPrinter writes human-readable scan output.
type ReportPrinter struct {
	w      io.Writer
	ok     *color.Color
	bad    *color.Color
	warn   *color.Color
	header *color.Color
}

// NewReportPrinter returns a printer writing to w. noColor strips ANSI codes.
func NewReportPrinter(w io.Writer, noColor bool) *ReportPrinter {
	p := &ReportPrinter{
		w:      w,
		ok:     color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
		header: color.New(color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.ok, p.bad, p.warn, p.header} {
			c.DisableColor()
		}
	}
	return p
}

// PrintQueues writes one block per queue in scan order.
func (p *ReportPrinter) PrintQueues(queues []QueueStatus) {
	for _, q := range queues {
		if !q.Active() {
			p.bad.Fprintf(p.w, "%s: %s\n\n", q.QueueName, q.Message)
			continue
		}
		p.ok.Fprintf(p.w, "%s: %d messages\n", q.QueueName, q.MessagesVisible)
		fmt.Fprintf(p.w, "   - Not visible: %d\n", q.MessagesNotVisible)
		fmt.Fprintf(p.w, "   - Delayed: %d\n", q.MessagesDelayed)
		fmt.Fprintf(p.w, "   - Created: %s\n", q.CreatedAt)
		fmt.Fprintf(p.w, "   - Modified: %s\n\n", q.ModifiedAt)
	}
}

// PrintReport writes the fleet summary followed by the active queues and the
// queues with issues.
func (p *ReportPrinter) PrintReport(queues []QueueStatus, summary Summary) {
	p.header.Fprintln(p.w, "DLQ Status Report")
	p.header.Fprintln(p.w, "=================")
	fmt.Fprintln(p.w)

	p.ok.Fprintf(p.w, "Active Queues: %d\n", summary.ActiveQueues)
	p.bad.Fprintf(p.w, "Error/Not Found: %d\n", summary.ErrorQueues)
	fmt.Fprintf(p.w, "Total messages: %d (not visible %d, delayed %d)\n\n",
		summary.TotalMessages, summary.TotalNotVisible, summary.TotalDelayed)

	if summary.ActiveQueues > 0 {
		fmt.Fprintln(p.w, "Active DLQs:")
		for _, q := range queues {
			if !q.Active() {
				continue
			}
			fmt.Fprintf(p.w, "  - %s: %d messages ", q.QueueName, q.MessagesVisible)
			if q.HasMessages() {
				p.warn.Fprintln(p.w, "HAS MESSAGES")
			} else {
				p.ok.Fprintln(p.w, "EMPTY")
			}
		}
	}

	if summary.ErrorQueues > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, "Queues with Issues:")
		for _, q := range queues {
			if q.Active() {
				continue
			}
			fmt.Fprintf(p.w, "  - %s: %s\n", q.QueueName, q.Message)
		}
	}
}

// PrintSnapshotLine writes a one-line digest of a received snapshot.
func (p *ReportPrinter) PrintSnapshotLine(snapshot FleetSnapshot) {
	s := snapshot.Summary
	line := fmt.Sprintf("[%s] queues=%d active=%d errors=%d with_messages=%d messages=%d",
		snapshot.CapturedAt.Format("2006-01-02 15:04:05 MST"),
		s.TotalQueues, s.ActiveQueues, s.ErrorQueues, s.QueuesWithMessages, s.TotalMessages)
	if s.QueuesWithMessages > 0 {
		p.warn.Fprintln(p.w, line)
		return
	}
	p.ok.Fprintln(p.w, line)
}
