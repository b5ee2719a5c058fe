package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/profile"
	"github.com/3mero/anilog/pkg/reminder"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" title")
	default:
		_, _ = c.Println(" titles")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Bucket renders one status bucket as a table.
func (pp *PrettyPrint) Bucket(status media.Status, entries []media.Entry) {
	pp.TitleWithCount(string(status), len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 48
	if pp.ShowID {
		table.AddRow("ID", "TITLE", "PROGRESS", "UPDATED")
	} else {
		table.AddRow("TITLE", "PROGRESS", "UPDATED")
	}
	for _, e := range entries {
		progress := fmt.Sprintf("%d/?", e.Progress)
		if e.Total > 0 {
			progress = fmt.Sprintf("%d/%d", e.Progress, e.Total)
		}
		if e.Completed() {
			progress += " ✔"
		}
		updated := ""
		if !e.Updated.IsZero() {
			updated = e.Updated.Local().Format("2006-01-02")
		}
		if pp.ShowID {
			table.AddRow(e.CanonicalID(), e.Title, progress, updated)
		} else {
			table.AddRow(e.Title, progress, updated)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// Reminders renders the reminder list with each next occurrence.
func (pp *PrettyPrint) Reminders(reminders []*reminder.Reminder, now time.Time) {
	pp.TitleWithCount("reminders", len(reminders))
	if len(reminders) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 48
	table.AddRow("ID", "TITLE", "NEXT", "REPEATS", "NOTES")
	for _, r := range reminders {
		next := reminder.NextOccurrence(r, now)
		when := ""
		if !next.IsZero() {
			when = next.Local().Format("Mon Jan 2 15:04")
		}
		table.AddRow(shortID(r.ID), r.Title, when, repeatLabel(r), r.Notes)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// Week renders the weekday grouping, Sunday first.
func (pp *PrettyPrint) Week(week reminder.Week) {
	for d := 0; d < 7; d++ {
		pp.Title(time.Weekday(d).String())
		if len(week[d]) == 0 {
			pp.none()
			continue
		}
		t := color.New()
		for _, r := range week[d] {
			_, _ = t.Printf("  %s  %s\n", r.Start.Local().Format("15:04"), r.Title)
		}
		fmt.Println("")
	}
}

// Notifications renders the feed, unseen items in bold.
func (pp *PrettyPrint) Notifications(items []notify.Item) {
	summary := notify.Aggregate(items)
	pp.TitleWithCount("notifications", summary.Total)
	if len(items) == 0 {
		pp.none()
		return
	}
	unseen := color.New(color.Bold)
	seen := color.New(color.Faint)
	for _, i := range items {
		line := fmt.Sprintf("  [%s] %s", i.Category, i.Title)
		if pp.ShowID {
			line = fmt.Sprintf("  %s [%s] %s", shortID(i.ID), i.Category, i.Title)
		}
		if i.Seen {
			_, _ = seen.Println(line)
		} else {
			_, _ = unseen.Println(line)
		}
	}
	if summary.Priority != notify.CategoryNone {
		f := color.New(color.FgHiYellow)
		_, _ = f.Printf("\n  %d unseen, priority: %s\n", summary.Total, summary.Priority)
	}
	fmt.Println("")
}

// News renders a pinned or favorites list.
func (pp *PrettyPrint) News(title string, refs []profile.NewsRef) {
	pp.TitleWithCount(title, len(refs))
	if len(refs) == 0 {
		pp.none()
		return
	}
	t := color.New()
	f := color.New(color.Faint)
	for _, r := range refs {
		_, _ = t.Printf("  %s", r.Title)
		_, _ = f.Printf("  %s\n", r.ID)
	}
	fmt.Println("")
}

// Sections renders the home layout in order.
func (pp *PrettyPrint) Sections(sections []profile.Section) {
	pp.Title("layout")
	t := color.New()
	f := color.New(color.Faint)
	for i, s := range sections {
		name := s.ID
		if s.Title != "" {
			name = fmt.Sprintf("%s (%s)", s.Title, s.ID)
		}
		if s.Hidden {
			_, _ = f.Printf("  %d. %s (hidden)\n", i+1, name)
		} else {
			_, _ = t.Printf("  %d. %s\n", i+1, name)
		}
	}
	fmt.Println("")
}

func repeatLabel(r *reminder.Reminder) string {
	days := reminder.NormalizeDays(r.RepeatOnDays)
	if len(days) == 0 {
		return "once"
	}
	out := ""
	for i, d := range days {
		if i > 0 {
			out += ","
		}
		out += time.Weekday(d).String()[:3]
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
