package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/tablewatch/internal/api/client"
	"github.com/donaldgifford/tablewatch/pkg/slottime"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

const timestampLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRestaurantsTable(w io.Writer, restaurants []domain.Restaurant) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tNEIGHBORHOOD\tCUISINE\tPRIORITY\tMONITORED\tPLATFORMS\n")
	for i := range restaurants {
		r := &restaurants[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%s\n",
			r.ID,
			truncate(r.Name, 30),
			dash(r.Neighborhood),
			dash(r.Cuisine),
			r.Priority,
			r.MonitorEnabled,
			platforms(r),
		)
	}
	return tw.finish()
}

func printRestaurantDetail(w io.Writer, r *domain.Restaurant) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Name:\t%s\n", r.Name)
	tw.writef("Neighborhood:\t%s\n", dash(r.Neighborhood))
	tw.writef("Cuisine:\t%s\n", dash(r.Cuisine))
	tw.writef("Priority:\t%s\n", r.Priority)
	tw.writef("Visited:\t%v\n", r.Visited)
	tw.writef("Monitored:\t%v\n", r.MonitorEnabled)
	tw.writef("Primary:\t%s\n", r.Primary)
	tw.writef("Secondary:\t%s\n", r.Secondary)
	if r.BookingURLs.Resy != "" {
		tw.writef("Resy URL:\t%s\n", r.BookingURLs.Resy)
	}
	if r.BookingURLs.OpenTable != "" {
		tw.writef("OpenTable URL:\t%s\n", r.BookingURLs.OpenTable)
	}
	if r.Notes != "" {
		tw.writef("Notes:\t%s\n", r.Notes)
	}
	return tw.finish()
}

func printWatchTable(w io.Writer, watches []domain.WatchTarget) error {
	tw := newTabWriter(w)
	tw.writef("ID\tRESTAURANT\tPARTY\tDATES\tTIMES\tNOTIFY\tACTIVE\tLAST CHECKED\n")
	for i := range watches {
		wt := &watches[i]
		tw.writef("%s\t%s\t%d\t%s\t%s\t%s\t%v\t%s\n",
			wt.ID,
			wt.RestaurantID,
			wt.PartySize,
			dateRange(wt),
			preferredTimes(wt),
			recipients(wt),
			wt.Active,
			timestamp(wt.LastChecked),
		)
	}
	return tw.finish()
}

func printWatchDetail(w io.Writer, wt *domain.WatchTarget) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", wt.ID)
	tw.writef("Restaurant:\t%s\n", wt.RestaurantID)
	tw.writef("Party Size:\t%d\n", wt.PartySize)
	tw.writef("Dates:\t%s\n", dateRange(wt))
	tw.writef("Times:\t%s\n", preferredTimes(wt))
	tw.writef("Email:\t%s\n", dash(wt.NotifyEmail))
	tw.writef("SMS:\t%s\n", dash(wt.NotifySMS))
	tw.writef("Active:\t%v\n", wt.Active)
	tw.writef("Last Checked:\t%s\n", timestamp(wt.LastChecked))
	return tw.finish()
}

func printChecksTable(w io.Writer, checks []domain.CheckRecord) error {
	tw := newTabWriter(w)
	tw.writef("CHECKED\tWATCH\tSLOTS\tFIRST SLOT\tDISPATCH\n")
	for i := range checks {
		c := &checks[i]
		first := "-"
		if len(c.Slots) > 0 {
			first = slottime.FormatDateReadable(c.Slots[0].Date) + " " + slottime.Format12h(c.Slots[0].Time)
		}
		tw.writef("%s\t%s\t%d\t%s\t%s\n",
			c.CheckedAt.Format(timestampLayout),
			c.WatchID,
			len(c.Slots),
			first,
			c.DispatchStatus,
		)
	}
	return tw.finish()
}

func printNotificationsTable(w io.Writer, notes []domain.NotificationRecord) error {
	tw := newTabWriter(w)
	tw.writef("SENT\tRESTAURANT\tCHANNEL\tRECIPIENT\tRESULT\n")
	for i := range notes {
		n := &notes[i]
		result := "ok"
		if !n.Success {
			result = "failed: " + truncate(n.ErrorText, 40)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			n.SentAt.Format(timestampLayout),
			n.RestaurantID,
			n.Channel,
			dash(n.Recipient),
			result,
		)
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timestampLayout),
			timestamp(r.CompletedAt),
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printJobStatusTable(w io.Writer, jobs []domain.JobStatus) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tLAST STATUS\tLAST STARTED\tNEXT RUN\tRUNNING\n")
	for i := range jobs {
		j := &jobs[i]
		status, started := "never", "-"
		if j.LastRun != nil {
			status = j.LastRun.Status
			started = j.LastRun.StartedAt.Format(timestampLayout)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			j.Name,
			status,
			started,
			timestamp(j.NextRunAt),
			yesNo(j.Running),
		)
	}
	return tw.finish()
}

func printSystemState(w io.Writer, s *domain.SystemState) error {
	tw := newTabWriter(w)
	tw.writef("Restaurants:\t%d (%d monitored, %d visited)\n",
		s.Restaurants, s.MonitoredRestaurants, s.VisitedRestaurants)
	tw.writef("Watches:\t%d (%d active)\n", s.Watches, s.ActiveWatches)
	tw.writef("Checks (24h):\t%d\n", s.Checks24h)
	tw.writef("Notifications (24h):\t%d\n", s.Notifications24h)
	tw.writef("Failed Dispatches (24h):\t%d\n", s.FailedDispatches24h)
	tw.writef("Last Sweep:\t%s\n", timestamp(s.LastSweepAt))
	tw.writef("Next Sweep:\t%s\n", timestamp(s.NextSweepAt))
	tw.writef("Sweep Running:\t%s\n", yesNo(s.SweepInProgress))
	if len(s.Neighborhoods) > 0 {
		tw.writef("Neighborhoods:\t%s\n", strings.Join(s.Neighborhoods, ", "))
	}
	if len(s.CuisineTypes) > 0 {
		tw.writef("Cuisines:\t%s\n", strings.Join(s.CuisineTypes, ", "))
	}
	return tw.finish()
}

func printSweepResult(w io.Writer, res *apiclient.SweepResult) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", res.Status)
	tw.writef("Targets:\t%d\n", res.Targets)
	tw.writef("New Slots:\t%d\n", res.NewSlots)
	tw.writef("Errors:\t%d\n", res.Errors)

	names := make([]string, 0, len(res.Outcomes))
	for name := range res.Outcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tw.writef("  %s:\t%d\n", name, res.Outcomes[name])
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func platforms(r *domain.Restaurant) string {
	targets := r.Targets()
	if len(targets) == 0 {
		return "-"
	}
	kinds := make([]string, len(targets))
	for i, t := range targets {
		kinds[i] = string(t.Kind)
	}
	return strings.Join(kinds, ",")
}

func dateRange(w *domain.WatchTarget) string {
	if !w.HasDateRange() {
		return "rolling"
	}
	if w.DateRangeStart == w.DateRangeEnd {
		return w.DateRangeStart
	}
	return w.DateRangeStart + ".." + w.DateRangeEnd
}

func preferredTimes(w *domain.WatchTarget) string {
	if len(w.PreferredTimes) == 0 {
		return "any"
	}
	return strings.Join(w.PreferredTimes, ",")
}

func recipients(w *domain.WatchTarget) string {
	var out []string
	if w.NotifyEmail != "" {
		out = append(out, "email")
	}
	if w.NotifySMS != "" {
		out = append(out, "sms")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func timestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timestampLayout)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
