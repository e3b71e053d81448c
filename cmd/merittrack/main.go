package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"merittrack/internal/audit"
	"merittrack/internal/catalog"
	"merittrack/internal/notify"
	"merittrack/internal/progress"
	"merittrack/internal/report"
	"merittrack/internal/roster"
	"merittrack/internal/statestore"
	"merittrack/internal/workspace"
)

const appName = "merittrack"

func main() {
	flag.String("workspace", "", "Path to workspace root")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s: merit award progress tracker\n\n", appName)
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [command] [flags]\n\n", appName)
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  init        Initialize a new workspace")
		fmt.Fprintln(os.Stderr, "  req         Manage requirement completion")
		fmt.Fprintln(os.Stderr, "  event       Manage chapter events")
		fmt.Fprintln(os.Stderr, "  meeting     Manage chapter meetings")
		fmt.Fprintln(os.Stderr, "  status      Show derived award progress")
		fmt.Fprintln(os.Stderr, "  attendance  Show per-member participation")
		fmt.Fprintln(os.Stderr, "  pdc         Show PDC credit summary")
		fmt.Fprintln(os.Stderr, "  calendar    Show date-indexed events and meetings")
		fmt.Fprintln(os.Stderr, "  report      Write or diff derived progress reports")
		fmt.Fprintln(os.Stderr, "  help        Show this help")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}

	workspacePath, remaining, err := extractWorkspaceFlag(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	args := remaining
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		flag.Usage()
		return
	}

	switch args[0] {
	case "init":
		err = runInit(args[1:], workspacePath)
	case "req":
		err = runReq(args[1:], workspacePath)
	case "event":
		err = runEvent(args[1:], workspacePath)
	case "meeting":
		err = runMeeting(args[1:], workspacePath)
	case "status":
		err = runStatus(args[1:], workspacePath)
	case "attendance":
		err = runAttendance(args[1:], workspacePath)
	case "pdc":
		err = runPDC(args[1:], workspacePath)
	case "calendar":
		err = runCalendar(args[1:], workspacePath)
	case "report":
		err = runReport(args[1:], workspacePath)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractWorkspaceFlag(args []string) (string, []string, error) {
	var workspacePath string
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--workspace" {
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("--workspace requires a value")
			}
			workspacePath = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--workspace=") {
			workspacePath = strings.TrimPrefix(arg, "--workspace=")
			continue
		}
		remaining = append(remaining, arg)
	}
	return workspacePath, remaining, nil
}

// tracker bundles everything a subcommand needs: the resolved workspace, the
// catalog, the open state store and the loaded state snapshot.
type tracker struct {
	ws      *workspace.Workspace
	catalog *catalog.Catalog
	store   *statestore.Store
	state   *statestore.State
	logger  *audit.Logger
}

func openTracker(workspacePath string) (*tracker, error) {
	if strings.TrimSpace(workspacePath) == "" {
		return nil, fmt.Errorf("--workspace is required")
	}
	ws, err := workspace.Resolve(workspacePath)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(ws.CatalogDir)
	if err != nil {
		return nil, err
	}
	store, err := statestore.Open(ws.StateDBPath)
	if err != nil {
		return nil, err
	}
	state, warnings, err := store.Load()
	if err != nil {
		store.Close()
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "state load:", w)
	}
	return &tracker{
		ws:      ws,
		catalog: cat,
		store:   store,
		state:   state,
		logger:  audit.NewLogger(ws.AuditDBPath),
	}, nil
}

func (t *tracker) close() {
	_ = t.store.Close()
}

// Persistence is fire-and-forget: the in-memory state stays the source of
// truth for the session, a failed write is reported and never blocks.
func (t *tracker) persist(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "save %s failed (continuing): %v\n", what, err)
	}
}

func (t *tracker) logAudit(eventType string, payload map[string]any) {
	if err := t.logger.LogEvent("cli", eventType, payload); err != nil {
		fmt.Fprintln(os.Stderr, "audit log failed:", err)
	}
}

func runInit(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(workspacePath) == "" {
		return fmt.Errorf("--workspace is required")
	}

	root, err := workspace.ResolveRoot(workspacePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create workspace root: %w", err)
	}
	ws, err := workspace.Resolve(root)
	if err != nil {
		return err
	}

	logger := audit.NewLogger(ws.AuditDBPath)
	if err := logger.LogEvent("cli", "workspace_init_started", map[string]any{"workspace": ws.Root}); err != nil {
		fmt.Fprintln(os.Stderr, "audit log failed:", err)
	}
	var finishErr error
	defer func() {
		payload := map[string]any{"workspace": ws.Root}
		if finishErr != nil {
			payload["error"] = finishErr.Error()
		}
		_ = logger.LogEvent("cli", "workspace_init_finished", payload)
	}()

	if err := ws.EnsureDirs(); err != nil {
		finishErr = err
		return finishErr
	}

	store, err := statestore.Open(ws.StateDBPath)
	if err != nil {
		finishErr = err
		return finishErr
	}
	defer store.Close()

	// Seed the three documents so a fresh workspace round-trips cleanly.
	if err := store.SaveCompletion(nil); err != nil {
		finishErr = err
		return finishErr
	}
	if err := store.SaveEvents(nil); err != nil {
		finishErr = err
		return finishErr
	}
	if err := store.SaveMeetings(nil); err != nil {
		finishErr = err
		return finishErr
	}

	fmt.Printf("Initialized workspace at %s\n", ws.Root)
	return nil
}

func runReq(args []string, workspacePath string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		return fmt.Errorf("%s req: missing subcommand (list, toggle, reset)", appName)
	}

	switch args[0] {
	case "list":
		return runReqList(args[1:], workspacePath)
	case "toggle":
		return runReqToggle(args[1:], workspacePath)
	case "reset":
		return runReqReset(args[1:], workspacePath)
	default:
		return fmt.Errorf("%s req: unknown subcommand %q", appName, args[0])
	}
}

func runReqList(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("req list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	if *asJSON {
		type reqStatus struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Completed bool   `json:"completed"`
		}
		type sectionStatus struct {
			Title        string      `json:"title"`
			Prerequisite bool        `json:"prerequisite"`
			Requirements []reqStatus `json:"requirements"`
		}
		var out []sectionStatus
		for _, sec := range t.catalog.Sections {
			ss := sectionStatus{Title: sec.Title, Prerequisite: sec.IsPrerequisite}
			for _, cat := range sec.Categories {
				for _, req := range cat.Requirements {
					ss.Requirements = append(ss.Requirements, reqStatus{
						ID:        req.ID,
						Title:     req.Title,
						Completed: t.state.Completion[req.ID],
					})
				}
			}
			out = append(out, ss)
		}
		return printJSON(out)
	}

	for _, sec := range t.catalog.Sections {
		fmt.Println(sec.Title)
		for _, cat := range sec.Categories {
			if len(sec.Categories) > 1 {
				fmt.Printf("  %s\n", cat.Title)
			}
			for _, req := range cat.Requirements {
				marker := " "
				if t.state.Completion[req.ID] {
					marker = "x"
				}
				fmt.Printf("  [%s] %-7s %s\n", marker, req.ID, req.Title)
			}
		}
		fmt.Println()
	}
	return nil
}

func runReqToggle(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("req toggle", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: %s req toggle <requirement-id>", appName)
	}
	id := fs.Arg(0)

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	req, ok := t.catalog.RequirementLookup(id)
	if !ok {
		return fmt.Errorf("unknown requirement id %q", id)
	}

	before := progress.Compute(t.catalog, t.state.Completion)

	t.state.Completion[id] = !t.state.Completion[id]
	t.persist("completion", t.store.SaveCompletion(t.state.Completion))
	t.logAudit("requirement_toggled", map[string]any{
		"id":        id,
		"completed": t.state.Completion[id],
	})

	after := progress.Compute(t.catalog, t.state.Completion)
	announceProgressChange(before, after)

	status := "incomplete"
	if t.state.Completion[id] {
		status = "complete"
	}
	fmt.Printf("%s %s is now %s\n", req.ID, req.Title, status)
	printLevelLine(after)
	return nil
}

func runReqReset(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("req reset", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	confirm := fs.Bool("confirm", false, "Required to reset all completion state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirm {
		return fmt.Errorf("req reset clears all completion state; pass --confirm to proceed")
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	t.state.Completion = map[string]bool{}
	t.persist("completion", t.store.SaveCompletion(t.state.Completion))
	t.logAudit("completion_reset", map[string]any{})

	fmt.Println("Completion state cleared")
	return nil
}

func runEvent(args []string, workspacePath string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		return fmt.Errorf("%s event: missing subcommand (add, update, remove, list)", appName)
	}

	switch args[0] {
	case "add":
		return runEventAdd(args[1:], workspacePath)
	case "update":
		return runEventUpdate(args[1:], workspacePath)
	case "remove":
		return runEventRemove(args[1:], workspacePath)
	case "list":
		return runEventList(args[1:], workspacePath)
	default:
		return fmt.Errorf("%s event: unknown subcommand %q", appName, args[0])
	}
}

func runEventAdd(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("event add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	title := fs.String("title", "", "Event title")
	date := fs.String("date", "", "Event date (YYYY-MM-DD)")
	attendees := fs.String("attendees", "", "Comma-separated attendee names")
	pdcs := fs.Int("pdcs", 0, "PDC credits offered")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateRecordFlags(*title, *date, *pdcs); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	ev := roster.Event{
		ID:        roster.NewEventID(),
		Title:     strings.TrimSpace(*title),
		Date:      strings.TrimSpace(*date),
		Attendees: splitAttendees(*attendees),
		PDCs:      *pdcs,
	}
	t.state.Events = roster.AddEvent(t.state.Events, ev)
	t.persist("events", t.store.SaveEvents(t.state.Events))
	t.logAudit("event_added", map[string]any{"id": ev.ID, "title": ev.Title, "date": ev.Date})

	fmt.Printf("Added event %s (%s)\n", ev.ID, ev.Title)
	return nil
}

func runEventUpdate(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("event update", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.String("id", "", "Event id")
	title := fs.String("title", "", "Event title")
	date := fs.String("date", "", "Event date (YYYY-MM-DD)")
	attendees := fs.String("attendees", "", "Comma-separated attendee names")
	pdcs := fs.Int("pdcs", 0, "PDC credits offered")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return fmt.Errorf("--id is required")
	}
	if err := validateRecordFlags(*title, *date, *pdcs); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	ev := roster.Event{
		ID:        strings.TrimSpace(*id),
		Title:     strings.TrimSpace(*title),
		Date:      strings.TrimSpace(*date),
		Attendees: splitAttendees(*attendees),
		PDCs:      *pdcs,
	}
	updated, found := roster.UpdateEvent(t.state.Events, ev)
	if !found {
		return fmt.Errorf("event %s not found", ev.ID)
	}
	t.state.Events = updated
	t.persist("events", t.store.SaveEvents(t.state.Events))
	t.logAudit("event_updated", map[string]any{"id": ev.ID, "title": ev.Title, "date": ev.Date})

	fmt.Printf("Updated event %s\n", ev.ID)
	return nil
}

func runEventRemove(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("event remove", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.String("id", "", "Event id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return fmt.Errorf("--id is required")
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	updated, found := roster.RemoveEvent(t.state.Events, strings.TrimSpace(*id))
	if !found {
		return fmt.Errorf("event %s not found", *id)
	}
	t.state.Events = updated
	t.persist("events", t.store.SaveEvents(t.state.Events))
	t.logAudit("event_removed", map[string]any{"id": strings.TrimSpace(*id)})

	fmt.Printf("Removed event %s\n", strings.TrimSpace(*id))
	return nil
}

func runEventList(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("event list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	if *asJSON {
		return printJSON(t.state.Events)
	}
	if len(t.state.Events) == 0 {
		fmt.Println("No events logged")
		return nil
	}
	for _, ev := range t.state.Events {
		fmt.Printf("%s  %s  %s  (%d attendees, %d PDCs)\n", ev.Date, ev.ID, ev.Title, len(ev.Attendees), ev.PDCs)
	}
	return nil
}

func runMeeting(args []string, workspacePath string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		return fmt.Errorf("%s meeting: missing subcommand (add, update, remove, list)", appName)
	}

	switch args[0] {
	case "add":
		return runMeetingAdd(args[1:], workspacePath)
	case "update":
		return runMeetingUpdate(args[1:], workspacePath)
	case "remove":
		return runMeetingRemove(args[1:], workspacePath)
	case "list":
		return runMeetingList(args[1:], workspacePath)
	default:
		return fmt.Errorf("%s meeting: unknown subcommand %q", appName, args[0])
	}
}

func runMeetingAdd(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("meeting add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	title := fs.String("title", "", "Meeting title")
	date := fs.String("date", "", "Meeting date (YYYY-MM-DD)")
	attendees := fs.String("attendees", "", "Comma-separated attendee names")
	notes := fs.String("notes", "", "Free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateRecordFlags(*title, *date, 0); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	m := roster.Meeting{
		ID:        roster.NewMeetingID(),
		Title:     strings.TrimSpace(*title),
		Date:      strings.TrimSpace(*date),
		Attendees: splitAttendees(*attendees),
		Notes:     *notes,
	}
	t.state.Meetings = roster.AddMeeting(t.state.Meetings, m)
	t.persist("meetings", t.store.SaveMeetings(t.state.Meetings))
	t.logAudit("meeting_added", map[string]any{"id": m.ID, "title": m.Title, "date": m.Date})

	fmt.Printf("Added meeting %s (%s)\n", m.ID, m.Title)
	return nil
}

func runMeetingUpdate(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("meeting update", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.String("id", "", "Meeting id")
	title := fs.String("title", "", "Meeting title")
	date := fs.String("date", "", "Meeting date (YYYY-MM-DD)")
	attendees := fs.String("attendees", "", "Comma-separated attendee names")
	notes := fs.String("notes", "", "Free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return fmt.Errorf("--id is required")
	}
	if err := validateRecordFlags(*title, *date, 0); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	m := roster.Meeting{
		ID:        strings.TrimSpace(*id),
		Title:     strings.TrimSpace(*title),
		Date:      strings.TrimSpace(*date),
		Attendees: splitAttendees(*attendees),
		Notes:     *notes,
	}
	updated, found := roster.UpdateMeeting(t.state.Meetings, m)
	if !found {
		return fmt.Errorf("meeting %s not found", m.ID)
	}
	t.state.Meetings = updated
	t.persist("meetings", t.store.SaveMeetings(t.state.Meetings))
	t.logAudit("meeting_updated", map[string]any{"id": m.ID, "title": m.Title, "date": m.Date})

	fmt.Printf("Updated meeting %s\n", m.ID)
	return nil
}

func runMeetingRemove(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("meeting remove", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.String("id", "", "Meeting id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return fmt.Errorf("--id is required")
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	updated, found := roster.RemoveMeeting(t.state.Meetings, strings.TrimSpace(*id))
	if !found {
		return fmt.Errorf("meeting %s not found", *id)
	}
	t.state.Meetings = updated
	t.persist("meetings", t.store.SaveMeetings(t.state.Meetings))
	t.logAudit("meeting_removed", map[string]any{"id": strings.TrimSpace(*id)})

	fmt.Printf("Removed meeting %s\n", strings.TrimSpace(*id))
	return nil
}

func runMeetingList(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("meeting list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	if *asJSON {
		return printJSON(t.state.Meetings)
	}
	if len(t.state.Meetings) == 0 {
		fmt.Println("No meetings logged")
		return nil
	}
	for _, m := range t.state.Meetings {
		fmt.Printf("%s  %s  %s  (%d attendees)\n", m.Date, m.ID, m.Title, len(m.Attendees))
	}
	return nil
}

func runStatus(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	summary := progress.Compute(t.catalog, t.state.Completion)
	if *asJSON {
		return printJSON(summary)
	}

	fmt.Printf("Prerequisites: %d/%d", summary.CompletedPrerequisites, summary.TotalPrerequisites)
	if summary.PrerequisitesMet() {
		fmt.Print("  (met)")
	}
	fmt.Println()
	fmt.Printf("Activities:    %d/%d\n", summary.CompletedActivities, summary.TotalActivities)
	for _, cp := range summary.CategoryProgress {
		fmt.Printf("  %-20s %d/%d\n", cp.Name, cp.Completed, cp.Total)
	}
	printLevelLine(summary)
	return nil
}

func runAttendance(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("attendance", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	sortKey := fs.String("sort", string(roster.DefaultSortKey), "Sort key: name, totalCount, eventCount, meetingCount")
	sortDir := fs.String("dir", string(roster.DefaultSortDirection), "Sort direction: asc or desc")
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	key := roster.SortKey(*sortKey)
	if !key.IsValid() {
		return fmt.Errorf("invalid sort key %q", *sortKey)
	}
	dir := roster.SortDirection(*sortDir)
	if !dir.IsValid() {
		return fmt.Errorf("invalid sort direction %q", *sortDir)
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	records := roster.AggregateAttendance(t.state.Events, t.state.Meetings)
	records = roster.SortAttendance(records, key, dir)

	if *asJSON {
		return printJSON(records)
	}
	if len(records) == 0 {
		fmt.Println("No attendance data")
		return nil
	}
	fmt.Printf("%-30s %6s %7s %9s\n", "Member", "Total", "Events", "Meetings")
	for _, rec := range records {
		fmt.Printf("%-30s %6d %7d %9d\n", rec.Name, rec.TotalCount, rec.EventCount, rec.MeetingCount)
	}
	return nil
}

func runPDC(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("pdc", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	summary := roster.SummarizePDCs(t.state.Events)
	if *asJSON {
		return printJSON(summary)
	}

	fmt.Printf("Events offering PDCs: %d\n", summary.EventsOffering)
	fmt.Printf("Total PDCs offered:   %d\n", summary.TotalPDCs)
	for _, line := range summary.PerEvent {
		fmt.Printf("  %-40s %d\n", line.Title, line.PDCs)
	}
	return nil
}

func runCalendar(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("calendar", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	month := fs.String("month", "", "Limit to a month (YYYY-MM)")
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *month != "" {
		if _, err := time.Parse("2006-01", *month); err != nil {
			return fmt.Errorf("invalid --month %q: expected YYYY-MM", *month)
		}
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	items := roster.ProjectCalendar(t.state.Events, t.state.Meetings)
	items = roster.ItemsForMonth(items, *month)

	if *asJSON {
		return printJSON(items)
	}
	if len(items) == 0 {
		fmt.Println("No calendar items")
		return nil
	}
	lastDate := ""
	for _, item := range items {
		if item.Date != lastDate {
			fmt.Println(item.Date)
			lastDate = item.Date
		}
		fmt.Printf("  [%s] %s\n", item.Kind, item.Title)
	}
	return nil
}

func runReport(args []string, workspacePath string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		return fmt.Errorf("%s report: missing subcommand (write, diff)", appName)
	}

	switch args[0] {
	case "write":
		return runReportWrite(args[1:], workspacePath)
	case "diff":
		return runReportDiff(args[1:], workspacePath)
	default:
		return fmt.Errorf("%s report: unknown subcommand %q", appName, args[0])
	}
}

func runReportWrite(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("report write", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asOf := fs.String("as-of", "", "Report date (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	asOfDate := time.Now().UTC()
	if *asOf != "" {
		parsed, err := time.Parse("2006-01-02", *asOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", *asOf)
		}
		asOfDate = parsed
	}

	t, err := openTracker(workspacePath)
	if err != nil {
		return err
	}
	defer t.close()

	if err := t.ws.EnsureDirs(); err != nil {
		return err
	}

	records := roster.AggregateAttendance(t.state.Events, t.state.Meetings)
	records = roster.SortAttendance(records, roster.DefaultSortKey, roster.DefaultSortDirection)

	rep := report.Report{
		SchemaVersion: report.ReportSchemaVersion,
		AsOf:          asOfDate.Format("2006-01-02"),
		Progress:      progress.Compute(t.catalog, t.state.Completion),
		Attendance:    records,
		PDCs:          roster.SummarizePDCs(t.state.Events),
	}
	path := report.ReportPathForDate(t.ws.ReportsDir, asOfDate)
	if err := report.WriteReport(path, rep); err != nil {
		return err
	}
	t.logAudit("report_written", map[string]any{"path": path, "as_of": rep.AsOf})

	fmt.Printf("Wrote report %s\n", path)
	return nil
}

func runReportDiff(args []string, workspacePath string) error {
	fs := flag.NewFlagSet("report diff", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(workspacePath) == "" {
		return fmt.Errorf("--workspace is required")
	}

	ws, err := workspace.Resolve(workspacePath)
	if err != nil {
		return err
	}
	paths, err := report.LatestReportPaths(ws.ReportsDir, 2)
	if err != nil {
		return err
	}
	if len(paths) < 2 {
		return fmt.Errorf("need at least two reports to diff, found %d", len(paths))
	}

	diff, err := report.DiffReports(paths[0], paths[1])
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Println("No changes between latest reports")
		return nil
	}
	fmt.Print(diff)
	return nil
}

// announceProgressChange sends a notification when a mutation crosses an
// award-level boundary.
func announceProgressChange(before, after progress.Summary) {
	notifier := &notify.Notifier{Enabled: true}
	switch {
	case before.CurrentLevel == nil && after.CurrentLevel != nil:
		title, msg := notify.FormatLevelReached(after.CurrentLevel.Name, after.CompletedActivities)
		_ = notifier.Send(title, msg)
	case before.CurrentLevel != nil && after.CurrentLevel == nil:
		title, msg := notify.FormatLevelLost(before.CurrentLevel.Name, after.CompletedActivities)
		_ = notifier.Send(title, msg)
	case before.CurrentLevel != nil && after.CurrentLevel != nil && before.CurrentLevel.Name != after.CurrentLevel.Name:
		title, msg := notify.FormatLevelReached(after.CurrentLevel.Name, after.CompletedActivities)
		_ = notifier.Send(title, msg)
	case !before.PrerequisitesMet() && after.PrerequisitesMet():
		title, msg := notify.FormatPrerequisitesMet(after.TotalPrerequisites)
		_ = notifier.Send(title, msg)
	}
}

func printLevelLine(summary progress.Summary) {
	if summary.CurrentLevel != nil {
		fmt.Printf("Award level:   %s\n", summary.CurrentLevel.Name)
		return
	}
	if !summary.PrerequisitesMet() {
		fmt.Println("Award level:   none (prerequisites not met)")
		return
	}
	fmt.Println("Award level:   none")
}

func validateRecordFlags(title, date string, pdcs int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("--title is required")
	}
	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("--date is required")
	}
	if _, err := roster.ParseDate(date); err != nil {
		return err
	}
	if pdcs < 0 {
		return fmt.Errorf("--pdcs must be non-negative")
	}
	return nil
}

func splitAttendees(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
