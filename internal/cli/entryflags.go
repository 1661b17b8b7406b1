package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/config"
	"github.com/jurnalguru/jurnal/internal/journal"
)

// entryFlags holds the per-field flags shared by add and edit.
type entryFlags struct {
	Date      string
	Class     string
	Hours     []int
	Material  string
	Obstacle  string
	FollowUp  string
	Notes     string
	Sick      []string
	Permitted []string
	Absent    []string
}

func (ef *entryFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ef.Date, "date", "", "entry date (YYYY-MM-DD, defaults to today)")
	f.StringVar(&ef.Class, "class", "", "class name")
	f.IntSliceVar(&ef.Hours, "hours", nil, "lesson periods taught, comma separated")
	f.StringVar(&ef.Material, "material", "", "material covered")
	f.StringVar(&ef.Obstacle, "obstacle", "", "obstacles encountered")
	f.StringVar(&ef.FollowUp, "follow-up", "", "planned follow-up")
	f.StringVar(&ef.Notes, "notes", "", "additional notes")
	f.StringSliceVar(&ef.Sick, "sick", nil, "students absent due to illness (sakit)")
	f.StringSliceVar(&ef.Permitted, "permitted", nil, "students absent with permission (izin)")
	f.StringSliceVar(&ef.Absent, "absent", nil, "students absent without explanation (alpha)")
}

// attendance builds attendance records from the three name-list flags,
// each name getting a fresh id.
func (ef *entryFlags) attendance() []journal.AttendanceRecord {
	var records []journal.AttendanceRecord
	add := func(names []string, status journal.AttendanceStatus) {
		for _, name := range names {
			records = append(records, journal.AttendanceRecord{
				ID:     journal.NewID(),
				Name:   name,
				Status: status,
			})
		}
	}
	add(ef.Sick, journal.StatusSick)
	add(ef.Permitted, journal.StatusPermitted)
	add(ef.Absent, journal.StatusAbsent)
	return records
}

// attendanceChanged reports whether any attendance flag was set.
func attendanceChanged(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("sick") || cmd.Flags().Changed("permitted") || cmd.Flags().Changed("absent")
}

// apply overwrites the entry fields whose flags were set on the command
// line, leaving everything else untouched. Used by edit.
func (ef *entryFlags) apply(cmd *cobra.Command, e *journal.Entry) {
	f := cmd.Flags()
	if f.Changed("date") {
		e.Date = ef.Date
	}
	if f.Changed("class") {
		e.Class = ef.Class
	}
	if f.Changed("hours") {
		e.Hours = ef.Hours
	}
	if f.Changed("material") {
		e.Material = ef.Material
	}
	if f.Changed("obstacle") {
		e.Obstacle = ef.Obstacle
	}
	if f.Changed("follow-up") {
		e.FollowUp = ef.FollowUp
	}
	if f.Changed("notes") {
		e.Notes = ef.Notes
	}
	if attendanceChanged(cmd) {
		e.Attendance = ef.attendance()
	}
}

// checkClass validates a class name against the configured roster.
// An empty roster allows any class.
func checkClass(cfg config.Config, class string) error {
	if cfg.AllowsClass(class) {
		return nil
	}
	return NewExitError(ExitCommandError,
		fmt.Sprintf("unknown class %q: configured classes are %v", class, cfg.Classes))
}
