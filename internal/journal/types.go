package journal

// AttendanceStatus marks why a student was not present.
//
// The single-letter codes are the wire format of the backup document and
// match the status labels used on printed journals (Sakit, Izin, Alpha).
type AttendanceStatus string

const (
	// StatusSick (S) - absent due to illness.
	StatusSick AttendanceStatus = "S"
	// StatusPermitted (I) - absent with permission (izin).
	StatusPermitted AttendanceStatus = "I"
	// StatusAbsent (A) - absent without explanation (alpha).
	StatusAbsent AttendanceStatus = "A"
)

// Valid reports whether the status is one of the three known codes.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusSick, StatusPermitted, StatusAbsent:
		return true
	}
	return false
}

// AttendanceRecord names one student missing from a session.
// An entry with zero attendance records means every student was present.
type AttendanceRecord struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Status AttendanceStatus `json:"status"`
}

// Entry is one journal record of a single day's teaching activity.
//
// Date is an ISO 8601 calendar date (YYYY-MM-DD, no time component).
// Lexicographic comparison of the string form is chronological order, and
// all date ordering in this package relies on that.
//
// Hours lists the lesson periods taught, ascending and duplicate-free.
// Material is the only required free-text field.
type Entry struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	Class      string             `json:"class"`
	Hours      []int              `json:"hours"`
	Material   string             `json:"material"`
	Obstacle   string             `json:"obstacle"`
	FollowUp   string             `json:"followUp"`
	Attendance []AttendanceRecord `json:"attendance"`
	Notes      string             `json:"notes"`
}

// TeacherInfo is the singleton teacher profile.
// NIP (employee id) may be blank.
type TeacherInfo struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	NIP     string `json:"nip"`
}

// SchoolInfo is the singleton school profile used on letterheads and
// signature blocks. PrincipalNIP may be blank.
type SchoolInfo struct {
	SchoolName    string `json:"schoolName"`
	AcademicYear  string `json:"academicYear"`
	PrincipalName string `json:"principalName"`
	PrincipalNIP  string `json:"principalNip"`
	PrintLocation string `json:"printLocation"`
}

// Backup is the sole interchange format for backup and restore: a
// complete, lossless snapshot of every entry plus both singleton
// profiles. The JSON tags are the wire format and must not change.
type Backup struct {
	Entries     []Entry     `json:"entries"`
	TeacherInfo TeacherInfo `json:"teacherInfo"`
	SchoolInfo  SchoolInfo  `json:"schoolInfo"`
}
