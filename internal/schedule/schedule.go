// Package schedule loads resource/project intervals from CSV files.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gerrors "github.com/zhubert/gantt/internal/errors"
	"github.com/zhubert/gantt/internal/logger"
)

// Entry is one scheduled interval. Start <= End is not enforced.
type Entry struct {
	Resource string
	Project  string
	Start    time.Time
	End      time.Time
}

// Days returns the whole number of days between Start and End, rounded
// toward negative infinity like a calendar difference.
func (e Entry) Days() int {
	d := e.End.Sub(e.Start)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// Stats summarizes one parse.
type Stats struct {
	Total   int // data rows read, header excluded
	Kept    int
	Dropped int // rows with an unparseable start or end
}

// columnCount is the number of leading fields each record must carry:
// resource, project, start, end.
const columnCount = 4

// Parse reads schedule rows from r. See ParseWithStats.
func Parse(r io.Reader, layouts []string) ([]Entry, error) {
	entries, _, err := ParseWithStats(r, layouts)
	return entries, err
}

// ParseWithStats reads a header line followed by resource,project,start,end
// records. Rows whose start or end cannot be parsed with any of layouts are
// dropped, and so are rows with fewer than four fields; a nil layouts slice
// uses DefaultLayouts. CSV syntax errors such as bad quoting fail the whole
// read.
func ParseWithStats(r io.Reader, layouts []string) ([]Entry, Stats, error) {
	if layouts == nil {
		layouts = DefaultLayouts
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var stats Stats
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return []Entry{}, stats, nil
		}
		return nil, stats, fmt.Errorf("error reading CSV header: %w", err)
	}

	entries := []Entry{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.StartLine
			}
			return nil, stats, gerrors.MalformedCSV(line, err)
		}

		line, _ := reader.FieldPos(0)
		stats.Total++
		if len(record) < columnCount {
			// Missing columns read as empty, which no date layout accepts.
			stats.Dropped++
			continue
		}

		entry, err := parseRow(line, record, layouts)
		if err != nil {
			stats.Dropped++
			continue
		}
		entries = append(entries, entry)
	}
	stats.Kept = len(entries)

	return entries, stats, nil
}

func parseRow(line int, record []string, layouts []string) (Entry, error) {
	start, ok := ParseDate(record[2], layouts)
	if !ok {
		return Entry{}, gerrors.RowParse(line, "start", record[2])
	}
	end, ok := ParseDate(record[3], layouts)
	if !ok {
		return Entry{}, gerrors.RowParse(line, "end", record[3])
	}

	return Entry{
		Resource: strings.TrimSpace(record[0]),
		Project:  strings.TrimSpace(record[1]),
		Start:    start,
		End:      end,
	}, nil
}

// Load reads the schedule at path with DefaultLayouts.
func Load(path string) []Entry {
	return LoadWithLayouts(path, nil)
}

// LoadWithLayouts reads the schedule at path. A file that cannot be opened
// or read is reported on stdout and in the log, and yields an empty slice;
// callers only ever see an empty schedule, never an error.
func LoadWithLayouts(path string, layouts []string) []Entry {
	entries, _ := LoadWithStats(path, layouts)
	return entries
}

// LoadWithStats is LoadWithLayouts that also reports how many rows were
// read and dropped. Stats are zero when the file could not be read.
func LoadWithStats(path string, layouts []string) ([]Entry, Stats) {
	log := logger.WithComponent("schedule")

	entries, stats, err := loadFile(path, layouts)
	if err != nil {
		log.Error("load failed", "path", path, "error", err)
		fmt.Printf("Error reading file: %v\n", err)
		return []Entry{}, Stats{}
	}

	log.Debug("schedule parsed", "path", path, "rows", stats.Total, "kept", stats.Kept, "dropped", stats.Dropped)
	return entries, stats
}

func loadFile(path string, layouts []string) ([]Entry, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, gerrors.LoadFailed(path, err)
	}
	defer f.Close()

	entries, stats, err := ParseWithStats(f, layouts)
	if err != nil {
		return nil, stats, gerrors.LoadFailed(path, err)
	}
	return entries, stats, nil
}

// Projects returns the distinct project names in first-seen order.
func Projects(entries []Entry) []string {
	seen := make(map[string]bool)
	var projects []string
	for _, e := range entries {
		if seen[e.Project] {
			continue
		}
		seen[e.Project] = true
		projects = append(projects, e.Project)
	}
	return projects
}

// ByProject returns the entries belonging to project, in input order.
func ByProject(entries []Entry, project string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Project == project {
			out = append(out, e)
		}
	}
	return out
}
