package layout

import "github.com/zhubert/gantt/internal/schedule"

// Tab20 is the fixed 20-color qualitative palette bars are colored from.
var Tab20 = []string{
	"#1F77B4", "#AEC7E8", "#FF7F0E", "#FFBB78", "#2CA02C",
	"#98DF8A", "#D62728", "#FF9896", "#9467BD", "#C5B0D5",
	"#8C564B", "#C49C94", "#E377C2", "#F7B6D2", "#7F7F7F",
	"#C7C7C7", "#BCBD22", "#DBDB8D", "#17BECF", "#9EDAE5",
}

// ColorMap assigns each distinct project a palette color.
type ColorMap struct {
	projects []string
	colors   map[string]string
}

// NewColorMap builds the map from the projects of entries in first-seen
// order. Only the ordered set of distinct projects affects the result.
func NewColorMap(entries []schedule.Entry) *ColorMap {
	return NewColorMapFromProjects(schedule.Projects(entries))
}

// NewColorMapFromProjects builds the map for an already distinct, ordered
// project list.
func NewColorMapFromProjects(projects []string) *ColorMap {
	cm := &ColorMap{
		projects: append([]string(nil), projects...),
		colors:   make(map[string]string, len(projects)),
	}
	for i, p := range cm.projects {
		cm.colors[p] = Tab20[PaletteIndex(i, len(cm.projects))]
	}
	return cm
}

// PaletteIndex returns the Tab20 index for the k-th of n projects. Up to 20
// projects are spread evenly across the palette; beyond that the palette
// repeats cyclically.
func PaletteIndex(k, n int) int {
	size := len(Tab20)
	if n > size {
		return k % size
	}
	if n <= 1 {
		return 0
	}
	idx := k * size / (n - 1)
	if idx >= size {
		idx = size - 1
	}
	return idx
}

// Color returns the color of project, or the first palette color for an
// unknown project.
func (c *ColorMap) Color(project string) string {
	if col, ok := c.colors[project]; ok {
		return col
	}
	return Tab20[0]
}

// Projects returns the mapped projects in first-seen order.
func (c *ColorMap) Projects() []string {
	return append([]string(nil), c.projects...)
}

// Len returns the number of projects.
func (c *ColorMap) Len() int {
	return len(c.projects)
}
