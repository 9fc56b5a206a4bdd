package client

import (
	"fmt"
	"io"
	"strings"

	"profrate/internal/module"
	"profrate/internal/rating"
)

const rule = "--------------------------------------------------"

// Stars renders a whole-star average, e.g. 3 -> "***".
func Stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("*", n)
}

func PrintInstances(w io.Writer, instances []module.Instance) {
	fmt.Fprintln(w, "Module Instances:")
	fmt.Fprintln(w, rule)
	for _, inst := range instances {
		names := make([]string, 0, len(inst.Professors))
		for _, p := range inst.Professors {
			names = append(names, fmt.Sprintf("%s (%d)", p.Name, p.ID))
		}
		fmt.Fprintf(w, "Code: %s\n", inst.ModuleCode)
		fmt.Fprintf(w, "Name: %s\n", inst.ModuleTitle)
		fmt.Fprintf(w, "Year: %d\n", inst.Year)
		fmt.Fprintf(w, "Semester: %d\n", int(inst.Semester))
		fmt.Fprintf(w, "Taught by: %s\n", strings.Join(names, ", "))
		fmt.Fprintln(w, rule)
	}
}

func PrintOverview(w io.Writer, rows []rating.ProfessorAverage) {
	fmt.Fprintln(w, "Professor Ratings:")
	fmt.Fprintln(w, rule)
	for _, row := range rows {
		fmt.Fprintf(w, "The rating of %s (%d) is %s\n", row.ProfessorName, row.ProfessorID, Stars(row.AverageRating))
	}
	fmt.Fprintln(w, rule)
}

func PrintModuleAverage(w io.Writer, avg rating.ModuleAverage) {
	fmt.Fprintf(w, "The rating of %s (%d) in module %s (%s) is %s\n",
		avg.ProfessorName, avg.ProfessorID, avg.ModuleTitle, avg.ModuleCode, Stars(avg.AverageRating))
	if avg.Message != "" {
		fmt.Fprintln(w, avg.Message)
	}
}
