package cli

import (
	"fmt"
	"strings"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/stores"
)

// pageFooter prints a "page x/y" summary line for a collection view.
func pageFooter[T models.Entity](v stores.View[T]) {
	if v.Pages <= 1 {
		printlnFn(fmt.Sprintf("%d entries", v.Total))
		return
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d entries (next/prev to page)", v.Page+1, v.Pages, v.Total))
}

// severityLine renders a security summary as "3 critical, 1 high" style text.
func severityLine(s models.SecuritySummary) string {
	if s.Total == 0 {
		return "no alerts"
	}
	parts := []string{}
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(s.Critical, models.SeverityCritical)
	add(s.High, models.SeverityHigh)
	add(s.Medium, models.SeverityMedium)
	add(s.Low, models.SeverityLow)
	add(s.Other, "other")
	if len(parts) == 0 {
		return fmt.Sprintf("%d alerts", s.Total)
	}
	return strings.Join(parts, ", ")
}

func projectLine(p models.Project) string {
	title := p.Title
	if title == "" {
		title = p.Name
	}
	line := fmt.Sprintf("#%-4d %-30s %-10s", p.ID, title, p.Type)
	if p.Snapshot != nil {
		line += fmt.Sprintf("  %d deps", p.Snapshot.Dependencies)
	}
	if p.Security != nil && p.Security.Total > 0 {
		line += "  " + severityLine(*p.Security)
	}
	if !p.Status {
		line += "  [inactive]"
	}
	return line
}

// depLabel renders a dependency as its package URL when one is set, falling
// back to manager/name@version.
func depLabel(d models.Dependency) string {
	if d.Purl != "" {
		if purl, err := d.PackageURL(); err == nil {
			return purl.ToString()
		}
	}
	label := d.Name
	if d.Namespace != "" {
		label = d.Namespace + "/" + label
	}
	if d.Manager != "" {
		label = d.Manager + ":" + label
	}
	if d.Version != "" {
		label += "@" + d.Version
	}
	return label
}

func alertLine(a models.SecurityAlert) string {
	line := fmt.Sprintf("#%-4d [%-8s] %s", a.ID, a.Severity, a.Name)
	if a.Dependency != nil {
		line += "  " + depLabel(*a.Dependency)
		if a.Affects(*a.Dependency) {
			line += "  (affected)"
		}
	}
	return line
}

// alertRange renders the affected version range of an alert.
func alertRange(a models.SecurityAlert) string {
	from := a.Introduced
	if from == "" || from == "0" {
		from = "all versions"
	}
	if a.Fixed == "" {
		return fmt.Sprintf("affected: %s and later, no fix released", from)
	}
	return fmt.Sprintf("affected: %s up to (excluding) %s", from, a.Fixed)
}

func snapshotLine(s models.Snapshot) string {
	line := fmt.Sprintf("snapshot #%d [%s] %d deps, %s", s.ID, s.Status, s.Dependencies, severityLine(s.Security))
	if s.Metadata.Tool != "" {
		line += fmt.Sprintf("  (%s %s", s.Metadata.Tool, s.Metadata.ToolVersion)
		if s.Metadata.BOM != "" {
			line += ", " + s.Metadata.BOM + " " + s.Metadata.BOMVersion
		}
		line += ")"
	}
	return line
}
