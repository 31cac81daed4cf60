package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bessdsv/kitematic/internal/application/usecase"
	"github.com/bessdsv/kitematic/internal/domain/entity"
)

// ContainersRenderer renders container listings and details.
type ContainersRenderer struct {
	theme *Theme
}

// NewContainersRenderer creates a new containers renderer with the given theme.
func NewContainersRenderer(theme *Theme) *ContainersRenderer {
	return &ContainersRenderer{theme: theme}
}

// RenderList renders one line per container with its state and link count.
func (r *ContainersRenderer) RenderList(containers []*entity.Container) string {
	if len(containers) == 0 {
		return r.theme.Subtle.Render("No containers stored. Run 'kitematic containers import' first.")
	}

	nameWidth := 0
	for _, c := range containers {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}
	nameStyle := r.theme.Normal.Width(nameWidth + 2)

	lines := make([]string, 0, len(containers))
	for _, c := range containers {
		links := len(entity.Links(c))
		lines = append(lines, fmt.Sprintf("%s %s%s %s",
			r.stateIcon(c.State),
			nameStyle.Render(c.Name),
			r.theme.Subtle.Render(fmt.Sprintf("%s %d", IconLink, links)),
			r.badge(c.State),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderDetails renders the settings of one container.
func (r *ContainersRenderer) RenderDetails(d *usecase.ContainerDetails) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s %s\n",
		r.stateIcon(d.Container.State),
		r.theme.Title.Render(d.Container.Name),
		r.theme.Subtle.Render(shortID(d.Container.ID)),
	))

	sb.WriteString(r.section("Mode"))
	sb.WriteString(fmt.Sprintf("  tty %s  stdin %s  privileged %s\n",
		r.flag(d.Mode.Tty), r.flag(d.Mode.OpenStdin), r.flag(d.Mode.Privileged)))

	sb.WriteString(r.section("Environment"))
	if len(d.Env) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("none") + "\n")
	}
	for _, kv := range d.Env {
		sb.WriteString(fmt.Sprintf("  %s=%s\n", r.theme.Highlight.Render(kv[0]), kv[1]))
	}

	sb.WriteString(r.section("Links"))
	if len(d.Links) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("none") + "\n")
	}
	for _, l := range d.Links {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n", l.Container, r.theme.Subtle.Render(IconArrow), l.Alias))
	}

	sb.WriteString(r.section("Ports"))
	if len(d.PortKeys) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("none") + "\n")
	}
	for _, k := range d.PortKeys {
		p := d.Ports[k]
		sb.WriteString(fmt.Sprintf("  %s/%s %s %s\n", k, p.PortType, r.theme.Subtle.Render(IconArrow), p.URL))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// RenderImported renders the names saved by an import.
func (r *ContainersRenderer) RenderImported(names []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s Imported %s: %s",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", len(names))),
		strings.Join(names, ", "),
	)
}

// RenderError renders an error message.
func (r *ContainersRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %v", iconStyle.Render(IconX), err)
}

func (r *ContainersRenderer) section(title string) string {
	return "\n" + r.theme.Subtitle.Render(title) + "\n"
}

func (r *ContainersRenderer) flag(on bool) string {
	if on {
		return r.theme.SuccessStyle.Render(IconCheck)
	}
	return r.theme.Subtle.Render(IconX)
}

func (r *ContainersRenderer) stateIcon(s entity.State) string {
	if s.Running {
		return r.theme.SuccessStyle.Render(IconPlay)
	}
	return r.theme.Subtle.Render(IconStop)
}

func (r *ContainersRenderer) badge(s entity.State) string {
	if s.Updating {
		return r.theme.Badge.Render("updating")
	}
	return ""
}

func shortID(id string) string {
	const n = 12
	if len(id) > n {
		return id[:n]
	}
	return id
}
