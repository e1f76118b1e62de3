package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vitrine-dev/vitrine/pkg/display"
	"github.com/vitrine-dev/vitrine/pkg/engine"
	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/objects"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewLimit caps how many bytes of a textual payload the preview shows.
const previewLimit = 2048

// newViewCmd creates the view command, an interactive browser over one
// object's rendered representations.
func newViewCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:       "view <object>",
		Short:     "Browse an object's representations in the terminal",
		Args:      cobra.ExactArgs(1),
		ValidArgs: objects.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], &opts)
		},
	}

	addObjectFlags(cmd, &opts)

	return cmd
}

// runView renders the object into a capture sink and hands the resulting
// representations to the bubbletea browser.
func runView(cmd *cobra.Command, objectName string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	params, err := buildParams(opts)
	if err != nil {
		return err
	}
	obj, err := objects.Build(objectName, params)
	if err != nil {
		return err
	}

	capture := publish.NewCapture()
	runner := engine.NewRunner(nil, nil, nil, logger)
	if err := runner.Display(ctx, obj, capture, engine.Options{Logger: logger}); err != nil {
		return err
	}

	reps := capture.Representations()
	if len(reps) == 0 {
		printWarning("No representations available for %s", objectName)
		return nil
	}

	model := newBundleModel(display.TypeName(obj), reps)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// BundleModel - Interactive representation browser
// =============================================================================

// BundleModel is the bubbletea model for browsing a rendered bundle.
// The left-hand cursor selects a kind, the body shows its payload preview.
type BundleModel struct {
	TypeName string
	Reps     []mime.Representation
	Cursor   int
	Height   int
}

// newBundleModel creates a browser over the given representations.
func newBundleModel(typeName string, reps []mime.Representation) BundleModel {
	return BundleModel{
		TypeName: typeName,
		Reps:     reps,
		Height:   20,
	}
}

func (m BundleModel) Init() tea.Cmd {
	return nil
}

func (m BundleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Reps)-1 {
				m.Cursor++
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BundleModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.TypeName))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	for i, rep := range m.Reps {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%s %s", cursor, style.Render(string(rep.Kind)),
			listDimStyle.Render(fmt.Sprintf("(%d bytes)", len(rep.Data))))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.preview())
	b.WriteString("\n")

	return b.String()
}

// preview renders the selected payload. Binary kinds show a size note
// instead of raw bytes.
func (m BundleModel) preview() string {
	rep := m.Reps[m.Cursor]
	if rep.Kind.IsBinary() {
		return listDimStyle.Render(fmt.Sprintf("binary payload, %d bytes (use render -o to save)", len(rep.Data)))
	}

	data := rep.Data
	truncated := false
	if len(data) > previewLimit {
		data = data[:previewLimit]
		truncated = true
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > m.Height {
		lines = lines[:m.Height]
		truncated = true
	}

	out := StyleValue.Render(strings.Join(lines, "\n"))
	if truncated {
		out += "\n" + listDimStyle.Render("…")
	}
	return out
}
