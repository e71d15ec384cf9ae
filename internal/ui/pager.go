package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// bubbletea releases and restores the terminal around it.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// Run blocks until the pager exits
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Don't leave the content behind on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// selectionReport renders the selected paths, one per line
func selectionReport(dir string, paths []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d selected in %s\n", len(paths), dir)
	for _, p := range paths {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String()
}

// viewSelection returns a command showing the selection in the pager
func viewSelection(dir string, paths []string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: selectionReport(dir, paths)}, func(err error) tea.Msg {
		return pagerMsg{err: err}
	})
}
