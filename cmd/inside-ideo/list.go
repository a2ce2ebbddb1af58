package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	insideideo "github.com/niravbeni/inside-ideo"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sessions, err := deps.Sessions.FindSessions(deps.Ctx, insideideo.SessionFilter{})
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No sessions. Run 'inside-ideo process' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCES\tCREATED")
	for _, session := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			session.Name,
			strings.Join(session.SourcePDFs, ", "),
			session.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
