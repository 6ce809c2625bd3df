package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus time per subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.EventRepo().FocusStatsBySubject(ctx)
		if err != nil {
			return fmt.Errorf("query focus stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No focus sessions recorded yet.")
			return nil
		}

		fmt.Println("Focus Time by Subject")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-32s  %8s  %18s\n", "Subject", "Sessions", "Focus Time")
		fmt.Println(strings.Repeat("─", 64))

		var totalSessions, totalSecs int
		for _, st := range stats {
			fmt.Printf("%-32s  %8d  %18s\n",
				truncate(st.SubjectName, 32), st.Sessions, formatFocus(st.FocusSecs))
			totalSessions += st.Sessions
			totalSecs += st.FocusSecs
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-32s  %8d  %18s\n", "TOTAL", totalSessions, formatFocus(totalSecs))
		return nil
	},
}

func formatFocus(secs int) string {
	d := time.Duration(secs) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dmin", h, m)
	}
	return fmt.Sprintf("%dmin", m)
}
