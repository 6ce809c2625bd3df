package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect mentor request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent mentor calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		shown := 0
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tPURPOSE\tPROVIDER\tMODEL\tIN\tOUT\tMS\tSTATUS")
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			status := "ok"
			if !e.Success {
				status = "FAIL"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID,
				e.Timestamp.Local().Format("02/01 15:04:05"),
				e.Purpose,
				e.Provider,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				status,
			)
			shown++
		}
		w.Flush()

		if shown == 0 {
			fmt.Println("Nenhum evento registrado.")
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one mentor call in full, including bodies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Printf("ID %d · %s · %s via %s (%s)\n",
			e.ID, e.Timestamp.Local().Format("02/01/2006 15:04:05"), e.Purpose, e.Provider, e.Model)
		fmt.Printf("%d tokens in, %d out, %dms", e.InputTokens, e.OutputTokens, e.LatencyMs)
		if e.Success {
			fmt.Println(", ok")
		} else {
			fmt.Printf(", FAILED: %s\n", e.ErrorMessage)
		}

		printBody("REQUEST", e.RequestBody)
		printBody("RESPONSE", e.ResponseBody)
		return nil
	},
}

func printBody(label, body string) {
	fmt.Printf("\n--- %s ---\n", label)
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("Nenhum uso registrado ainda.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PURPOSE\tCALLS\tIN\tOUT\tAVG MS")
		var calls, in, out int
		for _, st := range byPurpose {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.AvgLatencyMs)
			calls += st.Calls
			in += st.InputTokens
			out += st.OutputTokens
		}
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t\n", calls, in, out)
		w.Flush()

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tCALLS\tIN\tOUT\tCOST (USD)")
		var total float64
		var unknown []string
		for _, mu := range byModel {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unknown = append(unknown, mu.Model)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens)
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(w, "%s\t\t\t\t%s\n", label, formatCost(total))
		w.Flush()

		if len(unknown) > 0 {
			fmt.Printf("\nSem tabela de preço para: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

// openEventStore opens the telemetry database for a read-only command.
func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (roadmap, roadmap-extend, lesson, chat)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
