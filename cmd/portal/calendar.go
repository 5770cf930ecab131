package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/pkg/tz"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a calendar view for one day",
	Long: `Prints the dashboard view by default. Use --view shared for the club calendar
or --view portfolio with --portfolio for one portfolio's calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = tz.Date(time.Now(), a.cfg.Location)
		}
		view, _ := cmd.Flags().GetString("view")
		portfolio, _ := cmd.Flags().GetString("portfolio")

		var entries []entities.CalendarEvent
		switch view {
		case "dashboard":
			entries, err = a.calendar.DashboardView(cmd.Context(), date)
		case "shared":
			entries, err = a.calendar.SharedView(cmd.Context(), date)
		case "portfolio":
			p := domain.Portfolio(portfolio)
			if !p.IsValid() {
				return fmt.Errorf("--portfolio must be one of %v", domain.Portfolios)
			}
			entries, err = a.calendar.PortfolioView(cmd.Context(), p, date)
		default:
			return fmt.Errorf("--view must be dashboard, shared or portfolio, got %q", view)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "Nothing on %s\n", date)
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tTITLE\tPORTFOLIO\tTYPE")
		for _, e := range entries {
			at := e.StartTime
			if at == "" {
				at = "all day"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", at, e.Title, e.Portfolio, e.Type)
		}
		return w.Flush()
	},
}

func init() {
	calendarCmd.Flags().String("date", "", "day to show as YYYY-MM-DD (default today)")
	calendarCmd.Flags().String("view", "dashboard", "dashboard, shared or portfolio")
	calendarCmd.Flags().String("portfolio", "", "portfolio for --view portfolio")
}
