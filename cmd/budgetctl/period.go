package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

var (
	flagMonth    int
	flagYear     int
	flagStartDay int
	flagDate     string
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Show the period labelled by --month and --year",
	RunE:  runPeriod,
}

var periodForCmd = &cobra.Command{
	Use:   "period-for",
	Short: "Show the period containing --date",
	RunE:  runPeriodFor,
}

func init() {
	periodCmd.Flags().IntVar(&flagMonth, "month", 0, "Label month (1-12)")
	periodCmd.Flags().IntVar(&flagYear, "year", 0, "Label year")
	periodCmd.Flags().IntVar(&flagStartDay, "start-day", 1, "Month start day (1-28)")
	_ = periodCmd.MarkFlagRequired("month")
	_ = periodCmd.MarkFlagRequired("year")

	periodForCmd.Flags().StringVar(&flagDate, "date", "", "Date (YYYY-MM-DD)")
	periodForCmd.Flags().IntVar(&flagStartDay, "start-day", 1, "Month start day (1-28)")
	_ = periodForCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(periodCmd, periodForCmd)
}

func runPeriod(cmd *cobra.Command, _ []string) error {
	label, err := period.NewLabel(flagMonth, flagYear)
	if err != nil {
		return err
	}
	if !entity.ValidMonthStartDay(flagStartDay) {
		return fmt.Errorf("start day must be between %d and %d", entity.MinMonthStartDay, entity.MaxMonthStartDay)
	}

	printPeriod(cmd.OutOrStdout(), label, flagStartDay)
	return nil
}

func runPeriodFor(cmd *cobra.Command, _ []string) error {
	date, err := valueobject.ParseDate(flagDate)
	if err != nil {
		return err
	}
	if !entity.ValidMonthStartDay(flagStartDay) {
		return fmt.Errorf("start day must be between %d and %d", entity.MinMonthStartDay, entity.MaxMonthStartDay)
	}

	printPeriod(cmd.OutOrStdout(), period.ForDate(date, flagStartDay), flagStartDay)
	return nil
}

func printPeriod(w io.Writer, label period.Label, startDay int) {
	p := period.ComputeLabel(label, startDay)
	prev := period.ComputeLabel(label.Previous(), startDay)
	next := period.ComputeLabel(label.Next(), startDay)

	fmt.Fprintf(w, "  Label:     %s %d\n", time.Month(p.Month), p.Year)
	fmt.Fprintf(w, "  Display:   %s\n", period.FormatDisplay(p, startDay, flagLocale))
	fmt.Fprintf(w, "  Start:     %s\n", p.StartDate)
	fmt.Fprintf(w, "  End:       %s\n", p.EndDate)
	fmt.Fprintf(w, "  Days:      %d\n", p.DaysInPeriod)
	fmt.Fprintf(w, "  Previous:  %s .. %s\n", prev.StartDate, prev.EndDate)
	fmt.Fprintf(w, "  Next:      %s .. %s\n", next.StartDate, next.EndDate)
}
