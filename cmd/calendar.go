package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/stride/internal/export"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/utils"
)

// details is a flag to enable verbose session details.
var details bool

type datedSession struct {
	at      time.Time
	week    int
	session models.Session
}

// calendarCmd prints the calendar grid of a month. Days holding a session are
// colored by session type.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a month calendar of the active program",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		prog, err := loadActive(cmd.Context(), st)
		if err != nil {
			return err
		}
		loc, err := utils.LoadLocation(cfg.Export.TimeZone)
		if err != nil {
			return err
		}

		// Determine month and year (default to current month/year).
		now := time.Now().In(loc)
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		sessionsByDay := make(map[int][]datedSession)
		for i, w := range prog.Weeks {
			for _, s := range w.Sessions {
				if s.Type.IsRest() {
					continue
				}
				at, err := export.SessionDate(prog.CreatedAt, i, s.Day, cfg.Export.Hour, loc)
				if err != nil {
					return err
				}
				if at.Year() == year && at.Month() == month {
					sessionsByDay[at.Day()] = append(sessionsByDay[at.Day()], datedSession{at: at, week: w.WeekNumber, session: s})
				}
			}
		}
		raceDay := prog.RaceDate.In(loc)

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 27))
		fmt.Println("Mo  Tu  We  Th  Fr  Sa  Su")

		// Monday first.
		weekday := (int(firstOfMonth.Weekday()) + 6) % 7
		for i := 0; i < weekday; i++ {
			fmt.Print("    ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d ", day)
			if raceDay.Year() == year && raceDay.Month() == month && raceDay.Day() == day {
				dayStr = color.New(color.BgYellow, color.FgBlack).Sprintf("%2d🏁", day)
			} else if list, ok := sessionsByDay[day]; ok {
				s := list[0].session
				c, ok := typeColors[s.Type]
				if !ok {
					c = color.New(color.FgWhite)
				}
				mark := "*"
				if s.Completed {
					mark = "✔"
				}
				dayStr = c.Sprintf("%2d%s", day, mark)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for _, t := range []models.SessionType{models.SessionInterval, models.SessionHill, models.SessionTempo, models.SessionLongRun, models.SessionEndurance} {
			fmt.Printf("  %s: %s\n", typeColors[t].Sprint("██"), t)
		}

		if details {
			fmt.Println("\nSession Details:")
			for day := 1; day <= lastOfMonth.Day(); day++ {
				for _, ds := range sessionsByDay[day] {
					fmt.Printf("  %s %s  W%02d %-26s %s\n",
						utils.FormatDay(ds.at, loc), ds.at.Format("15:04"), ds.week, ds.session.Title, ds.session.ID)
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional session details")
}
