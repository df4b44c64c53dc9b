// Package main is the entry point for the gocal calendar viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/josh-spratt/gocal/internal/calendar"
	"github.com/josh-spratt/gocal/internal/config"
	"github.com/josh-spratt/gocal/internal/render"
	"github.com/josh-spratt/gocal/internal/styles"
)

const version = "0.1.0"

const dateLayout = "2006-01-02"

const helpText = `gocal - View the calendar from the command line

USAGE:
    gocal [view] [PERIOD] [OPTIONS]

PERIODS:
    day         Single day header (today, or --date)
    week        The week containing --date (default: today)
    month       Month grid (default)
    quarter     The quarter containing the selected month
    year        Year summary

OPTIONS:
    --year N        Year to display (default: current)
    --month N       Month 1-12 to display (default: current)
    --date DATE     Reference date for day/week views (YYYY-MM-DD)
    --no-color      Disable ANSI styling
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file

CONFIGURATION:
    Config file: ~/.config/gocal/config.yaml

    Run 'gocal --init' to create a config template with the default
    first weekday, column width and color settings.

EXAMPLES:
    gocal                                  # current month
    gocal view month --year 2024 --month 6
    gocal view day --date 2024-07-04
    gocal week
    gocal year --year 2025
`

const configTemplate = `# gocal configuration
# Location: ~/.config/gocal/config.yaml

calendar:
  # First column of the grid: 0=Sunday .. 6=Saturday
  first_weekday: 0

ui:
  # Characters reserved per day column (minimum 2)
  column_width: 3
  # Two-letter weekday labels instead of full names
  abbreviated_header: true
  # ANSI styling; today is shown in reverse video
  color: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	// Accept an optional leading "view" word and an optional period before
	// the flags, so both "gocal week" and "gocal view week --date ..." work.
	period := "month"
	if len(args) > 0 && args[0] == "view" {
		args = args[1:]
	}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		period = args[0]
		args = args[1:]
	}

	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		noColor     bool
		yearFlag    int
		monthFlag   int
		dateFlag    string
	)

	fs := flag.NewFlagSet("gocal", flag.ContinueOnError)
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "Show version")
	fs.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	fs.BoolVar(&initConfig, "init", false, "Create template config file")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI styling")
	fs.IntVar(&yearFlag, "year", 0, "Year to display (default: current)")
	fs.IntVar(&monthFlag, "month", 0, "Month 1-12 to display (default: current)")
	fs.StringVar(&dateFlag, "date", "", "Reference date for day/week views (YYYY-MM-DD)")

	fs.Usage = func() {
		fmt.Print(helpText)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("gocal version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	now := time.Now()

	year := yearFlag
	if year == 0 {
		year = now.Year()
	}
	month := monthFlag
	if month == 0 {
		month = int(now.Month())
	}

	refDate := now
	if dateFlag != "" {
		parsed, err := time.ParseInLocation(dateLayout, dateFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateFlag)
		}
		refDate = parsed
	}

	opts := render.Options{
		ColumnWidth:       cfg.UI.ColumnWidth,
		AbbreviatedHeader: cfg.UI.AbbreviatedHeader,
	}
	if cfg.UI.Color && !noColor {
		opts.Theme = styles.Default()
	}

	lines, err := view(period, year, month, refDate, now, cfg.Calendar.FirstWeekday, opts)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// view dispatches one period to its renderer and returns the output lines.
func view(period string, year, month int, refDate, now time.Time, firstWeekday int, opts render.Options) ([]string, error) {
	switch period {
	case "day":
		return render.RenderDay(refDate), nil

	case "week":
		start, err := calendar.WeekStart(refDate, firstWeekday)
		if err != nil {
			return nil, err
		}
		return render.RenderWeek(start, opts)

	case "month":
		grid, err := calendar.BuildMonthGrid(year, month, firstWeekday, now)
		if err != nil {
			return nil, err
		}
		return render.RenderMonth(grid, opts)

	case "quarter":
		quarter, err := calendar.QuarterOf(month)
		if err != nil {
			return nil, err
		}
		return render.RenderQuarter(year, quarter), nil

	case "year":
		return render.RenderYear(year), nil

	default:
		return nil, fmt.Errorf("unknown period %q: expected day, week, month, quarter or year", period)
	}
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Ensure directory exists
	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}
