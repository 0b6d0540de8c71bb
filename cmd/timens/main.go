package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/clipperhouse/timens"
	"github.com/dustin/go-humanize"
	"github.com/jrivets/log4g"
	ucli "gopkg.in/urfave/cli.v2"
)

const version = "0.1.0"

const (
	argLogCfgFile = "log-config-file"

	argNowUnixNano = "unix-nano"
	argNowRFC3339  = "rfc3339"

	argNMBase     = "base"
	argNMInterval = "interval"
	argNMCanEqual = "can-equal"
)

var (
	logger = log4g.GetLogger("timens")
)

// main is the entry point for the 'timens' command, a small calculator
// over the library's types. The functionality are:
//
//	now           - print the current time
//	parse         - normalize a time string
//	span          - normalize a duration string
//	ofday         - normalize a time-of-day string
//	next-multiple - align a time to an interval grid
//	since         - elapsed time in human terms
func main() {
	defer log4g.Shutdown()

	cmnFlags := []ucli.Flag{
		&ucli.StringFlag{
			Name:  argLogCfgFile,
			Usage: "log4g configuration file path",
		},
	}

	nowFlags := []ucli.Flag{
		&ucli.BoolFlag{
			Name:  argNowUnixNano,
			Usage: "print only the nanoseconds since the unix epoch",
		},
		&ucli.BoolFlag{
			Name:  argNowRFC3339,
			Usage: "print only the strict RFC 3339 form",
		},
	}
	nowFlags = append(nowFlags, cmnFlags...)

	nextMultipleFlags := []ucli.Flag{
		&ucli.StringFlag{
			Name:  argNMBase,
			Usage: "grid origin, any accepted time form (the unix epoch when omitted)",
		},
		&ucli.StringFlag{
			Name:  argNMInterval,
			Usage: "grid interval, a positive duration",
		},
		&ucli.BoolFlag{
			Name:  argNMCanEqual,
			Usage: "allow the answer to equal the given time when it lies on the grid",
		},
	}
	nextMultipleFlags = append(nextMultipleFlags, cmnFlags...)

	app := &ucli.App{
		Name:    "timens",
		Version: version,
		Usage:   "Nanosecond time calculator",
		Commands: []*ucli.Command{
			{
				Name:      "now",
				Usage:     "Print the current time",
				UsageText: "timens now [command options]",
				Action:    execNow,
				Flags:     nowFlags,
			},
			{
				Name:      "parse",
				Usage:     "Normalize a time string",
				UsageText: "timens parse [command options] [time]",
				ArgsUsage: "[time]",
				Action:    execParse,
				Flags:     cmnFlags,
			},
			{
				Name:      "span",
				Usage:     "Normalize a duration string",
				UsageText: "timens span [command options] [duration]",
				ArgsUsage: "[duration]",
				Action:    execSpan,
				Flags:     cmnFlags,
			},
			{
				Name:      "ofday",
				Usage:     "Normalize a time-of-day string",
				UsageText: "timens ofday [command options] [hh:mm[:ss]]",
				ArgsUsage: "[hh:mm[:ss]]",
				Action:    execOfday,
				Flags:     cmnFlags,
			},
			{
				Name:      "next-multiple",
				Usage:     "Align a time to an interval grid",
				UsageText: "timens next-multiple --interval 5m [command options] [time]",
				ArgsUsage: "[time]",
				Action:    execNextMultiple,
				Flags:     nextMultipleFlags,
			},
			{
				Name:      "since",
				Usage:     "Print the elapsed time in human terms",
				UsageText: "timens since [command options] [time]",
				ArgsUsage: "[time]",
				Action:    execSince,
				Flags:     cmnFlags,
			},
		},
	}

	sort.Sort(ucli.FlagsByName(app.Flags))
	for _, c := range app.Commands {
		sort.Sort(ucli.FlagsByName(c.Flags))
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLog(c *ucli.Context) error {
	logCfgFile := c.String(argLogCfgFile)
	if logCfgFile != "" {
		err := log4g.ConfigF(logCfgFile)
		if err != nil {
			return err
		}
		logger.Info("Loaded log config from=", logCfgFile)
	}
	return nil
}

// oneArg returns the single positional argument, or an error when the
// count is off.
func oneArg(c *ucli.Context, what string) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one %s argument, but got %s", what, c.Args())
	}
	return c.Args().First(), nil
}

func execNow(c *ucli.Context) error {
	if err := initLog(c); err != nil {
		return err
	}

	now := timens.Now()
	switch {
	case c.Bool(argNowUnixNano):
		fmt.Println(now.UnixNano())
	case c.Bool(argNowRFC3339):
		fmt.Println(now.ToTime().Format(time.RFC3339Nano))
	default:
		fmt.Println(now)
	}
	return nil
}

func execParse(c *ucli.Context) error {
	if err := initLog(c); err != nil {
		return err
	}

	arg, err := oneArg(c, "time")
	if err != nil {
		return err
	}

	tm, err := timens.ParseTime(arg)
	if err != nil {
		return err
	}

	date, _ := tm.UTCDate()
	fmt.Println(tm)
	fmt.Println("unix nanos:", tm.UnixNano())
	fmt.Println("utc date:  ", date)
	fmt.Println("utc ofday: ", tm.UTCOfday())
	return nil
}

func execSpan(c *ucli.Context) error {
	if err := initLog(c); err != nil {
		return err
	}

	arg, err := oneArg(c, "duration")
	if err != nil {
		return err
	}

	s, err := timens.ParseSpan(arg)
	if err != nil {
		return err
	}

	extended, _ := s.MarshalText()
	fmt.Println("nanos:   ", s.Nanoseconds())
	fmt.Println("standard:", s)
	fmt.Println("extended:", string(extended))
	return nil
}

func execOfday(c *ucli.Context) error {
	if err := initLog(c); err != nil {
		return err
	}

	arg, err := oneArg(c, "time-of-day")
	if err != nil {
		return err
	}

	o, err := timens.ParseOfday(arg)
	if err != nil {
		return err
	}

	fmt.Println(o)
	fmt.Println("since midnight:", o.SinceMidnight())
	return nil
}

func execNextMultiple(c *ucli.Context) error {
	if err := initLog(c); err != nil {
		return err
	}

	arg, err := oneArg(c, "time")
	if err != nil {
		return err
	}

	after, err := timens.ParseTime(arg)
	if err != nil {
		return err
	}

	base := timens.Epoch
	if b := c.String(argNMBase); b != "" {
		base, err = timens.ParseTime(b)
		if err != nil {
			return err
		}
	}

	iv := c.String(argNMInterval)
	if iv == "" {
		return fmt.Errorf("an --%s is required", argNMInterval)
	}
	interval, err := timens.ParseSpan(iv)
	if err != nil {
		return err
	}
	if interval.Compare(timens.Seconds(0)) <= 0 {
		return fmt.Errorf("the interval must be positive, but got %s", interval)
	}

	logger.Debug("Aligning ", after, " to the ", interval, " grid from ", base)
	fmt.Println(timens.NextMultiple(base, after, interval, c.Bool(argNMCanEqual)))
	return nil
}

func execSince(c *ucli.Context) error {
	if err := initLog(c); err != nil {
		return err
	}

	arg, err := oneArg(c, "time")
	if err != nil {
		return err
	}

	tm, err := timens.ParseTime(arg)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", humanize.Time(tm.ToTime()), timens.Since(tm))
	return nil
}
