package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
)

func fieldsCommand() *cli.Command {
	return &cli.Command{
		Name:  "fields",
		Usage: "Inspect football fields",
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show one field",
				ArgsUsage: "FIELD_ID",
				Action:    fieldsShowAction,
			},
			{
				Name:      "pricing",
				Usage:     "Show the pricing rules of a field",
				ArgsUsage: "FIELD_ID",
				Action:    fieldsPricingAction,
			},
			{
				Name:      "availability",
				Usage:     "Show open slots of a field on one day",
				ArgsUsage: "FIELD_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "Day as YYYY-MM-DD", Value: time.Now().Format(time.DateOnly)},
				},
				Action: fieldsAvailabilityAction,
			},
		},
	}
}

func fieldsShowAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "field id")
	if err != nil {
		return err
	}

	res := a.Resources.Fields.Detail(c.Context, id)
	if res.Err != nil {
		return res.Err
	}

	f := res.Data
	return newPrinter(c).line(f, "%s (#%d)\naddress: %s\nsurface: %s, size: %s\nprice: %.2f/h\nverified: %t",
		f.Name, f.ID, f.Address, f.Surface, f.Size, f.PricePerHr, f.Verified)
}

var weekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func fieldsPricingAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "field id")
	if err != nil {
		return err
	}

	res := a.Resources.Fields.Pricing(c.Context, id)
	if res.Err != nil {
		return res.Err
	}

	return newPrinter(c).table(res.Data, "DAY\tFROM\tTO\tPRICE/H", func(w io.Writer) {
		for _, r := range res.Data {
			day := "?"
			if r.DayOfWeek >= 0 && r.DayOfWeek < len(weekdays) {
				day = weekdays[r.DayOfWeek]
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", day, r.StartTime, r.EndTime, r.PricePerHr)
		}
	})
}

func fieldsAvailabilityAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "field id")
	if err != nil {
		return err
	}

	res := a.Resources.Fields.Availability(c.Context, id, c.String("date"))
	if res.Err != nil {
		return res.Err
	}

	return newPrinter(c).table(res.Data, "FROM\tTO\tFREE\tPRICE", func(w io.Writer) {
		for _, s := range res.Data {
			fmt.Fprintf(w, "%s\t%s\t%t\t%.2f\n", s.StartTime, s.EndTime, s.Available, s.Price)
		}
	})
}
