package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/resources"
)

func bookingsCommand() *cli.Command {
	reasonFlag := &cli.StringFlag{Name: "reason", Usage: "Reason shown to the other party"}

	return &cli.Command{
		Name:  "bookings",
		Usage: "Review and manage field bookings",
		Subcommands: []*cli.Command{
			{
				Name:   "pending",
				Usage:  "List bookings awaiting approval on your fields",
				Action: bookingsPendingAction,
			},
			{
				Name:      "calendar",
				Usage:     "List bookings of a field in a date range",
				ArgsUsage: "FIELD_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "First day as YYYY-MM-DD", Value: time.Now().Format(time.DateOnly)},
					&cli.StringFlag{Name: "to", Usage: "Last day as YYYY-MM-DD", Value: time.Now().AddDate(0, 0, 7).Format(time.DateOnly)},
				},
				Action: bookingsCalendarAction,
			},
			{
				Name:      "approve",
				Usage:     "Approve a pending booking",
				ArgsUsage: "BOOKING_ID",
				Action:    bookingsApproveAction,
			},
			{
				Name:      "reject",
				Usage:     "Reject a pending booking",
				ArgsUsage: "BOOKING_ID",
				Flags:     []cli.Flag{reasonFlag},
				Action: func(c *cli.Context) error {
					return bookingsReasonAction(c, "rejected", func(a *resources.BookingHooks) *resources.Mutation[resources.BookingReasonInput, *kickoffsdk.Booking] {
						return a.Reject
					})
				},
			},
			{
				Name:      "cancel",
				Usage:     "Cancel a booking",
				ArgsUsage: "BOOKING_ID",
				Flags:     []cli.Flag{reasonFlag},
				Action: func(c *cli.Context) error {
					return bookingsReasonAction(c, "cancelled", func(a *resources.BookingHooks) *resources.Mutation[resources.BookingReasonInput, *kickoffsdk.Booking] {
						return a.Cancel
					})
				},
			},
			{
				Name:   "history",
				Usage:  "List your past bookings",
				Flags:  pageFlags(),
				Action: bookingsHistoryAction,
			},
		},
	}
}

func bookingRows(list []kickoffsdk.Booking) func(w io.Writer) {
	return func(w io.Writer) {
		for _, b := range list {
			field := fmt.Sprintf("#%d", b.FieldID)
			if b.Field != nil {
				field = b.Field.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\n",
				b.ID, field, formatTime(b.StartTime), formatTime(b.EndTime), b.Status, b.TotalPrice)
		}
	}
}

const bookingHeader = "ID\tFIELD\tSTART\tEND\tSTATUS\tPRICE"

func bookingsPendingAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	res := a.Resources.Bookings.OwnerPending(c.Context)
	if res.Err != nil {
		return res.Err
	}
	return newPrinter(c).table(res.Data, bookingHeader, bookingRows(res.Data))
}

func bookingsCalendarAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "field id")
	if err != nil {
		return err
	}

	res := a.Resources.Bookings.Calendar(c.Context, id, kickoffsdk.DateRange{
		StartDate: c.String("from"),
		EndDate:   c.String("to"),
	})
	if res.Err != nil {
		return res.Err
	}
	return newPrinter(c).table(res.Data, bookingHeader, bookingRows(res.Data))
}

func bookingsApproveAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "booking id")
	if err != nil {
		return err
	}

	b, err := a.Resources.Bookings.Approve.Mutate(c.Context, id)
	if err != nil {
		return err
	}
	return newPrinter(c).line(b, "booking %d approved", b.ID)
}

func bookingsReasonAction(
	c *cli.Context,
	verb string,
	pick func(*resources.BookingHooks) *resources.Mutation[resources.BookingReasonInput, *kickoffsdk.Booking],
) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "booking id")
	if err != nil {
		return err
	}

	b, err := pick(a.Resources.Bookings).Mutate(c.Context, resources.BookingReasonInput{
		ID:     id,
		Reason: c.String("reason"),
	})
	if err != nil {
		return err
	}
	return newPrinter(c).line(b, "booking %d %s", b.ID, verb)
}

func bookingsHistoryAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	res := a.Resources.Bookings.History(c.Context, kickoffsdk.ListParams{
		Page:  c.Int("page"),
		Limit: c.Int("limit"),
	})
	if res.Err != nil {
		return res.Err
	}

	page := res.Data
	return newPrinter(c).table(page, bookingHeader, func(w io.Writer) {
		bookingRows(page.Data)(w)
		pageFooter(w, page)
	})
}
