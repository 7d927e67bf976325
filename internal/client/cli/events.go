package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Events(ctx context.Context) error {
	events, err := a.events.ListEvents(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events")
		return nil
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "%s  %-30s %s %s\n", e.ID, e.Title, e.Date, e.Location)
	}
	return nil
}

func (a *App) Event(ctx context.Context, id string) error {
	event, err := a.events.GetEvent(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "%s\n", event.Title)
	if event.Description != "" {
		fmt.Fprintln(a.out, event.Description)
	}
	fmt.Fprintf(a.out, "When:  %s %s\n", event.Date, event.Time)
	fmt.Fprintf(a.out, "Where: %s\n", event.Location)
	if len(event.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags:  %s\n", strings.Join(event.Tags, ", "))
	}
	if event.MaxAttendees > 0 {
		fmt.Fprintf(a.out, "Attendees: %d/%d\n", event.Attendees, event.MaxAttendees)
	}
	return nil
}

func (a *App) RegisterTeam(ctx context.Context, eventID, teamID string) error {
	resp, err := a.events.RegisterTeam(ctx, eventID, teamID)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}
