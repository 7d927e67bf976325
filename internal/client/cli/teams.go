package cli

import (
	"context"
	"fmt"

	"github.com/uniconnect/uniconnect-cli/internal/client/api"
	"github.com/uniconnect/uniconnect-cli/internal/client/models"
)

func (a *App) Teams(ctx context.Context) error {
	teams, err := a.teams.ListTeams(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	if len(teams) == 0 {
		fmt.Fprintln(a.out, "You have no teams yet")
		return nil
	}
	for _, t := range teams {
		fmt.Fprintf(a.out, "%s  %-25s %d member(s)\n", t.ID, t.TeamName, len(t.Members))
	}
	return nil
}

func (a *App) CreateTeam(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Team name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	members, err := a.readMembers()
	if err != nil {
		a.printErr(err)
		return err
	}

	team, err := a.teams.CreateTeam(ctx, api.CreateTeamRequest{TeamName: name, Members: members})
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Created team %s (%s)\n", team.TeamName, team.ID)
	return nil
}

func (a *App) UpdateTeam(ctx context.Context, id string) error {
	name, err := GetSimpleText(a.reader, "Team name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	members, err := a.readMembers()
	if err != nil {
		a.printErr(err)
		return err
	}

	team, err := a.teams.UpdateTeam(ctx, id, api.UpdateTeamRequest{TeamName: name, Members: members})
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Updated team %s\n", team.TeamName)
	return nil
}

func (a *App) DeleteTeam(ctx context.Context, id string) error {
	if err := a.teams.DeleteTeam(ctx, id); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Team deleted")
	return nil
}

// readMembers collects team members interactively until an empty name is
// entered.
func (a *App) readMembers() ([]models.TeamMember, error) {
	var members []models.TeamMember
	for {
		fullName, err := GetSimpleText(a.reader, "Member full name (empty to finish)", a.out)
		if err != nil {
			return nil, err
		}
		if fullName == "" {
			return members, nil
		}

		usn, err := GetSimpleText(a.reader, "USN", a.out)
		if err != nil {
			return nil, err
		}
		semester, err := GetInt(a.reader, "Current semester", a.out)
		if err != nil {
			return nil, err
		}
		department, err := GetSimpleText(a.reader, "Department", a.out)
		if err != nil {
			return nil, err
		}

		members = append(members, models.TeamMember{
			FullName:        fullName,
			USN:             usn,
			CurrentSemester: semester,
			Department:      department,
		})
	}
}
