package provision

import (
	"context"
	"fmt"
	"sort"

	"github.com/collabops/webex-provisioner/pkg/config"
	"github.com/collabops/webex-provisioner/pkg/logger"
	"github.com/collabops/webex-provisioner/pkg/webex"
)

// Provisioner runs the workspace provisioning workflow: get or create the
// team, get or create its rooms, add members to the team and to each room, and
// post a welcome message to each room.
//
// Team and room resolution are hard requirements and abort the run on failure.
// Membership adds and welcome messages are best-effort per item, and a
// conflict from the API means the membership already exists and is treated as
// success.
type Provisioner struct {
	client webex.Client
	log    logger.Logger
}

type room struct {
	id   string
	plan config.RoomPlan
}

func New(client webex.Client, log logger.Logger) *Provisioner {
	return &Provisioner{
		client: client,
		log:    log,
	}
}

func (p *Provisioner) Run(ctx context.Context, teamName string, plans []config.RoomPlan) error {
	teamID, err := p.ensureTeam(ctx, teamName)
	if err != nil {
		return err
	}

	rooms, err := p.ensureRooms(ctx, teamID, plans)
	if err != nil {
		return err
	}

	p.addTeamMembers(ctx, teamName, teamID, plans)
	p.addRoomMembers(ctx, rooms)
	p.postWelcomeMessages(ctx, rooms)

	return nil
}

func (p *Provisioner) ensureTeam(ctx context.Context, name string) (string, error) {
	log := p.log.WithTeam(name)

	teams, err := p.client.ListTeams(ctx, webex.ListTeamsOptions{Name: name})
	if err != nil {
		return "", fmt.Errorf("list teams: %w", err)
	}

	if len(teams) > 0 {
		log.Infof("team already exists, skipping creation")
		return teams[0].ID, nil
	}

	team, err := p.client.CreateTeam(ctx, name)
	if err != nil {
		return "", fmt.Errorf("create team %q: %w", name, err)
	}

	log.Infof("created team")
	return team.ID, nil
}

func (p *Provisioner) ensureRooms(ctx context.Context, teamID string, plans []config.RoomPlan) ([]room, error) {
	rooms := make([]room, 0, len(plans))

	for _, plan := range plans {
		log := p.log.WithRoom(plan.Title)

		existing, err := p.client.ListRooms(ctx, webex.ListRoomsOptions{
			TeamID: teamID,
			Title:  plan.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("list rooms: %w", err)
		}

		if len(existing) > 0 {
			log.Infof("room already exists, skipping creation")
			rooms = append(rooms, room{id: existing[0].ID, plan: plan})
			continue
		}

		created, err := p.client.CreateRoom(ctx, webex.CreateRoomInput{
			Title:  plan.Title,
			TeamID: teamID,
		})
		if err != nil {
			return nil, fmt.Errorf("create room %q: %w", plan.Title, err)
		}

		log.Infof("created room")
		rooms = append(rooms, room{id: created.ID, plan: plan})
	}

	return rooms, nil
}

func (p *Provisioner) addTeamMembers(ctx context.Context, teamName, teamID string, plans []config.RoomPlan) {
	for _, email := range memberUnion(plans) {
		log := p.log.WithTeam(teamName).WithEmail(email)

		_, err := p.client.AddTeamMembership(ctx, webex.AddTeamMembershipInput{
			TeamID:      teamID,
			PersonEmail: email,
		})
		if err != nil && !webex.IsConflict(err) {
			log.Errorf("add team member: %s", err)
			continue
		}

		log.Infof("added to team (or already a member)")
	}
}

func (p *Provisioner) addRoomMembers(ctx context.Context, rooms []room) {
	for _, r := range rooms {
		for _, email := range r.plan.Members {
			log := p.log.WithRoom(r.plan.Title).WithEmail(email)

			_, err := p.client.AddRoomMembership(ctx, webex.AddRoomMembershipInput{
				RoomID:      r.id,
				PersonEmail: email,
			})
			if err != nil && !webex.IsConflict(err) {
				log.Errorf("add room member: %s", err)
				continue
			}

			log.Infof("added to room (or already a member)")
		}
	}
}

func (p *Provisioner) postWelcomeMessages(ctx context.Context, rooms []room) {
	for _, r := range rooms {
		log := p.log.WithRoom(r.plan.Title)

		_, err := p.client.CreateMessage(ctx, webex.CreateMessageInput{
			RoomID: r.id,
			Text:   fmt.Sprintf("👋 Welcome to the *%s*!", r.plan.Title),
		})
		if err != nil {
			log.Errorf("send welcome message: %s", err)
			continue
		}

		log.Infof("sent welcome message")
	}
}

// memberUnion returns the deduplicated union of all member emails across the
// room plans, in lexical order for stable processing.
func memberUnion(plans []config.RoomPlan) []string {
	seen := make(map[string]bool)
	emails := make([]string, 0)
	for _, plan := range plans {
		for _, email := range plan.Members {
			if seen[email] {
				continue
			}
			seen[email] = true
			emails = append(emails, email)
		}
	}
	sort.Strings(emails)
	return emails
}
