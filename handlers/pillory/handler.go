package pillory

import (
	"fmt"
	"log"
	"strings"
	"time"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
	"medieval-moderator/sanction"
)

// HandlePillory condemns a subject to the stocks. The announcement, marker
// role, and progress task are all driven by the lifecycle manager.
func HandlePillory(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	allowed, err := b.Authorizer.HasPrivilege(req.GuildID, req.ActorID, "pillory")
	if err != nil {
		log.Printf("Privilege check failed for %s in guild %s: %v", req.ActorID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if !allowed {
		return &bot.Reply{Embed: flavor.Response("Thou hast not the royal privilege to command the pillory!", false), Ephemeral: true}
	}

	s, err := b.Manager.Create(req.GuildID, req.TargetUserID, req.DurationMinutes, req.Reason, model.SanctionPillory)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}

	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "pillory", req.Reason)
	return &bot.Reply{Embed: flavor.Response(
		fmt.Sprintf("The wretch hath been placed in the pillory for %d minutes by royal decree! (pillory #%d)", req.DurationMinutes, s.ID),
		true,
	)}
}

// HandlePardon ends a pillory early by its id.
func HandlePardon(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	allowed, err := b.Authorizer.HasPrivilege(req.GuildID, req.ActorID, "pardon")
	if err != nil {
		log.Printf("Privilege check failed for %s in guild %s: %v", req.ActorID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if !allowed {
		return &bot.Reply{Embed: flavor.Response("Thou hast not the authority to grant pardons!", false), Ephemeral: true}
	}

	if err := b.Manager.EndEarly(model.SanctionPillory, req.SanctionID, req.GuildID, req.ActorID); err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}

	b.Auditor.Record(req.GuildID, req.ActorID, "", "pardon", fmt.Sprintf("Pillory #%d ended early", req.SanctionID))
	return &bot.Reply{Embed: flavor.Response(
		fmt.Sprintf("Pillory #%d hath been ended by royal pardon!", req.SanctionID),
		true,
	)}
}

// HandlePillories lists the souls currently in the stocks.
func HandlePillories(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	rows, err := b.Manager.ListActive(req.GuildID, model.SanctionPillory)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	if len(rows) == 0 {
		return &bot.Reply{Embed: flavor.Response("The stocks stand empty! The realm is at peace.", true)}
	}

	var sb strings.Builder
	now := time.Now().UTC()
	for _, s := range rows {
		remaining := "unknown"
		if end, err := s.End(); err == nil {
			remaining = fmt.Sprintf("%d minutes", int(end.Sub(now).Minutes()))
		}
		fmt.Fprintf(&sb, "**#%d** <@%s>\n⏰ Remaining: %s\n📜 Crime: %s\n\n", s.ID, s.UserID, remaining, s.Reason)
	}
	return &bot.Reply{Embed: flavor.Embed("⛓️ Souls in the Stocks", sb.String(), "red")}
}
