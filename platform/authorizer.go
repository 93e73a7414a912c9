package platform

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"medieval-moderator/model"
	guildconfig_db "medieval-moderator/utils/database/guildconfig"
)

// Authorizer answers privilege and bypass questions from the guild
// configuration and live member roles. When a realm has no allowed-role list
// it falls back to the Discord Moderate Members permission, matching how the
// commands behaved before per-realm role lists existed.
type Authorizer struct {
	session *discordgo.Session
	db      *sqlx.DB
}

func NewAuthorizer(session *discordgo.Session, db *sqlx.DB) *Authorizer {
	return &Authorizer{session: session, db: db}
}

// HasPrivilege implements sanction.Authorizer.
func (a *Authorizer) HasPrivilege(guildID, actorID, action string) (bool, error) {
	guild, err := a.session.Guild(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	if guild.OwnerID == actorID {
		return true, nil
	}

	member, err := a.member(guildID, actorID)
	if err != nil {
		return false, err
	}

	cfg, err := guildconfig_db.Get(a.db, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to load config for guild %s: %w", guildID, err)
	}
	if cfg != nil && len(cfg.AllowedRoleIDs) > 0 {
		return cfg.AllowedRoleIDs.ContainsAny(member.Roles), nil
	}

	perms, err := a.rolePermissions(guildID, member.Roles)
	if err != nil {
		return false, err
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true, nil
	}
	return perms&discordgo.PermissionModerateMembers != 0, nil
}

// HasAdmin reports whether the actor may change realm configuration. Role
// lists do not apply here; only the guild owner and holders of Administrator
// or Manage Server qualify.
func (a *Authorizer) HasAdmin(guildID, actorID string) (bool, error) {
	guild, err := a.session.Guild(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	if guild.OwnerID == actorID {
		return true, nil
	}
	member, err := a.member(guildID, actorID)
	if err != nil {
		return false, err
	}
	perms, err := a.rolePermissions(guildID, member.Roles)
	if err != nil {
		return false, err
	}
	return perms&(discordgo.PermissionAdministrator|discordgo.PermissionManageGuild) != 0, nil
}

// HasBypass implements sanction.Authorizer. A target with any bypass role
// holds royal immunity.
func (a *Authorizer) HasBypass(guildID, targetID string) (bool, error) {
	cfg, err := guildconfig_db.Get(a.db, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to load config for guild %s: %w", guildID, err)
	}
	if cfg == nil || len(cfg.BypassRoleIDs) == 0 {
		return false, nil
	}
	member, err := a.member(guildID, targetID)
	if err != nil {
		return false, err
	}
	return cfg.BypassRoleIDs.ContainsAny(member.Roles), nil
}

// HasDestination implements sanction.DestinationResolver. Pillories need the
// pillory channel, mutes announce to the log channel.
func (a *Authorizer) HasDestination(guildID string, kind model.SanctionKind) bool {
	cfg, err := guildconfig_db.Get(a.db, guildID)
	if err != nil || cfg == nil {
		return false
	}
	switch kind {
	case model.SanctionPillory:
		return cfg.PilloryChannelID != ""
	case model.SanctionMute:
		return cfg.LogChannelID != ""
	default:
		return false
	}
}

// TargetOutranks reports whether the target stands at equal or higher station
// than the actor, in which case moderation against them is refused.
func (a *Authorizer) TargetOutranks(guildID, actorID, targetID string) (bool, error) {
	guild, err := a.session.Guild(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	if guild.OwnerID == actorID {
		return false, nil
	}
	if guild.OwnerID == targetID {
		return true, nil
	}

	actor, err := a.member(guildID, actorID)
	if err != nil {
		return false, err
	}
	target, err := a.member(guildID, targetID)
	if err != nil {
		return false, err
	}
	roles, err := a.session.GuildRoles(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}
	positions := make(map[string]int, len(roles))
	for _, r := range roles {
		positions[r.ID] = r.Position
	}
	return topPosition(target.Roles, positions) >= topPosition(actor.Roles, positions), nil
}

func topPosition(roleIDs []string, positions map[string]int) int {
	top := 0
	for _, id := range roleIDs {
		if p, ok := positions[id]; ok && p > top {
			top = p
		}
	}
	return top
}

func (a *Authorizer) member(guildID, userID string) (*discordgo.Member, error) {
	if member, err := a.session.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	member, err := a.session.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s in guild %s: %w", userID, guildID, err)
	}
	return member, nil
}

// rolePermissions ORs the guild-level permission bits of the member's roles
// plus @everyone.
func (a *Authorizer) rolePermissions(guildID string, roleIDs []string) (int64, error) {
	roles, err := a.session.GuildRoles(guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}
	held := make(map[string]bool, len(roleIDs))
	for _, id := range roleIDs {
		held[id] = true
	}
	var perms int64
	for _, role := range roles {
		if held[role.ID] || role.ID == guildID {
			perms |= role.Permissions
		}
	}
	return perms, nil
}
