package platform

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"medieval-moderator/sanction"
)

// Sealer flips the platform-side marker for channel locks: a Send Messages
// deny on the @everyone overwrite. The lock record in the database is the
// source of truth; the overwrite just enforces it.
type Sealer struct {
	session *discordgo.Session
}

func NewSealer(session *discordgo.Session) *Sealer {
	return &Sealer{session: session}
}

// Seal denies Send Messages to @everyone in the channel, preserving whatever
// else the overwrite already grants or denies.
func (s *Sealer) Seal(guildID, channelID string) error {
	allow, deny, err := s.everyoneOverwrite(guildID, channelID)
	if err != nil {
		return err
	}
	if deny&discordgo.PermissionSendMessages != 0 {
		return sanction.NewError(sanction.KindConflict, "this chamber is already forbidding discourse")
	}
	allow &^= discordgo.PermissionSendMessages
	deny |= discordgo.PermissionSendMessages
	if err := s.session.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, allow, deny); err != nil {
		return sanction.WrapError(sanction.KindDelivery, err, "could not seal the chamber")
	}
	return nil
}

// Unseal drops the Send Messages deny, removing the overwrite entirely when
// nothing else remains in it.
func (s *Sealer) Unseal(guildID, channelID string) error {
	allow, deny, err := s.everyoneOverwrite(guildID, channelID)
	if err != nil {
		return err
	}
	deny &^= discordgo.PermissionSendMessages
	if allow == 0 && deny == 0 {
		if err := s.session.ChannelPermissionDelete(channelID, guildID); err != nil {
			return sanction.WrapError(sanction.KindDelivery, err, "could not unseal the chamber")
		}
		return nil
	}
	if err := s.session.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, allow, deny); err != nil {
		return sanction.WrapError(sanction.KindDelivery, err, "could not unseal the chamber")
	}
	return nil
}

func (s *Sealer) everyoneOverwrite(guildID, channelID string) (allow, deny int64, err error) {
	channel, err := s.session.Channel(channelID)
	if err != nil {
		return 0, 0, sanction.WrapError(sanction.KindDelivery, fmt.Errorf("failed to fetch channel %s: %w", channelID, err), "could not inspect the chamber")
	}
	for _, ow := range channel.PermissionOverwrites {
		if ow.Type == discordgo.PermissionOverwriteTypeRole && ow.ID == guildID {
			return ow.Allow, ow.Deny, nil
		}
	}
	return 0, 0, nil
}
