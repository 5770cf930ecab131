package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
)

const (
	colorBlue   = 0x3498DB
	colorGreen  = 0x2ECC71
	colorOrange = 0xE67E22
	colorRed    = 0xE74C3C
	colorPurple = 0x9B59B6
)

var typeColors = map[domain.NotificationType]int{
	domain.NotificationTaskAssigned: colorBlue,
	domain.NotificationDueSoon:      colorOrange,
	domain.NotificationOverdue:      colorRed,
	domain.NotificationApproved:     colorGreen,
	domain.NotificationNeedsReview:  colorPurple,
}

// maxDescription is Discord's embed description limit.
const maxDescription = 4096

func notificationEmbed(n entities.Notification) *discordgo.MessageEmbed {
	desc := n.Message
	if r := []rune(desc); len(r) > maxDescription {
		desc = string(r[:maxDescription-1]) + "…"
	}
	embed := &discordgo.MessageEmbed{
		Title:       n.Title,
		Description: desc,
		Color:       typeColors[n.Type],
		Timestamp:   n.Timestamp.UTC().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: string(n.Type)},
	}
	if n.RelatedTo != "" {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Reference", Value: n.RelatedTo, Inline: true},
		}
	}
	return embed
}
