// Package discord forwards portal notifications to a Discord channel webhook.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"ircportal/internal/domain/entities"
	"ircportal/internal/ports/output"
)

var _ output.NotificationRelay = (*Relay)(nil)

// webhookExecutor is the part of *discordgo.Session the relay uses.
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Relay posts each notification as an embed through a channel webhook.
type Relay struct {
	exec      webhookExecutor
	webhookID string
	token     string
	username  string
}

// NewRelay builds a Relay for the webhook identified by id and token.
// Webhooks need no bot token, so the session is created anonymous.
func NewRelay(id, token string) (*Relay, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &Relay{exec: s, webhookID: id, token: token, username: "IRC Portal"}, nil
}

func (r *Relay) Relay(ctx context.Context, n entities.Notification) error {
	params := &discordgo.WebhookParams{
		Username: r.username,
		Embeds:   []*discordgo.MessageEmbed{notificationEmbed(n)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
		},
	}
	if _, err := r.exec.WebhookExecute(r.webhookID, r.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("execute discord webhook: %w", err)
	}
	return nil
}
