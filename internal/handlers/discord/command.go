package discord

import (
	"github.com/KirkDiggler/kiroku/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// ComponentHandler is implemented by commands that own message components
type ComponentHandler interface {
	// HandlesComponent reports whether the custom ID belongs to the handler
	HandlesComponent(customID string) bool

	// HandleComponent processes a button click
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// invoker is the user behind an interaction
type invoker struct {
	UserID string
	Name   string
	Locale messaging.Locale
}

// invokerFrom reads the user from a guild or DM interaction
func invokerFrom(i *discordgo.InteractionCreate) invoker {
	inv := invoker{Locale: messaging.ParseLocale(string(i.Locale))}

	switch {
	case i.Member != nil && i.Member.User != nil:
		inv.UserID = i.Member.User.ID
		inv.Name = i.Member.User.Username
		if i.Member.Nick != "" {
			inv.Name = i.Member.Nick
		}
	case i.User != nil:
		inv.UserID = i.User.ID
		inv.Name = i.User.Username
	}

	if inv.Name == "" {
		inv.Name = inv.UserID
	}
	return inv
}

// options indexes subcommand options by name
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// String returns the option as a string, or def when missing
func (o options) String(name, def string) string {
	opt, ok := o[name]
	if !ok {
		return def
	}
	if v, ok := opt.Value.(string); ok {
		return v
	}
	return def
}

// Int returns the option as an int. Discord sends numbers as JSON floats.
func (o options) Int(name string, def int) int {
	opt, ok := o[name]
	if !ok {
		return def
	}
	switch v := opt.Value.(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Bool returns the option as a bool, or def when missing
func (o options) Bool(name string, def bool) bool {
	opt, ok := o[name]
	if !ok {
		return def
	}
	if v, ok := opt.Value.(bool); ok {
		return v
	}
	return def
}

// respond sends a new message for an interaction
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// update replaces the message a component belongs to
func update(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	})
}
