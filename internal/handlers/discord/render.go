package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/friend"
	"github.com/KirkDiggler/kiroku/internal/services/messaging"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	colorSuccess = 0x2ecc71
	colorInfo    = 0x3498db
	colorError   = 0xe74c3c
)

// Calendar button IDs
const (
	ButtonCalendarPrevious = "kiroku_calendar_prev"
	ButtonCalendarNext     = "kiroku_calendar_next"
	ButtonCalendarClose    = "kiroku_calendar_close"
)

var colorSquares = map[models.ColorTag]string{
	models.ColorGreen:    "🟩",
	models.ColorYellow:   "🟨",
	models.ColorOrange:   "🟧",
	models.ColorRed:      "🟥",
	models.ColorBlackout: "⬛",
}

const (
	squareEmpty   = "⬜"
	squareOutside = "▫️"
)

var drinkLabels = map[models.DrinkKey]string{
	models.DrinkSmallBeer:  "Small beer",
	models.DrinkBeer:       "Beer",
	models.DrinkWine:       "Wine",
	models.DrinkWeakShot:   "Weak shot",
	models.DrinkStrongShot: "Strong shot",
	models.DrinkCocktail:   "Cocktail",
	models.DrinkOther:      "Other",
}

// drinkChoices lists drink types for slash command options
func drinkChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.DrinkKeys))
	for _, key := range models.DrinkKeys {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  drinkLabels[key],
			Value: string(key),
		})
	}
	return choices
}

func square(tag models.ColorTag) string {
	if sq, ok := colorSquares[tag]; ok {
		return sq
	}
	return squareEmpty
}

// renderCalendar draws a month as a Monday-first grid of coloured squares
// with navigation buttons
func renderCalendar(view *calendar.CalendarView) *discordgo.InteractionResponseData {
	month, err := time.Parse(models.MonthFormat, view.Month)
	if err != nil {
		return renderMessage("Calendar", "Could not render "+view.Month, colorError)
	}

	days := make(map[string]*models.DayAggregate, len(view.Days))
	var total float64
	drinkingDays := 0
	for _, day := range view.Days {
		days[day.Date] = day
		total += day.TotalUnits
		if day.SessionCount > 0 {
			drinkingDays++
		}
	}

	var grid strings.Builder
	grid.WriteString("Mo Tu We Th Fr Sa Su\n")

	// Monday is column 0
	offset := (int(month.Weekday()) + 6) % 7
	for col := 0; col < offset; col++ {
		grid.WriteString(squareOutside)
	}

	daysInMonth := month.AddDate(0, 1, -1).Day()
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, time.UTC).Format(models.DateFormat)
		switch day, ok := days[date]; {
		case date > view.MaxDate || date < view.MinDate:
			grid.WriteString(squareOutside)
		case ok:
			grid.WriteString(square(day.ColorTag))
		default:
			grid.WriteString(squareEmpty)
		}
		if (offset+d)%7 == 0 {
			grid.WriteString("\n")
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       month.Format("January 2006"),
		Description: grid.String(),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Units", Value: fmt.Sprintf("%.1f", total), Inline: true},
			{Name: "Drinking days", Value: fmt.Sprintf("%d", drinkingDays), Inline: true},
		},
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Previous",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonCalendarPrevious,
			Disabled: !view.HasPrevious,
			Emoji:    &discordgo.ComponentEmoji{Name: "⬅️"},
		},
		discordgo.Button{
			Label:    "Next",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonCalendarNext,
			Disabled: !view.HasNext,
			Emoji:    &discordgo.ComponentEmoji{Name: "➡️"},
		},
		discordgo.Button{
			Label:    "Close",
			Style:    discordgo.DangerButton,
			CustomID: ButtonCalendarClose,
		},
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
		Flags:      discordgo.MessageFlagsEphemeral,
	}
}

// renderDay lists the sessions of one day
func renderDay(overview *session.GetDayOverviewOutput) *discordgo.InteractionResponseData {
	var description strings.Builder
	if len(overview.Sessions) == 0 {
		description.WriteString("Nothing recorded on this day.")
	}

	for _, summary := range overview.Sessions {
		start := summary.Session.LocalStart().Format("15:04")
		description.WriteString(fmt.Sprintf("%s **%s** %.1f units", square(summary.ColorTag), start, summary.Units))
		if summary.Session.Ongoing {
			description.WriteString(" (running)")
		}
		description.WriteString("\n")
		if drinks := formatDrinks(summary.Session.Drinks); drinks != "" {
			description.WriteString(drinks + "\n")
		}
		if summary.Session.Note != "" {
			description.WriteString("> " + summary.Session.Note + "\n")
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       overview.Date,
		Description: description.String(),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total", Value: fmt.Sprintf("%s %.1f units", square(overview.ColorTag), overview.TotalUnits), Inline: true},
		},
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

// formatDrinks lists drink counts in the fixed drink order
func formatDrinks(drinks models.Drinks) string {
	parts := make([]string, 0, len(drinks))
	for _, key := range models.DrinkKeys {
		if count := drinks[key]; count > 0 {
			parts = append(parts, fmt.Sprintf("%s × %d", drinkLabels[key], count))
		}
	}
	return strings.Join(parts, ", ")
}

// renderSessionMessage shows a confirmation with the session's drinks
func renderSessionMessage(msg *messaging.GetSessionMessageOutput, s *models.DrinkingSession) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorSuccess,
	}
	if s != nil {
		if drinks := formatDrinks(s.Drinks); drinks != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Drinks", Value: drinks})
		}
		if s.Blackout {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Blackout", Value: square(models.ColorBlackout), Inline: true})
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

// renderFriends lists friends, marking those currently in a session
func renderFriends(friends []*friend.FriendStatus, pending int) *discordgo.InteractionResponseData {
	var description strings.Builder
	if len(friends) == 0 {
		description.WriteString("No friends yet. Use `/kiroku befriend` to add some.")
	}
	for _, status := range friends {
		name := status.User.DisplayName
		if name == "" {
			name = status.User.Nickname
		}
		if status.Ongoing != nil {
			description.WriteString(fmt.Sprintf("🍻 **%s** is drinking (%d drinks)\n", name, status.Ongoing.Drinks.Count()))
		} else {
			description.WriteString(fmt.Sprintf("💤 %s\n", name))
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Friends",
		Description: description.String(),
		Color:       colorInfo,
	}
	if pending > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Pending requests", Value: fmt.Sprintf("%d", pending), Inline: true},
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

// renderMessage is a plain ephemeral embed
func renderMessage(title, message string, color int) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       title,
			Description: message,
			Color:       color,
		}},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// renderError shows a mapped error as a dismissible message
func renderError(msg *messaging.GetErrorMessageOutput) *discordgo.InteractionResponseData {
	return renderMessage(msg.Title, msg.Message, colorError)
}
