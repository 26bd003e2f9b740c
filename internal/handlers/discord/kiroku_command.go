package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/kiroku/internal/metrics"
	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/friend"
	"github.com/KirkDiggler/kiroku/internal/services/messaging"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// errUnknownSubcommand is returned for subcommands the bot does not know
var errUnknownSubcommand = errors.New("unknown subcommand")

// KirokuCommandConfig holds the services behind /kiroku
type KirokuCommandConfig struct {
	SessionService   session.Service
	CalendarService  calendar.Service
	UserService      user.Service
	FriendService    friend.Service
	MessagingService messaging.Service
	Logger           *zap.Logger
}

// KirokuCommand handles the /kiroku command and the calendar buttons
type KirokuCommand struct {
	BaseCommand
	sessionService   session.Service
	calendarService  calendar.Service
	userService      user.Service
	friendService    friend.Service
	messagingService messaging.Service
	logger           *zap.Logger
}

// NewKirokuCommand creates a new kiroku command handler
func NewKirokuCommand(cfg *KirokuCommandConfig) (*KirokuCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionService == nil || cfg.CalendarService == nil || cfg.UserService == nil ||
		cfg.FriendService == nil || cfg.MessagingService == nil {
		return nil, errors.New("all services are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	drinkOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "drink",
		Description: "What you drank",
		Required:    true,
		Choices:     drinkChoices(),
	}
	countOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "count",
		Description: "How many (default 1)",
		MinValue:    floatPtr(1),
	}
	userOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: description,
			Required:    true,
		}
	}
	optionalDrink := *drinkOption
	optionalDrink.Required = false

	return &KirokuCommand{
		BaseCommand: BaseCommand{
			Name:        "kiroku",
			Description: "Track your drinking sessions",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("start", "Start a live session",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "timezone",
						Description: "IANA timezone, defaults to yours",
					}),
				subcommand("drink", "Add drinks to your session", drinkOption, countOption),
				subcommand("undo", "Remove drinks from your session", drinkOption, countOption),
				subcommand("end", "End your session"),
				subcommand("blackout", "Mark your session as a blackout",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "on",
						Description: "Set to false to clear the mark",
					}),
				subcommand("log", "Log a past session",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "date",
						Description: "Day of the session (YYYY-MM-DD)",
						Required:    true,
					},
					&optionalDrink,
					countOption,
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "blackout",
						Description: "Was it a blackout?",
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "note",
						Description: "A note for the session",
					}),
				subcommand("calendar", "Show your calendar"),
				subcommand("day", "Show the sessions of a day",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "date",
						Description: "The day (YYYY-MM-DD)",
						Required:    true,
					}),
				subcommand("timezone", "Set your timezone",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "zone",
						Description: "IANA timezone such as Europe/Prague",
						Required:    true,
					}),
				subcommand("tzfix", "Move sessions recorded in the wrong timezone",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "from",
						Description: "The timezone the sessions were wrongly recorded in",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "to",
						Description: "The timezone you were actually in",
						Required:    true,
					}),
				subcommand("friends", "List your friends"),
				subcommand("befriend", "Send a friend request",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "Who to befriend",
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "nickname",
						Description: "Or search by nickname",
					}),
				subcommand("accept", "Accept a friend request", userOption("Whose request to accept")),
				subcommand("unfriend", "Remove a friend", userOption("Who to remove")),
				subcommand("register", "Create your account",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "nickname",
						Description: "The name friends can find you by",
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "timezone",
						Description: "IANA timezone such as Europe/Prague",
					}),
				subcommand("terms", "Agree to the terms of use"),
			},
		},
		sessionService:   cfg.SessionService,
		calendarService:  cfg.CalendarService,
		userService:      cfg.UserService,
		friendService:    cfg.FriendService,
		messagingService: cfg.MessagingService,
		logger:           logger.Named("discord"),
	}, nil
}

func subcommand(name, description string, opts ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     opts,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// Handle processes a Discord interaction for the kiroku command
func (c *KirokuCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	inv := invokerFrom(i)

	return respond(s, i, c.run(ctx, inv, sub.Name, optionMap(sub.Options)))
}

// run executes a subcommand and turns failures into error messages
func (c *KirokuCommand) run(ctx context.Context, inv invoker, name string, opts options) *discordgo.InteractionResponseData {
	response, err := c.execute(ctx, inv, name, opts)
	if err != nil {
		metrics.BotCommandsTotal.WithLabelValues(name, "error").Inc()
		return c.errorResponse(ctx, inv, name, err)
	}

	metrics.BotCommandsTotal.WithLabelValues(name, "ok").Inc()
	return response
}

func (c *KirokuCommand) execute(ctx context.Context, inv invoker, name string, opts options) (*discordgo.InteractionResponseData, error) {
	switch name {
	case "start":
		return c.handleStart(ctx, inv, opts)
	case "drink":
		return c.handleDrink(ctx, inv, opts)
	case "undo":
		return c.handleUndo(ctx, inv, opts)
	case "end":
		return c.handleEnd(ctx, inv)
	case "blackout":
		return c.handleBlackout(ctx, inv, opts)
	case "log":
		return c.handleLog(ctx, inv, opts)
	case "calendar":
		return c.handleCalendar(ctx, inv)
	case "day":
		return c.handleDay(ctx, inv, opts)
	case "timezone":
		return c.handleTimezone(ctx, inv, opts)
	case "tzfix":
		return c.handleTimezoneFix(ctx, inv, opts)
	case "friends":
		return c.handleFriends(ctx, inv)
	case "befriend":
		return c.handleBefriend(ctx, inv, opts)
	case "accept":
		return c.handleAccept(ctx, inv, opts)
	case "unfriend":
		return c.handleUnfriend(ctx, inv, opts)
	case "register":
		return c.handleRegister(ctx, inv, opts)
	case "terms":
		return c.handleTerms(ctx, inv)
	default:
		return nil, errUnknownSubcommand
	}
}

func (c *KirokuCommand) handleStart(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	output, err := c.sessionService.StartLiveSession(ctx, &session.StartLiveSessionInput{
		UserID:   inv.UserID,
		Timezone: opts.String("timezone", ""),
	})
	if err != nil {
		return nil, err
	}

	event := messaging.EventSessionStarted
	units := 0.0
	if output.AlreadyRunning {
		event = messaging.EventSessionResumed
		if units, err = c.units(ctx, inv.UserID, output.Session.Drinks); err != nil {
			return nil, err
		}
	}

	return c.sessionMessage(ctx, inv, event, units, 0, output.Session)
}

func (c *KirokuCommand) handleDrink(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	count := opts.Int("count", 1)
	output, err := c.sessionService.AddDrinks(ctx, &session.AddDrinksInput{
		UserID: inv.UserID,
		Drink:  models.DrinkKey(opts.String("drink", "")),
		Count:  count,
	})
	if err != nil {
		return nil, err
	}
	return c.sessionMessage(ctx, inv, messaging.EventDrinksAdded, output.Units, count, output.Session)
}

func (c *KirokuCommand) handleUndo(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	count := opts.Int("count", 1)
	output, err := c.sessionService.RemoveDrinks(ctx, &session.RemoveDrinksInput{
		UserID: inv.UserID,
		Drink:  models.DrinkKey(opts.String("drink", "")),
		Count:  count,
	})
	if err != nil {
		return nil, err
	}
	return c.sessionMessage(ctx, inv, messaging.EventDrinksRemoved, output.Units, count, output.Session)
}

func (c *KirokuCommand) handleEnd(ctx context.Context, inv invoker) (*discordgo.InteractionResponseData, error) {
	output, err := c.sessionService.EndSession(ctx, &session.EndSessionInput{UserID: inv.UserID})
	if err != nil {
		return nil, err
	}

	if output.Discarded {
		return c.sessionMessage(ctx, inv, messaging.EventSessionDiscarded, 0, 0, nil)
	}

	units, err := c.units(ctx, inv.UserID, output.Session.Drinks)
	if err != nil {
		return nil, err
	}
	return c.sessionMessage(ctx, inv, messaging.EventSessionEnded, units, 0, output.Session)
}

func (c *KirokuCommand) handleBlackout(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	on := opts.Bool("on", true)
	output, err := c.sessionService.SetBlackout(ctx, &session.SetBlackoutInput{
		UserID:   inv.UserID,
		Blackout: on,
	})
	if err != nil {
		return nil, err
	}

	if !on {
		return renderMessage("Blackout cleared", "Your session is no longer marked as a blackout.", colorSuccess), nil
	}
	return c.sessionMessage(ctx, inv, messaging.EventBlackout, output.Units, 0, output.Session)
}

func (c *KirokuCommand) handleLog(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	var drinks models.Drinks
	if drink := opts.String("drink", ""); drink != "" {
		drinks = models.Drinks{models.DrinkKey(drink): opts.Int("count", 1)}
	}

	output, err := c.sessionService.LogSession(ctx, &session.LogSessionInput{
		UserID:   inv.UserID,
		Date:     opts.String("date", ""),
		Drinks:   drinks,
		Blackout: opts.Bool("blackout", false),
		Note:     opts.String("note", ""),
	})
	if err != nil {
		return nil, err
	}
	return c.sessionMessage(ctx, inv, messaging.EventSessionLogged, output.Units, 0, output.Session)
}

func (c *KirokuCommand) handleCalendar(ctx context.Context, inv invoker) (*discordgo.InteractionResponseData, error) {
	view, err := c.calendarService.OpenCalendar(ctx, &calendar.OpenCalendarInput{UserID: inv.UserID})
	if err != nil {
		return nil, err
	}
	return renderCalendar(view), nil
}

func (c *KirokuCommand) handleDay(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	overview, err := c.sessionService.GetDayOverview(ctx, &session.GetDayOverviewInput{
		UserID: inv.UserID,
		Date:   opts.String("date", ""),
	})
	if err != nil {
		return nil, err
	}
	return renderDay(overview), nil
}

func (c *KirokuCommand) handleTimezone(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	updated, err := c.userService.UpdateTimezone(ctx, &user.UpdateTimezoneInput{
		UserID:   inv.UserID,
		Timezone: opts.String("zone", ""),
	})
	if err != nil {
		return nil, err
	}

	return renderMessage("Timezone updated",
		fmt.Sprintf("New sessions use %s. If older sessions landed on the wrong day, use `/kiroku tzfix`.", updated.Timezone.Selected),
		colorSuccess), nil
}

func (c *KirokuCommand) handleTimezoneFix(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	output, err := c.sessionService.FixTimezone(ctx, &session.FixTimezoneInput{
		UserID:      inv.UserID,
		OldTimezone: opts.String("from", ""),
		NewTimezone: opts.String("to", ""),
	})
	if err != nil {
		return nil, err
	}
	return c.sessionMessage(ctx, inv, messaging.EventTimezoneFixed, 0, output.FixedCount, nil)
}

func (c *KirokuCommand) handleFriends(ctx context.Context, inv invoker) (*discordgo.InteractionResponseData, error) {
	friends, err := c.friendService.ListFriends(ctx, &friend.ListFriendsInput{UserID: inv.UserID})
	if err != nil {
		return nil, err
	}

	pending, err := c.friendService.GetReceivedRequestsCount(ctx, &friend.ListRequestsInput{UserID: inv.UserID})
	if err != nil {
		return nil, err
	}

	return renderFriends(friends.Friends, pending), nil
}

func (c *KirokuCommand) handleBefriend(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	friendID := opts.String("user", "")
	if friendID == "" {
		nickname := opts.String("nickname", "")
		if nickname == "" {
			return nil, friend.ErrInvalidInput
		}

		found, err := c.friendService.SearchByNickname(ctx, &friend.SearchByNicknameInput{
			UserID:   inv.UserID,
			Nickname: nickname,
		})
		if err != nil {
			return nil, err
		}

		switch len(found.Users) {
		case 0:
			return nil, friend.ErrUserNotFound
		case 1:
			friendID = found.Users[0].ID
		default:
			names := make([]string, 0, len(found.Users))
			for _, u := range found.Users {
				names = append(names, "<@"+u.ID+">")
			}
			return renderMessage("Several users match",
				"Mention the one you mean with the `user` option: "+strings.Join(names, ", "),
				colorInfo), nil
		}
	}

	output, err := c.friendService.SendRequest(ctx, &friend.SendRequestInput{
		UserID:   inv.UserID,
		FriendID: friendID,
	})
	if err != nil {
		return nil, err
	}

	if output.Accepted {
		return renderMessage("New friend", fmt.Sprintf("You and <@%s> are now friends.", friendID), colorSuccess), nil
	}
	return renderMessage("Request sent", fmt.Sprintf("Waiting for <@%s> to accept.", friendID), colorSuccess), nil
}

func (c *KirokuCommand) handleAccept(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	friendID := opts.String("user", "")
	err := c.friendService.AcceptRequest(ctx, &friend.RequestInput{UserID: inv.UserID, FriendID: friendID})
	if err != nil {
		return nil, err
	}
	return renderMessage("New friend", fmt.Sprintf("You and <@%s> are now friends.", friendID), colorSuccess), nil
}

func (c *KirokuCommand) handleUnfriend(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	friendID := opts.String("user", "")
	err := c.friendService.RemoveFriend(ctx, &friend.RequestInput{UserID: inv.UserID, FriendID: friendID})
	if err != nil {
		return nil, err
	}
	return renderMessage("Friend removed", fmt.Sprintf("<@%s> is no longer your friend.", friendID), colorSuccess), nil
}

func (c *KirokuCommand) handleRegister(ctx context.Context, inv invoker, opts options) (*discordgo.InteractionResponseData, error) {
	registered, err := c.userService.Register(ctx, &user.RegisterInput{
		UserID:      inv.UserID,
		DisplayName: inv.Name,
		Nickname:    opts.String("nickname", ""),
		Timezone:    opts.String("timezone", ""),
	})
	if err != nil {
		return nil, err
	}

	return renderMessage("Welcome to Kiroku",
		fmt.Sprintf("Friends can find you as **%s**. Your timezone is %s. Please read and accept the terms with `/kiroku terms`.",
			registered.Nickname, registered.Timezone.Selected),
		colorSuccess), nil
}

func (c *KirokuCommand) handleTerms(ctx context.Context, inv invoker) (*discordgo.InteractionResponseData, error) {
	agreed, err := c.userService.AgreeToTerms(ctx, &user.AgreeToTermsInput{UserID: inv.UserID})
	if err != nil {
		return nil, err
	}
	return renderMessage("Terms accepted",
		"Thanks! You agreed on "+agreed.AgreedToTermsAt.Format(models.DateFormat)+".",
		colorSuccess), nil
}

// HandlesComponent reports whether the custom ID is a calendar button
func (c *KirokuCommand) HandlesComponent(customID string) bool {
	switch customID {
	case ButtonCalendarPrevious, ButtonCalendarNext, ButtonCalendarClose:
		return true
	}
	return false
}

// HandleComponent moves or closes the user's calendar in place
func (c *KirokuCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	inv := invokerFrom(i)
	customID := i.MessageComponentData().CustomID

	response, err := c.component(ctx, inv, customID)
	if err != nil {
		metrics.BotCommandsTotal.WithLabelValues(customID, "error").Inc()
		return update(s, i, c.errorResponse(ctx, inv, customID, err))
	}

	metrics.BotCommandsTotal.WithLabelValues(customID, "ok").Inc()
	return update(s, i, response)
}

func (c *KirokuCommand) component(ctx context.Context, inv invoker, customID string) (*discordgo.InteractionResponseData, error) {
	input := &calendar.NavigateInput{UserID: inv.UserID}

	var view *calendar.CalendarView
	var err error
	switch customID {
	case ButtonCalendarPrevious:
		view, err = c.calendarService.PreviousMonth(ctx, input)
	case ButtonCalendarNext:
		view, err = c.calendarService.NextMonth(ctx, input)
	case ButtonCalendarClose:
		if err := c.calendarService.CloseCalendar(ctx, &calendar.CloseCalendarInput{UserID: inv.UserID}); err != nil {
			return nil, err
		}
		closed := renderMessage("Calendar closed", "Open it again with `/kiroku calendar`.", colorInfo)
		closed.Components = []discordgo.MessageComponent{}
		return closed, nil
	default:
		return nil, errUnknownSubcommand
	}
	if err != nil {
		return nil, err
	}
	return renderCalendar(view), nil
}

// units totals drinks with the user's preferences
func (c *KirokuCommand) units(ctx context.Context, userID string, drinks models.Drinks) (float64, error) {
	prefs, err := c.userService.GetPreferences(ctx, &user.GetPreferencesInput{UserID: userID})
	if err != nil {
		return 0, err
	}
	return calendar.CalculateTotalUnits(drinks, prefs), nil
}

func (c *KirokuCommand) sessionMessage(ctx context.Context, inv invoker, event messaging.SessionEvent, units float64, count int, s *models.DrinkingSession) (*discordgo.InteractionResponseData, error) {
	msg, err := c.messagingService.GetSessionMessage(ctx, &messaging.GetSessionMessageInput{
		Event:  event,
		Units:  units,
		Count:  count,
		Locale: inv.Locale,
	})
	if err != nil {
		return nil, err
	}
	return renderSessionMessage(msg, s), nil
}

func (c *KirokuCommand) errorResponse(ctx context.Context, inv invoker, command string, err error) *discordgo.InteractionResponseData {
	msg, mapErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:    err,
		Locale: inv.Locale,
	})
	if mapErr != nil {
		c.logger.Error("failed to map error", zap.Error(mapErr))
		return renderMessage("Error", "Something went wrong.", colorError)
	}

	if msg.Code == messaging.CodeUnknown || msg.Code == messaging.CodeUnavailable {
		c.logger.Error("command failed",
			zap.String("command", command),
			zap.String("user_id", inv.UserID),
			zap.Error(err))
	} else {
		c.logger.Debug("command rejected",
			zap.String("command", command),
			zap.String("code", string(msg.Code)),
			zap.Error(err))
	}

	return renderError(msg)
}
