package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// message is a title with interchangeable bodies
type message struct {
	title    string
	variants []string
}

var errorMessages = map[Locale]map[ErrorCode]message{
	LocaleEnglish: {
		CodeSessionNotFound: {"Session not found", []string{
			"That session is gone. Maybe it was deleted on another device?",
			"We couldn't find that session.",
		}},
		CodeNoOngoingSession: {"No session running", []string{
			"You're not in a session right now. Start one first!",
			"Nothing is running. Use start to begin a session.",
		}},
		CodeInvalidDrink: {"Invalid drink", []string{
			"That isn't a drink we know, or the count is off.",
		}},
		CodeInvalidTimezone: {"Invalid timezone", []string{
			"That timezone doesn't exist. Try something like Europe/Prague.",
		}},
		CodeInvalidDate: {"Invalid date", []string{
			"Dates look like 2023-07-18, months like 2023-07.",
		}},
		CodeDateInFuture: {"Date in the future", []string{
			"You can't log a session that hasn't happened yet.",
			"Nice try, time traveller. Pick a date that's already happened.",
		}},
		CodeTimezoneFixFailed: {"Timezone fix failed", []string{
			"We couldn't save the corrected sessions. Nothing was changed, please try again.",
		}},
		CodeUserNotFound: {"User not found", []string{
			"We couldn't find that user. Have they registered?",
		}},
		CodeAlreadyRegistered: {"Already registered", []string{
			"You already have an account. Welcome back!",
		}},
		CodeCalendarNotOpen: {"Calendar closed", []string{
			"This calendar has expired. Open it again to keep browsing.",
		}},
		CodeCannotFriendSelf: {"That's you", []string{
			"You can't befriend yourself. We admire the self-love though.",
		}},
		CodeAlreadyFriends: {"Already friends", []string{
			"You two are already friends.",
		}},
		CodeRequestSent: {"Request pending", []string{
			"You've already sent a request. Give them a moment.",
		}},
		CodeRequestNotFound: {"No such request", []string{
			"There's no pending friend request from that user.",
		}},
		CodeNotFriends: {"Not friends", []string{
			"You aren't friends with that user.",
		}},
		CodeInvalidInput: {"Invalid input", []string{
			"Something in that request doesn't look right.",
		}},
		CodeUnavailable: {"Unavailable", []string{
			"The service is busy or shutting down. Try again in a moment.",
		}},
		CodeUnknown: {"Something went wrong", []string{
			"An unexpected error occurred. Please try again later.",
			"Well, that didn't work. Please try again later.",
		}},
	},
	LocaleCzech: {
		CodeSessionNotFound: {"Sezení nenalezeno", []string{
			"Toto sezení už neexistuje. Možná bylo smazáno na jiném zařízení.",
		}},
		CodeNoOngoingSession: {"Žádné probíhající sezení", []string{
			"Momentálně nemáš žádné sezení. Nejdřív nějaké začni!",
		}},
		CodeInvalidDrink: {"Neplatný nápoj", []string{
			"Tento nápoj neznáme, nebo je špatně počet.",
		}},
		CodeInvalidTimezone: {"Neplatné časové pásmo", []string{
			"Toto časové pásmo neexistuje. Zkus třeba Europe/Prague.",
		}},
		CodeInvalidDate: {"Neplatné datum", []string{
			"Datum zadej jako 2023-07-18, měsíc jako 2023-07.",
		}},
		CodeDateInFuture: {"Datum v budoucnosti", []string{
			"Nemůžeš zapsat sezení, které se ještě nestalo.",
		}},
		CodeTimezoneFixFailed: {"Oprava časového pásma selhala", []string{
			"Opravená sezení se nepodařilo uložit. Nic se nezměnilo, zkus to znovu.",
		}},
		CodeUserNotFound: {"Uživatel nenalezen", []string{
			"Tohoto uživatele jsme nenašli. Je zaregistrovaný?",
		}},
		CodeAlreadyRegistered: {"Už jsi registrovaný", []string{
			"Účet už máš. Vítej zpět!",
		}},
		CodeCalendarNotOpen: {"Kalendář zavřen", []string{
			"Platnost kalendáře vypršela. Otevři ho znovu.",
		}},
		CodeCannotFriendSelf: {"To jsi ty", []string{
			"Sám sebe si do přátel přidat nemůžeš.",
		}},
		CodeAlreadyFriends: {"Už jste přátelé", []string{
			"Vy dva už jste přátelé.",
		}},
		CodeRequestSent: {"Žádost čeká", []string{
			"Žádost už jsi odeslal. Dej jim chvilku.",
		}},
		CodeRequestNotFound: {"Žádost nenalezena", []string{
			"Od tohoto uživatele nemáš žádnou žádost o přátelství.",
		}},
		CodeNotFriends: {"Nejste přátelé", []string{
			"S tímto uživatelem nejste přátelé.",
		}},
		CodeInvalidInput: {"Neplatný vstup", []string{
			"Něco v požadavku není v pořádku.",
		}},
		CodeUnavailable: {"Nedostupné", []string{
			"Služba je vytížená nebo se vypíná. Zkus to za chvíli.",
		}},
		CodeUnknown: {"Něco se pokazilo", []string{
			"Došlo k neočekávané chybě. Zkus to prosím později.",
		}},
	},
}

// service implements the Service interface
type service struct {
	// rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	code := Classify(input.Err)
	msg := lookup(input.Locale, code)

	return &GetErrorMessageOutput{
		Code:    code,
		Title:   msg.title,
		Message: s.pick(msg.variants),
	}, nil
}

// GetSessionMessage returns a message confirming a session event
func (s *service) GetSessionMessage(ctx context.Context, input *GetSessionMessageInput) (*GetSessionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var title string
	var messages []string

	czech := input.Locale == LocaleCzech
	units := fmt.Sprintf("%.1f", input.Units)

	switch input.Event {
	case EventSessionStarted:
		if czech {
			title = "Sezení začalo"
			messages = []string{"Na zdraví! Sezení běží.", "Tak jdeme na to. Sezení běží."}
		} else {
			title = "Session started"
			messages = []string{"Cheers! Your session is running.", "Here we go. Your session is running."}
		}
	case EventSessionResumed:
		tone = ToneNeutral
		if czech {
			title = "Sezení už běží"
			messages = []string{"Pokračuješ v rozjetém sezení (" + units + " jednotek)."}
		} else {
			title = "Session already running"
			messages = []string{"You're continuing your current session (" + units + " units)."}
		}
	case EventDrinksAdded:
		if czech {
			title = "Zapsáno"
			messages = []string{"Přidáno " + fmt.Sprint(input.Count) + ". Celkem " + units + " jednotek."}
		} else {
			title = "Logged"
			switch {
			case input.Units >= 10 && tone == ToneFunny:
				messages = []string{
					"Added " + fmt.Sprint(input.Count) + ". That's " + units + " units. Maybe grab some water?",
					"Added " + fmt.Sprint(input.Count) + ". " + units + " units and counting. Pace yourself!",
				}
			default:
				messages = []string{"Added " + fmt.Sprint(input.Count) + ". Total is " + units + " units."}
			}
		}
	case EventDrinksRemoved:
		tone = ToneNeutral
		if czech {
			title = "Odebráno"
			messages = []string{"Odebráno " + fmt.Sprint(input.Count) + ". Celkem " + units + " jednotek."}
		} else {
			title = "Removed"
			messages = []string{"Removed " + fmt.Sprint(input.Count) + ". Total is " + units + " units."}
		}
	case EventSessionEnded:
		tone = ToneEncouraging
		if czech {
			title = "Sezení ukončeno"
			messages = []string{"Celkem " + units + " jednotek. Dobrou noc!"}
		} else {
			title = "Session ended"
			messages = []string{"You had " + units + " units. Get home safe!", "Session saved with " + units + " units. Drink some water!"}
		}
	case EventSessionDiscarded:
		tone = ToneNeutral
		if czech {
			title = "Sezení zahozeno"
			messages = []string{"Prázdné sezení jsme neukládali."}
		} else {
			title = "Session discarded"
			messages = []string{"The session was empty, so it wasn't saved."}
		}
	case EventBlackout:
		if czech {
			title = "Okno"
			messages = []string{"Zapsáno jako okno. Snad si aspoň něco pamatuješ."}
		} else {
			title = "Blackout"
			messages = []string{"Marked as a blackout. Hope someone took pictures.", "Marked as a blackout. Your calendar will remember for you."}
		}
	case EventSessionLogged:
		tone = ToneNeutral
		if czech {
			title = "Sezení zapsáno"
			messages = []string{"Sezení s " + units + " jednotkami je uložené."}
		} else {
			title = "Session logged"
			messages = []string{"Saved a session with " + units + " units."}
		}
	case EventTimezoneFixed:
		tone = ToneNeutral
		if czech {
			title = "Časové pásmo opraveno"
			messages = []string{"Opravených sezení: " + fmt.Sprint(input.Count) + "."}
		} else {
			title = "Timezone fixed"
			messages = []string{"Corrected " + fmt.Sprint(input.Count) + " sessions."}
		}
	default:
		return nil, fmt.Errorf("unknown session event %q", input.Event)
	}

	return &GetSessionMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func lookup(locale Locale, code ErrorCode) message {
	table, ok := errorMessages[locale]
	if !ok {
		table = errorMessages[LocaleEnglish]
	}
	if msg, ok := table[code]; ok {
		return msg
	}
	return table[CodeUnknown]
}

func (s *service) pick(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
