package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/kiroku/internal/config"
	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
)

func TestBuildWiresServicesEndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	clock := clockwork.NewFakeClockAt(time.Date(2023, 7, 20, 12, 0, 0, 0, time.UTC))

	a, err := Build(client, clock, &config.Config{
		DefaultTimezone: "UTC",
		NoticeCooldown:  time.Hour,
	}, nil)
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()

	_, err = a.Users.Register(ctx, &user.RegisterInput{
		UserID:      "u1",
		DisplayName: "Tester",
		Timezone:    "UTC",
	})
	require.NoError(t, err)

	_, err = a.Sessions.LogSession(ctx, &session.LogSessionInput{
		UserID: "u1",
		Date:   "2023-07-18",
		Drinks: models.Drinks{models.DrinkBeer: 2},
	})
	require.NoError(t, err)

	view, err := a.Calendar.GetMonth(ctx, &calendar.GetMonthInput{UserID: "u1", Month: "2023-07"})
	require.NoError(t, err)

	var found *models.DayAggregate
	for _, day := range view.Days {
		if day.Date == "2023-07-18" {
			found = day
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 2.0, found.TotalUnits)
	assert.Equal(t, models.ColorGreen, found.ColorTag)
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), nil, nil)
	assert.Error(t, err)
}
